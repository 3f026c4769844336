package service

import (
	"Chirp/internal/model"
	"Chirp/internal/pkg/consts"
	"Chirp/internal/pkg/storage"
	"Chirp/internal/repository"
	"bytes"
	"context"
	"io"
	log "log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

type MediaService interface {
	Upload(ctx context.Context, filename string, r io.Reader) (uint64, error)
}

type MediaServiceImpl struct {
	attachmentRepo repository.AttachmentRepo
	store          storage.Store
}

func NewMediaService(attachmentRepo repository.AttachmentRepo, store storage.Store) MediaService {
	return &MediaServiceImpl{attachmentRepo: attachmentRepo, store: store}
}

// Upload validates the extension, writes the blob to the store and persists
// the attachment. The attachment stays unlinked until a tweet references it.
func (s *MediaServiceImpl) Upload(ctx context.Context, filename string, r io.Reader) (uint64, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if _, ok := consts.AllowedUploadExtensions[ext]; !ok {
		return 0, ErrFileNotSupported
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}

	var width, height int
	if _, ok := consts.ImageExtensions[ext]; ok {
		img, derr := imaging.Decode(bytes.NewReader(data))
		if derr != nil {
			log.WarnContext(ctx, "failed to decode image for dimension probe", "file", filename, "err", derr)
		} else {
			bounds := img.Bounds()
			width, height = bounds.Dx(), bounds.Dy()
		}
	}

	key := uuid.NewString() + "_" + storage.SanitizeFilename(filename)
	contentType := http.DetectContentType(data)

	url, err := s.store.Save(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		return 0, err
	}

	attachment := &model.Attachment{
		URL:    url,
		Src:    filename,
		Width:  width,
		Height: height,
	}
	if err = s.attachmentRepo.Create(ctx, attachment); err != nil {
		return 0, err
	}
	return attachment.ID, nil
}
