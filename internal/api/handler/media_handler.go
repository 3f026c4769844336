package handler

import (
	"Chirp/internal/pkg/response"
	"Chirp/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	mediaID, err := s.mediaSvc.Upload(c.Request.Context(), file.Filename, reader)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"media_id": mediaID})
}
