package repository

import (
	"Chirp/internal/model"
	"context"

	"gorm.io/gorm"
)

type AttachmentRepo interface {
	Create(ctx context.Context, attachment *model.Attachment) error
	GetByIDs(ctx context.Context, ids []uint64) ([]*model.Attachment, error)
	ListByTweetIDs(ctx context.Context, tweetIDs []uint64) ([]*model.Attachment, error)
}

type AttachmentRepoImpl struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) AttachmentRepo {
	return &AttachmentRepoImpl{db: db}
}

func (s *AttachmentRepoImpl) Create(ctx context.Context, attachment *model.Attachment) error {
	return s.db.WithContext(ctx).Create(attachment).Error
}

func (s *AttachmentRepoImpl) GetByIDs(ctx context.Context, ids []uint64) ([]*model.Attachment, error) {
	attachments := make([]*model.Attachment, 0)
	if len(ids) == 0 {
		return attachments, nil
	}
	result := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&attachments)
	if result.Error != nil {
		return nil, result.Error
	}
	return attachments, nil
}

func (s *AttachmentRepoImpl) ListByTweetIDs(ctx context.Context, tweetIDs []uint64) ([]*model.Attachment, error) {
	attachments := make([]*model.Attachment, 0)
	if len(tweetIDs) == 0 {
		return attachments, nil
	}
	result := s.db.WithContext(ctx).
		Where("tweet_id IN ?", tweetIDs).
		Order("id asc").
		Find(&attachments)
	if result.Error != nil {
		return nil, result.Error
	}
	return attachments, nil
}
