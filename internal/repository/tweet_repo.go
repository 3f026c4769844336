package repository

import (
	"Chirp/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TweetRepo interface {
	Create(ctx context.Context, tweet *model.Tweet, attachmentIDs []uint64) error
	GetByID(ctx context.Context, id uint64) (*model.Tweet, error)
	ListAll(ctx context.Context) ([]*model.Tweet, error)
	ListByAuthorIDs(ctx context.Context, authorIDs []uint64) ([]*model.Tweet, error)
	DeleteCascade(ctx context.Context, id uint64) error
}

type TweetRepoImpl struct {
	db *gorm.DB
}

func NewTweetRepo(db *gorm.DB) TweetRepo {
	return &TweetRepoImpl{db: db}
}

// Create inserts the tweet and links the listed attachments to it in one
// transaction, so a half-linked tweet is never observable.
func (s *TweetRepoImpl) Create(ctx context.Context, tweet *model.Tweet, attachmentIDs []uint64) error {
	if len(attachmentIDs) == 0 {
		return s.db.WithContext(ctx).Create(tweet).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tweet).Error; err != nil {
			return err
		}
		return tx.Model(&model.Attachment{}).
			Where("id IN ?", attachmentIDs).
			Update("tweet_id", tweet.ID).Error
	})
}

func (s *TweetRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Tweet, error) {
	var tweet model.Tweet
	result := s.db.WithContext(ctx).First(&tweet, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &tweet, nil
}

func (s *TweetRepoImpl) ListAll(ctx context.Context) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	result := s.db.WithContext(ctx).Order("id desc").Find(&tweets)
	if result.Error != nil {
		return nil, result.Error
	}
	return tweets, nil
}

func (s *TweetRepoImpl) ListByAuthorIDs(ctx context.Context, authorIDs []uint64) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	if len(authorIDs) == 0 {
		return tweets, nil
	}
	result := s.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Order("id desc").
		Find(&tweets)
	if result.Error != nil {
		return nil, result.Error
	}
	return tweets, nil
}

// DeleteCascade removes the tweet together with its attachments and likes.
func (s *TweetRepoImpl) DeleteCascade(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", id).Delete(&model.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tweet_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Tweet{}, id).Error
	})
}
