package repository

import (
	"Chirp/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepo interface {
	Create(ctx context.Context, like *model.Like) error
	Delete(ctx context.Context, tweetID, userID uint64) error
	ListByTweetIDs(ctx context.Context, tweetIDs []uint64) ([]*model.Like, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db: db}
}

// Create inserts the like; liking the same tweet twice hits the unique
// (tweet_id, user_id) index and is absorbed as a no-op.
func (s *LikeRepoImpl) Create(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like).Error
}

// Delete removes the like; unliking a tweet that was never liked succeeds.
func (s *LikeRepoImpl) Delete(ctx context.Context, tweetID, userID uint64) error {
	return s.db.WithContext(ctx).
		Where("tweet_id = ? AND user_id = ?", tweetID, userID).
		Delete(&model.Like{}).Error
}

func (s *LikeRepoImpl) ListByTweetIDs(ctx context.Context, tweetIDs []uint64) ([]*model.Like, error) {
	likes := make([]*model.Like, 0)
	if len(tweetIDs) == 0 {
		return likes, nil
	}
	result := s.db.WithContext(ctx).
		Where("tweet_id IN ?", tweetIDs).
		Order("id asc").
		Find(&likes)
	if result.Error != nil {
		return nil, result.Error
	}
	return likes, nil
}
