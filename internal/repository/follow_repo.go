package repository

import (
	"Chirp/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	Create(ctx context.Context, follow *model.Follow) error
	Delete(ctx context.Context, followerID, followOnID uint64) error
	ListFollowers(ctx context.Context, userID uint64) ([]*model.Follow, error)
	ListFollowing(ctx context.Context, userID uint64) ([]*model.Follow, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// Create inserts the edge; a duplicate (follower_id, follow_on_id) pair hits
// the unique index and is absorbed as a no-op.
func (s *FollowRepoImpl) Create(ctx context.Context, follow *model.Follow) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(follow).Error
}

// Delete removes the edge; a missing edge is not an error.
func (s *FollowRepoImpl) Delete(ctx context.Context, followerID, followOnID uint64) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND follow_on_id = ?", followerID, followOnID).
		Delete(&model.Follow{}).Error
}

func (s *FollowRepoImpl) ListFollowers(ctx context.Context, userID uint64) ([]*model.Follow, error) {
	follows := make([]*model.Follow, 0)
	result := s.db.WithContext(ctx).
		Where("follow_on_id = ?", userID).
		Order("created_at desc").
		Find(&follows)
	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}

func (s *FollowRepoImpl) ListFollowing(ctx context.Context, userID uint64) ([]*model.Follow, error) {
	follows := make([]*model.Follow, 0)
	result := s.db.WithContext(ctx).
		Where("follower_id = ?", userID).
		Order("created_at desc").
		Find(&follows)
	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}
