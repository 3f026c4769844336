package service

import (
	"Chirp/internal/model"
	"Chirp/internal/repository"
	"context"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followOnID uint64) error
	Unfollow(ctx context.Context, followerID, followOnID uint64) error
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo) FollowService {
	return &FollowServiceImpl{followRepo: followRepo, userRepo: userRepo}
}

// Follow creates the edge. Following the same user twice is absorbed by the
// unique pair index; following yourself is rejected.
func (s *FollowServiceImpl) Follow(ctx context.Context, followerID, followOnID uint64) error {
	if followerID == followOnID {
		return ErrFollowSelf
	}

	target, err := s.userRepo.GetByID(ctx, followOnID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	return s.followRepo.Create(ctx, &model.Follow{
		FollowerID: followerID,
		FollowOnID: followOnID,
	})
}

// Unfollow deletes the edge if present; a missing edge still succeeds.
func (s *FollowServiceImpl) Unfollow(ctx context.Context, followerID, followOnID uint64) error {
	return s.followRepo.Delete(ctx, followerID, followOnID)
}
