package service

import (
	"Chirp/internal/api/dto"
	"Chirp/internal/model"
	"Chirp/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type UserService interface {
	ResolveByAPIKey(ctx context.Context, apiKey string) (*model.User, error)
	GetProfile(ctx context.Context, userID uint64) (*dto.UserProfileDTO, error)
}

type UserServiceImpl struct {
	userRepo   repository.UserRepo
	followRepo repository.FollowRepo
}

func NewUserService(userRepo repository.UserRepo, followRepo repository.FollowRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo, followRepo: followRepo}
}

// ResolveByAPIKey maps an opaque key to its user, provisioning one on first
// contact. Every authenticated endpoint is implicitly an upsert through here.
func (s *UserServiceImpl) ResolveByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	return s.userRepo.ResolveByAPIKey(ctx, apiKey)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.UserProfileDTO, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	followerEdges, err := s.followRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	followingEdges, err := s.followRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	followerIDs := make([]uint64, 0, len(followerEdges))
	for _, edge := range followerEdges {
		followerIDs = append(followerIDs, edge.FollowerID)
	}
	followingIDs := make([]uint64, 0, len(followingEdges))
	for _, edge := range followingEdges {
		followingIDs = append(followingIDs, edge.FollowOnID)
	}

	followers, err := s.userRefs(ctx, followerIDs)
	if err != nil {
		return nil, err
	}
	following, err := s.userRefs(ctx, followingIDs)
	if err != nil {
		return nil, err
	}

	profile := &dto.UserProfileDTO{
		Followers: followers,
		Following: following,
	}
	if err = copier.Copy(profile, user); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *UserServiceImpl) userRefs(ctx context.Context, ids []uint64) ([]dto.UserRefDTO, error) {
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	refs := make([]dto.UserRefDTO, 0, len(users))
	if err = copier.Copy(&refs, users); err != nil {
		return nil, err
	}
	return refs, nil
}
