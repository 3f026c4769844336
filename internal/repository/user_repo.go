package repository

import (
	"Chirp/internal/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.User, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]*model.User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*model.User, error)
	ResolveByAPIKey(ctx context.Context, apiKey string) (*model.User, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	result := s.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

func (s *UserRepoImpl) GetByIDs(ctx context.Context, ids []uint64) ([]*model.User, error) {
	users := make([]*model.User, 0)
	if len(ids) == 0 {
		return users, nil
	}
	result := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) GetByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	var user model.User
	result := s.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// ResolveByAPIKey returns the user owning apiKey, provisioning one on first
// sight. The provisioning insert is guarded by the unique index on api_key:
// when a concurrent request wins the race the insert affects zero rows and
// the winner's row is read back inside the same transaction.
func (s *UserRepoImpl) ResolveByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	user, err := s.GetByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	provisioned := model.User{APIKey: apiKey}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxID uint64
		if err := tx.Model(&model.User{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return err
		}
		provisioned.Name = fmt.Sprintf("User@%d", maxID+1)

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&provisioned)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return tx.Where("api_key = ?", apiKey).First(&provisioned).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &provisioned, nil
}
