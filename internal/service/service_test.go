package service

import (
	"Chirp/internal/pkg/database"
	"Chirp/internal/repository"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testRepos struct {
	db         *gorm.DB
	user       repository.UserRepo
	tweet      repository.TweetRepo
	follow     repository.FollowRepo
	like       repository.LikeRepo
	attachment repository.AttachmentRepo
}

func setupRepos(t *testing.T) *testRepos {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	return &testRepos{
		db:         db,
		user:       repository.NewUserRepo(db),
		tweet:      repository.NewTweetRepo(db),
		follow:     repository.NewFollowRepo(db),
		like:       repository.NewLikeRepo(db),
		attachment: repository.NewAttachmentRepo(db),
	}
}

func (r *testRepos) newTweetService(feedScope string) TweetService {
	return NewTweetService(r.tweet, r.attachment, r.like, r.follow, r.user, feedScope)
}
