package repository

import (
	"Chirp/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetCreate_LinksAttachments(t *testing.T) {
	db := setupTestDB(t)
	tweetRepo := NewTweetRepo(db)
	attachmentRepo := NewAttachmentRepo(db)
	ctx := context.Background()

	a1 := &model.Attachment{URL: "uploads/a.png", Src: "a.png"}
	a2 := &model.Attachment{URL: "uploads/b.png", Src: "b.png"}
	require.NoError(t, attachmentRepo.Create(ctx, a1))
	require.NoError(t, attachmentRepo.Create(ctx, a2))

	tweet := &model.Tweet{AuthorID: 1, Content: "with media"}
	require.NoError(t, tweetRepo.Create(ctx, tweet, []uint64{a1.ID}))
	require.NotZero(t, tweet.ID)

	linked, err := attachmentRepo.ListByTweetIDs(ctx, []uint64{tweet.ID})
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, a1.ID, linked[0].ID)

	// a2 was never referenced and stays orphaned.
	orphans, err := attachmentRepo.GetByIDs(ctx, []uint64{a2.ID})
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Nil(t, orphans[0].TweetID)
}

func TestTweetDeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	tweetRepo := NewTweetRepo(db)
	attachmentRepo := NewAttachmentRepo(db)
	likeRepo := NewLikeRepo(db)
	ctx := context.Background()

	attachment := &model.Attachment{URL: "uploads/c.png", Src: "c.png"}
	require.NoError(t, attachmentRepo.Create(ctx, attachment))

	tweet := &model.Tweet{AuthorID: 1, Content: "doomed"}
	require.NoError(t, tweetRepo.Create(ctx, tweet, []uint64{attachment.ID}))
	require.NoError(t, likeRepo.Create(ctx, &model.Like{TweetID: tweet.ID, UserID: 2}))

	require.NoError(t, tweetRepo.DeleteCascade(ctx, tweet.ID))

	gone, err := tweetRepo.GetByID(ctx, tweet.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	attachments, err := attachmentRepo.ListByTweetIDs(ctx, []uint64{tweet.ID})
	require.NoError(t, err)
	assert.Empty(t, attachments)

	likes, err := likeRepo.ListByTweetIDs(ctx, []uint64{tweet.ID})
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestLikeCreate_DuplicateAbsorbed(t *testing.T) {
	db := setupTestDB(t)
	likeRepo := NewLikeRepo(db)
	ctx := context.Background()

	require.NoError(t, likeRepo.Create(ctx, &model.Like{TweetID: 7, UserID: 3}))
	require.NoError(t, likeRepo.Create(ctx, &model.Like{TweetID: 7, UserID: 3}))

	likes, err := likeRepo.ListByTweetIDs(ctx, []uint64{7})
	require.NoError(t, err)
	assert.Len(t, likes, 1)
}

func TestFollowCreate_DuplicateAbsorbed(t *testing.T) {
	db := setupTestDB(t)
	followRepo := NewFollowRepo(db)
	ctx := context.Background()

	require.NoError(t, followRepo.Create(ctx, &model.Follow{FollowerID: 1, FollowOnID: 2}))
	require.NoError(t, followRepo.Create(ctx, &model.Follow{FollowerID: 1, FollowOnID: 2}))

	following, err := followRepo.ListFollowing(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, following, 1)

	// Reverse direction is a distinct edge.
	require.NoError(t, followRepo.Create(ctx, &model.Follow{FollowerID: 2, FollowOnID: 1}))
	followers, err := followRepo.ListFollowers(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, followers, 1)
}
