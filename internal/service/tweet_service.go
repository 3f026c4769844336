package service

import (
	"Chirp/internal/api/dto"
	"Chirp/internal/model"
	"Chirp/internal/pkg/consts"
	"Chirp/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type TweetService interface {
	CreateTweet(ctx context.Context, authorID uint64, req *dto.CreateTweetDTO) (uint64, error)
	DeleteTweet(ctx context.Context, userID, tweetID uint64) error
	ListTweets(ctx context.Context, userID uint64) ([]*dto.TweetDTO, error)
	Like(ctx context.Context, userID, tweetID uint64) error
	Unlike(ctx context.Context, userID, tweetID uint64) error
}

type TweetServiceImpl struct {
	tweetRepo      repository.TweetRepo
	attachmentRepo repository.AttachmentRepo
	likeRepo       repository.LikeRepo
	followRepo     repository.FollowRepo
	userRepo       repository.UserRepo
	feedScope      string
}

func NewTweetService(
	tweetRepo repository.TweetRepo,
	attachmentRepo repository.AttachmentRepo,
	likeRepo repository.LikeRepo,
	followRepo repository.FollowRepo,
	userRepo repository.UserRepo,
	feedScope string,
) TweetService {
	return &TweetServiceImpl{
		tweetRepo:      tweetRepo,
		attachmentRepo: attachmentRepo,
		likeRepo:       likeRepo,
		followRepo:     followRepo,
		userRepo:       userRepo,
		feedScope:      feedScope,
	}
}

// CreateTweet persists the tweet and links the referenced pre-uploaded
// attachments to it. Unknown media ids are dropped silently.
func (s *TweetServiceImpl) CreateTweet(ctx context.Context, authorID uint64, req *dto.CreateTweetDTO) (uint64, error) {
	attachmentIDs := make([]uint64, 0, len(req.TweetMediaIDs))
	if len(req.TweetMediaIDs) > 0 {
		attachments, err := s.attachmentRepo.GetByIDs(ctx, req.TweetMediaIDs)
		if err != nil {
			return 0, err
		}
		for _, a := range attachments {
			attachmentIDs = append(attachmentIDs, a.ID)
		}
	}

	tweet := &model.Tweet{AuthorID: authorID, Content: req.TweetData}
	if err := s.tweetRepo.Create(ctx, tweet, attachmentIDs); err != nil {
		return 0, err
	}
	return tweet.ID, nil
}

// DeleteTweet removes the tweet plus its likes and attachments. A tweet
// owned by someone else is reported as not found, same as a missing one.
func (s *TweetServiceImpl) DeleteTweet(ctx context.Context, userID, tweetID uint64) error {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet == nil || tweet.AuthorID != userID {
		return ErrTweetNotFound
	}
	return s.tweetRepo.DeleteCascade(ctx, tweetID)
}

func (s *TweetServiceImpl) Like(ctx context.Context, userID, tweetID uint64) error {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet == nil {
		return ErrTweetNotFound
	}
	return s.likeRepo.Create(ctx, &model.Like{TweetID: tweetID, UserID: userID})
}

func (s *TweetServiceImpl) Unlike(ctx context.Context, userID, tweetID uint64) error {
	return s.likeRepo.Delete(ctx, tweetID, userID)
}

// ListTweets assembles the feed: the tweet set picked by the configured
// scope, fanned out to authors, attachments and likers with explicit
// queries. Newest tweet first.
func (s *TweetServiceImpl) ListTweets(ctx context.Context, userID uint64) ([]*dto.TweetDTO, error) {
	var (
		tweets []*model.Tweet
		err    error
	)
	if s.feedScope == consts.FeedScopeFollowing {
		edges, ferr := s.followRepo.ListFollowing(ctx, userID)
		if ferr != nil {
			return nil, ferr
		}
		authorIDs := make([]uint64, 0, len(edges))
		for _, edge := range edges {
			authorIDs = append(authorIDs, edge.FollowOnID)
		}
		tweets, err = s.tweetRepo.ListByAuthorIDs(ctx, authorIDs)
	} else {
		tweets, err = s.tweetRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	tweetIDs := make([]uint64, 0, len(tweets))
	for _, tweet := range tweets {
		tweetIDs = append(tweetIDs, tweet.ID)
	}

	attachments, err := s.attachmentRepo.ListByTweetIDs(ctx, tweetIDs)
	if err != nil {
		return nil, err
	}
	likes, err := s.likeRepo.ListByTweetIDs(ctx, tweetIDs)
	if err != nil {
		return nil, err
	}

	userIDSet := make(map[uint64]struct{}, len(tweets))
	for _, tweet := range tweets {
		userIDSet[tweet.AuthorID] = struct{}{}
	}
	for _, like := range likes {
		userIDSet[like.UserID] = struct{}{}
	}
	userIDs := make([]uint64, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}
	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[uint64]*model.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}

	attachmentsByTweet := make(map[uint64][]string)
	for _, a := range attachments {
		if a.TweetID == nil {
			continue
		}
		attachmentsByTweet[*a.TweetID] = append(attachmentsByTweet[*a.TweetID], a.URL)
	}
	likesByTweet := make(map[uint64][]dto.LikerDTO)
	for _, like := range likes {
		liker := dto.LikerDTO{UserID: like.UserID}
		if user, ok := usersByID[like.UserID]; ok {
			liker.Name = user.Name
		}
		likesByTweet[like.TweetID] = append(likesByTweet[like.TweetID], liker)
	}

	feed := make([]*dto.TweetDTO, 0, len(tweets))
	for _, tweet := range tweets {
		entry := &dto.TweetDTO{
			Attachments: make([]string, 0),
			Likes:       make([]dto.LikerDTO, 0),
		}
		if err = copier.Copy(entry, tweet); err != nil {
			return nil, err
		}
		if urls, ok := attachmentsByTweet[tweet.ID]; ok {
			entry.Attachments = urls
		}
		if likers, ok := likesByTweet[tweet.ID]; ok {
			entry.Likes = likers
		}
		entry.Author = dto.UserRefDTO{ID: tweet.AuthorID}
		if author, ok := usersByID[tweet.AuthorID]; ok {
			entry.Author.Name = author.Name
		}
		feed = append(feed, entry)
	}
	return feed, nil
}
