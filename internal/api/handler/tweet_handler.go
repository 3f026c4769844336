package handler

import (
	"Chirp/internal/api/dto"
	"Chirp/internal/pkg/response"
	"Chirp/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	tweetSvc service.TweetService
}

func NewTweetHandler(tweetSvc service.TweetService) *TweetHandler {
	return &TweetHandler{tweetSvc: tweetSvc}
}

// ListTweets returns the feed. A storage fault degrades to an HTTP 200
// db_error envelope instead of a 5xx; existing clients depend on that.
func (s *TweetHandler) ListTweets(c *gin.Context) {
	userID := c.GetUint64("user_id")

	tweets, err := s.tweetSvc.ListTweets(c.Request.Context(), userID)
	if err != nil {
		response.SoftFail(c, err)
		return
	}
	response.OK(c, gin.H{"tweets": tweets})
}

func (s *TweetHandler) CreateTweet(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.CreateTweetDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	tweetID, err := s.tweetSvc.CreateTweet(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"tweet_id": tweetID})
}

func (s *TweetHandler) DeleteTweet(c *gin.Context) {
	userID := c.GetUint64("user_id")
	tweetID, err := s.tweetID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.tweetSvc.DeleteTweet(c.Request.Context(), userID, tweetID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (s *TweetHandler) LikeTweet(c *gin.Context) {
	userID := c.GetUint64("user_id")
	tweetID, err := s.tweetID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.tweetSvc.Like(c.Request.Context(), userID, tweetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, nil)
}

func (s *TweetHandler) UnlikeTweet(c *gin.Context) {
	userID := c.GetUint64("user_id")
	tweetID, err := s.tweetID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.tweetSvc.Unlike(c.Request.Context(), userID, tweetID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nil)
}

func (s *TweetHandler) tweetID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("tweet_id"), 10, 64)
	if err != nil {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}
