package handler

import (
	"Chirp/internal/pkg/response"
	"Chirp/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	followSvc service.FollowService
}

func NewUserFollowHandler(followSvc service.FollowService) *UserFollowHandler {
	return &UserFollowHandler{followSvc: followSvc}
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.followSvc.Follow(c.Request.Context(), userID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, nil)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.followSvc.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
