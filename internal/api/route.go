package api

import (
	"Chirp/internal/api/middleware"
	"Chirp/internal/pkg/logger"
	"Chirp/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, userSvc service.UserService) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(userSvc)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"result": true, "message": "pong"})
		})

		tweetGroup := apiGroup.Group("/tweets")
		tweetGroup.Use(auth)
		{
			tweetGroup.GET("", group.TweetHandler.ListTweets)
			tweetGroup.POST("", group.TweetHandler.CreateTweet)
			tweetGroup.DELETE("/:tweet_id", group.TweetHandler.DeleteTweet)
			tweetGroup.POST("/:tweet_id/likes", group.TweetHandler.LikeTweet)
			tweetGroup.DELETE("/:tweet_id/likes", group.TweetHandler.UnlikeTweet)
		}

		mediaGroup := apiGroup.Group("/medias")
		mediaGroup.Use(auth)
		{
			mediaGroup.POST("", group.MediaHandler.Upload)
		}

		userGroup := apiGroup.Group("/users")
		{
			// Profile by id is the only endpoint readable without a key.
			userGroup.GET("/:user_id", group.UserHandler.GetByID)

			authGroup := userGroup.Group("")
			authGroup.Use(auth)
			{
				authGroup.GET("/me", group.UserHandler.GetMe)
				authGroup.POST("/:user_id/follow", group.UserFollowHandler.Follow)
				authGroup.DELETE("/:user_id/follow", group.UserFollowHandler.Unfollow)
			}
		}
	}

	return r
}
