package wire

import (
	"Chirp/internal/api"
	"Chirp/internal/api/config"
	"Chirp/internal/api/handler"
	"Chirp/internal/pkg/storage"
	"Chirp/internal/repository"
	"Chirp/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer holds the top level components of the app.
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, store storage.Store, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	tweetRepo := repository.NewTweetRepo(db)
	followRepo := repository.NewFollowRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	attachmentRepo := repository.NewAttachmentRepo(db)

	userService := service.NewUserService(userRepo, followRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	tweetService := service.NewTweetService(tweetRepo, attachmentRepo, likeRepo, followRepo, userRepo, cfg.Feed.Scope)
	mediaService := service.NewMediaService(attachmentRepo, store)

	handlers := &api.HandlersGroup{
		TweetHandler:      handler.NewTweetHandler(tweetService),
		UserHandler:       handler.NewUserHandler(userService),
		UserFollowHandler: handler.NewUserFollowHandler(followService),
		MediaHandler:      handler.NewMediaHandler(mediaService),
	}

	router := api.SetupRouter(handlers, userService)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
