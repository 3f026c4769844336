package api

import "Chirp/internal/api/handler"

// HandlersGroup bundles the initialized handler instances for the router.
type HandlersGroup struct {
	TweetHandler      *handler.TweetHandler
	UserHandler       *handler.UserHandler
	UserFollowHandler *handler.UserFollowHandler
	MediaHandler      *handler.MediaHandler
}
