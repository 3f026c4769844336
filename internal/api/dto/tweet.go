package dto

// TweetDTO is one feed entry.
type TweetDTO struct {
	ID          uint64     `json:"id"`
	Content     string     `json:"content"`
	Attachments []string   `json:"attachments"`
	Author      UserRefDTO `json:"author"`
	Likes       []LikerDTO `json:"likes"`
}

// LikerDTO identifies one user who liked a tweet.
type LikerDTO struct {
	UserID uint64 `json:"user_id"`
	Name   string `json:"name"`
}

// CreateTweetDTO is the POST /tweets body.
type CreateTweetDTO struct {
	TweetData     string   `json:"tweet_data" binding:"required"`
	TweetMediaIDs []uint64 `json:"tweet_media_ids"`
}
