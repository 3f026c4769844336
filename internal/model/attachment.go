package model

import (
	"time"
)

// Attachment is an uploaded media file. TweetID stays NULL until the
// attachment is linked to a tweet at tweet-creation time.
type Attachment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	TweetID   *uint64   `gorm:"index" json:"tweet_id"`
	URL       string    `gorm:"type:varchar(512);not null" json:"url"`
	Src       string    `gorm:"type:varchar(255);not null" json:"src"`
	Width     int       `gorm:"not null;default:0" json:"width"`
	Height    int       `gorm:"not null;default:0" json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}
