package model

import (
	"time"
)

type Like struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	TweetID   uint64    `gorm:"not null;uniqueIndex:idx_like_pair;index" json:"tweet_id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_like_pair" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
