package model

import (
	"time"
)

// Follow is a directed edge: follower follows follow_on.
type Follow struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	FollowerID uint64    `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"follower_id"`
	FollowOnID uint64    `gorm:"column:follow_on_id;not null;uniqueIndex:idx_follow_pair" json:"follow_on_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
