package progress

import (
	"time"
)

// Record is one learner interaction with a piece of content. Insert-only.
type Record struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    string    `gorm:"not null;index;column:user_id" json:"user_id"`
	ContentID string    `gorm:"not null;column:content_id" json:"content_id"`
	Status    string    `gorm:"not null;column:status" json:"status"`
	Score     *int      `gorm:"column:score" json:"score"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;column:created_at" json:"created_at"`
}

func (Record) TableName() string { return "progress" }
