package model

import (
	"time"
)

// Badge is an append-only achievement marker. Badges are never edited or
// removed; CourseID is optional so badges can be awarded for other reasons.
// swagger:model Badge
type Badge struct {
	UUIDBase
	UserID   uint      `gorm:"index;type:bigint unsigned" json:"userId"`
	Name     string    `gorm:"size:255;not null" json:"badgeName"`
	CourseID *uint     `gorm:"index;type:bigint unsigned" json:"courseId,omitempty"`
	EarnedAt time.Time `json:"earnedAt"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge is a badge joined with the triggering course's title.
type UserBadge struct {
	Badge
	CourseTitle string `json:"courseTitle,omitempty"`
}
