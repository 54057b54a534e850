package model

import (
	"time"
)

type ProgressStatus string

const (
	NotStarted ProgressStatus = "not_started"
	InProgress ProgressStatus = "in_progress"
	Completed  ProgressStatus = "completed"
)

// DeriveStatus maps a completion percentage to its canonical status.
// The client also sends a status, but it is only a hint: 100 means
// completed, 0 means not started, anything in between is in progress.
func DeriveStatus(percentage int) ProgressStatus {
	switch {
	case percentage >= 100:
		return Completed
	case percentage <= 0:
		return NotStarted
	default:
		return InProgress
	}
}

// CourseProgress is one enrollment: a (user, course) pair exists here
// from the first progress report onwards and is never deleted.
// swagger:model CourseProgress
type CourseProgress struct {
	BaseModel
	UserID       uint           `gorm:"uniqueIndex:idx_user_course;type:bigint unsigned" json:"userId"`
	CourseID     uint           `gorm:"uniqueIndex:idx_user_course;type:bigint unsigned" json:"courseId"`
	Percentage   int            `gorm:"default:0" json:"progress"`
	Status       ProgressStatus `gorm:"type:enum('not_started','in_progress','completed');default:'not_started'" json:"status"`
	LastActivity time.Time      `json:"lastActivity"`
	CompletedAt  *time.Time     `json:"completedAt,omitempty"`
}

func (CourseProgress) TableName() string {
	return "course_progress"
}

// UserCourseProgress is a progress record joined with its course catalog
// entry. Title and category stay empty if the course cannot be resolved.
type UserCourseProgress struct {
	CourseProgress
	CourseTitle    string `json:"courseTitle,omitempty"`
	CourseCategory string `json:"courseCategory,omitempty"`
}
