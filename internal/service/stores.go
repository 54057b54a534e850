package service

import (
	"context"

	"training_portal_backend/internal/model"
)

// Store contracts consumed by the services. The gorm repositories satisfy
// them in production; tests plug in in-memory fakes.

type UserCatalog interface {
	FindByID(id uint) (*model.User, error)
	FindAll() ([]model.User, error)
	Count() (int64, error)
	CountByRole(role model.UserRole) (int64, error)
}

// UserAccounts adds the mutating account operations auth needs on top of
// the read-only catalog.
type UserAccounts interface {
	UserCatalog
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
}

type CourseCatalog interface {
	FindByID(id uint) (*model.Course, error)
	FindAll() ([]model.Course, error)
	Count() (int64, error)
}

type ProgressStore interface {
	FindByUserAndCourse(userID, courseID uint) (*model.CourseProgress, error)
	FindByUser(userID uint) ([]model.CourseProgress, error)
	FindAll() ([]model.CourseProgress, error)
	Save(progress *model.CourseProgress) error
}

type BadgeStore interface {
	Create(badge *model.Badge) error
	FindByUser(userID uint) ([]model.Badge, error)
	FindAll() ([]model.Badge, error)
}

// PresenceCounter reports how many users were active recently.
type PresenceCounter interface {
	CountOnline(ctx context.Context) (int, error)
}
