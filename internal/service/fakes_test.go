package service

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"training_portal_backend/internal/model"
	"training_portal_backend/pkg/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// In-memory store fakes. They implement the store interfaces the services
// consume so tests run without a database.

type fakeUserStore struct {
	mu    sync.Mutex
	users []model.User
}

func (f *fakeUserStore) FindByID(id uint) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindAll() ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeUserStore) Count() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

func (f *fakeUserStore) CountByRole(role model.UserRole) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i := range f.users {
		if f.users[i].Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserStore) Create(user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = uint(len(f.users) + 1)
	f.users = append(f.users, *user)
	return nil
}

type fakeCourseStore struct {
	courses []model.Course
}

func (f *fakeCourseStore) FindByID(id uint) (*model.Course, error) {
	for i := range f.courses {
		if f.courses[i].ID == id {
			c := f.courses[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseStore) FindAll() ([]model.Course, error) {
	out := make([]model.Course, len(f.courses))
	copy(out, f.courses)
	return out, nil
}

func (f *fakeCourseStore) Count() (int64, error) {
	return int64(len(f.courses)), nil
}

type fakeProgressStore struct {
	mu      sync.Mutex
	records []model.CourseProgress
}

func (f *fakeProgressStore) FindByUserAndCourse(userID, courseID uint) (*model.CourseProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].UserID == userID && f.records[i].CourseID == courseID {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeProgressStore) FindByUser(userID uint) ([]model.CourseProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.CourseProgress
	for i := range f.records {
		if f.records[i].UserID == userID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func (f *fakeProgressStore) FindAll() ([]model.CourseProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.CourseProgress, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeProgressStore) Save(progress *model.CourseProgress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.records {
		if f.records[i].UserID == progress.UserID && f.records[i].CourseID == progress.CourseID {
			progress.ID = f.records[i].ID
			f.records[i] = *progress
			return nil
		}
	}
	progress.ID = uint(len(f.records) + 1)
	f.records = append(f.records, *progress)
	return nil
}

type fakeBadgeStore struct {
	mu     sync.Mutex
	badges []model.Badge
}

func (f *fakeBadgeStore) Create(badge *model.Badge) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.badges = append(f.badges, *badge)
	return nil
}

func (f *fakeBadgeStore) FindByUser(userID uint) ([]model.Badge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Badge
	for i := range f.badges {
		if f.badges[i].UserID == userID {
			out = append(out, f.badges[i])
		}
	}
	return out, nil
}

func (f *fakeBadgeStore) FindAll() ([]model.Badge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Badge, len(f.badges))
	copy(out, f.badges)
	return out, nil
}

func (f *fakeBadgeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.badges)
}

type fakePresence struct {
	online int
	err    error
}

func (f *fakePresence) CountOnline(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.online, nil
}

var errPresenceDown = errors.New("presence backend unreachable")
