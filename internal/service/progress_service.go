package service

import (
	"fmt"
	"time"

	"training_portal_backend/internal/model"
	"training_portal_backend/internal/util"
	"training_portal_backend/pkg/keylock"
	"training_portal_backend/pkg/logger"
	"training_portal_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type ProgressService struct {
	Progress ProgressStore
	Badges   BadgeStore
	Courses  CourseCatalog
	Users    UserCatalog

	// Serializes the read-decide-write-award sequence per enrollment so two
	// concurrent completions cannot both mint a badge. Distinct enrollments
	// proceed in parallel.
	locks *keylock.KeyLock
}

func NewProgressService(
	progress ProgressStore,
	badges BadgeStore,
	courses CourseCatalog,
	users UserCatalog,
) *ProgressService {
	return &ProgressService{
		Progress: progress,
		Badges:   badges,
		Courses:  courses,
		Users:    users,
		locks:    keylock.New(),
	}
}

// RecordProgress applies a progress report for one (user, course) enrollment.
// The record is created on the first report and overwritten afterwards. The
// stored status is derived from the percentage; the client-sent status is a
// hint only and is logged when it disagrees. A badge is awarded exactly once
// per transition into completed: re-saving 100% on an already completed
// record mints nothing.
func (s *ProgressService) RecordProgress(userID, courseID uint, percentage int, requested model.ProgressStatus) (*model.CourseProgress, error) {
	if percentage < 0 || percentage > 100 {
		return nil, util.ErrInvalidPercentage
	}

	course, err := s.Courses.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, util.ErrCourseNotFound
	}

	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, util.ErrUserNotFound
	}

	status := model.DeriveStatus(percentage)
	if requested != "" && requested != status {
		logger.Log.Warn("client status ignored, derived from percentage",
			zap.Uint("userId", userID),
			zap.Uint("courseId", courseID),
			zap.String("requested", string(requested)),
			zap.String("derived", string(status)))
	}

	key := fmt.Sprintf("%d:%d", userID, courseID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	record, err := s.Progress.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	wasCompleted := record != nil && record.Status == model.Completed

	if record == nil {
		record = &model.CourseProgress{
			UserID:   userID,
			CourseID: courseID,
		}
	}

	record.Percentage = percentage
	record.Status = status
	record.LastActivity = now

	switch {
	case status == model.Completed && record.CompletedAt == nil:
		record.CompletedAt = &now
	case status != model.Completed:
		// CompletedAt only exists while the record is completed.
		record.CompletedAt = nil
	}

	if err := s.Progress.Save(record); err != nil {
		return nil, err
	}

	if status == model.Completed && !wasCompleted {
		if err := s.awardBadge(user, course, now); err != nil {
			return nil, err
		}
	}

	return record, nil
}

func (s *ProgressService) awardBadge(user *model.User, course *model.Course, earnedAt time.Time) error {
	courseID := course.ID
	badge := &model.Badge{
		UserID:   user.ID,
		Name:     fmt.Sprintf("Completado: %s", course.Title),
		CourseID: &courseID,
		EarnedAt: earnedAt,
	}

	if err := s.Badges.Create(badge); err != nil {
		return err
	}

	monitoring.BadgesAwarded.Inc()
	logger.Log.Info("badge awarded",
		zap.Uint("userId", user.ID),
		zap.Uint("courseId", course.ID),
		zap.String("badge", badge.Name))
	return nil
}

// GetUserProgress returns all of a user's progress records joined with the
// course catalog. Records pointing at a missing course keep empty join
// fields instead of failing.
func (s *ProgressService) GetUserProgress(userID uint) ([]model.UserCourseProgress, error) {
	records, err := s.Progress.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	courses, err := s.Courses.FindAll()
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	result := make([]model.UserCourseProgress, len(records))
	for i, rec := range records {
		entry := model.UserCourseProgress{CourseProgress: rec}
		if course, ok := byID[rec.CourseID]; ok {
			entry.CourseTitle = course.Title
			entry.CourseCategory = course.Category
		}
		result[i] = entry
	}

	return result, nil
}

// GetCourseProgress looks up a single enrollment. It returns (nil, nil)
// when the user never reported progress for the course.
func (s *ProgressService) GetCourseProgress(userID, courseID uint) (*model.CourseProgress, error) {
	return s.Progress.FindByUserAndCourse(userID, courseID)
}
