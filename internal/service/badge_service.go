package service

import (
	"training_portal_backend/internal/model"
)

type BadgeService struct {
	Badges  BadgeStore
	Courses CourseCatalog
}

func NewBadgeService(badges BadgeStore, courses CourseCatalog) *BadgeService {
	return &BadgeService{Badges: badges, Courses: courses}
}

// GetUserBadges returns a user's badges joined with the triggering course's
// title. Badges without a course, or pointing at a missing one, keep an
// empty title.
func (s *BadgeService) GetUserBadges(userID uint) ([]model.UserBadge, error) {
	badges, err := s.Badges.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	courses, err := s.Courses.FindAll()
	if err != nil {
		return nil, err
	}
	titles := make(map[uint]string, len(courses))
	for _, c := range courses {
		titles[c.ID] = c.Title
	}

	result := make([]model.UserBadge, len(badges))
	for i, b := range badges {
		entry := model.UserBadge{Badge: b}
		if b.CourseID != nil {
			entry.CourseTitle = titles[*b.CourseID]
		}
		result[i] = entry
	}

	return result, nil
}

func (s *BadgeService) GetAllBadges() ([]model.Badge, error) {
	return s.Badges.FindAll()
}
