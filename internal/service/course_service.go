package service

import (
	"training_portal_backend/internal/model"
	"training_portal_backend/internal/util"
)

type CourseService struct {
	Courses  CourseCatalog
	Users    UserCatalog
	Progress ProgressStore
}

func NewCourseService(courses CourseCatalog, users UserCatalog, progress ProgressStore) *CourseService {
	return &CourseService{
		Courses:  courses,
		Users:    users,
		Progress: progress,
	}
}

// GetAllCourses lists the catalog with the instructor name and enrollment
// figures joined in.
func (s *CourseService) GetAllCourses() ([]model.CourseDetail, error) {
	courses, err := s.Courses.FindAll()
	if err != nil {
		return nil, err
	}
	users, err := s.Users.FindAll()
	if err != nil {
		return nil, err
	}
	records, err := s.Progress.FindAll()
	if err != nil {
		return nil, err
	}

	userNames := make(map[uint]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}
	enrolled := make(map[uint]int)
	completed := make(map[uint]int)
	for _, rec := range records {
		enrolled[rec.CourseID]++
		if rec.Status == model.Completed {
			completed[rec.CourseID]++
		}
	}

	details := make([]model.CourseDetail, len(courses))
	for i, c := range courses {
		details[i] = s.buildDetail(c, userNames, enrolled[c.ID], completed[c.ID])
	}

	return details, nil
}

func (s *CourseService) GetCourseByID(id uint) (*model.CourseDetail, error) {
	course, err := s.Courses.FindByID(id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, util.ErrCourseNotFound
	}

	users, err := s.Users.FindAll()
	if err != nil {
		return nil, err
	}
	records, err := s.Progress.FindAll()
	if err != nil {
		return nil, err
	}

	userNames := make(map[uint]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}
	enrolled := 0
	completed := 0
	for _, rec := range records {
		if rec.CourseID != id {
			continue
		}
		enrolled++
		if rec.Status == model.Completed {
			completed++
		}
	}

	detail := s.buildDetail(*course, userNames, enrolled, completed)
	return &detail, nil
}

func (s *CourseService) buildDetail(course model.Course, userNames map[uint]string, enrolled, completed int) model.CourseDetail {
	instructorName := "Instructor no disponible"
	if name, ok := userNames[course.InstructorID]; ok {
		instructorName = name
	}

	return model.CourseDetail{
		Course:         course,
		InstructorName: instructorName,
		EnrolledCount:  enrolled,
		CompletionRate: util.Rate(completed, enrolled),
	}
}
