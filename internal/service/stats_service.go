package service

import (
	"context"
	"sort"
	"time"

	"training_portal_backend/internal/model"
	"training_portal_backend/internal/util"
	"training_portal_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	defaultActivityLimit = 5
	popularCoursesLimit  = 5
	unknownInstructor    = "Instructor no asignado"
)

// StatsService derives dashboard analytics from the current store contents.
// It never mutates anything and recomputes on every call; the data is
// dashboard-scale, a cache would only add staleness.
type StatsService struct {
	Users    UserCatalog
	Courses  CourseCatalog
	Progress ProgressStore
	Presence PresenceCounter
}

func NewStatsService(users UserCatalog, courses CourseCatalog, progress ProgressStore, presence PresenceCounter) *StatsService {
	return &StatsService{
		Users:    users,
		Courses:  courses,
		Progress: progress,
		Presence: presence,
	}
}

func (s *StatsService) DashboardSummary(ctx context.Context) (*model.DashboardSummary, error) {
	totalUsers, err := s.Users.Count()
	if err != nil {
		return nil, err
	}
	totalCourses, err := s.Courses.Count()
	if err != nil {
		return nil, err
	}
	totalAdmins, err := s.Users.CountByRole(model.Admin)
	if err != nil {
		return nil, err
	}
	totalInstructors, err := s.Users.CountByRole(model.Instructor)
	if err != nil {
		return nil, err
	}

	records, err := s.Progress.FindAll()
	if err != nil {
		return nil, err
	}
	completed := 0
	for _, rec := range records {
		if rec.Status == model.Completed {
			completed++
		}
	}

	activeUsers := 0
	if s.Presence != nil {
		activeUsers, err = s.Presence.CountOnline(ctx)
		if err != nil {
			// Presence is informational, a tracker outage should not take
			// down the dashboard.
			logger.Log.Warn("presence count unavailable", zap.Error(err))
			activeUsers = 0
		}
	}

	return &model.DashboardSummary{
		TotalUsers:       int(totalUsers),
		TotalCourses:     int(totalCourses),
		TotalAdmins:      int(totalAdmins),
		TotalInstructors: int(totalInstructors),
		ActiveUsers:      activeUsers,
		CompletionRate:   util.Rate(completed, len(records)),
		TotalEnrollments: len(records),
	}, nil
}

// CoursePopularity ranks every course by enrollment, descending. Courses
// with equal enrollment keep their catalog order (stable sort).
func (s *StatsService) CoursePopularity() ([]model.CourseStat, error) {
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

	stats := make([]model.CourseStat, len(courses))
	for i, course := range courses {
		instructorName := unknownInstructor
		if name, ok := userNames[course.InstructorID]; ok {
			instructorName = name
		}

		stats[i] = model.CourseStat{
			CourseID:       course.ID,
			Title:          course.Title,
			Category:       course.Category,
			Enrolled:       enrolled[course.ID],
			Completed:      completed[course.ID],
			CompletionRate: util.Rate(completed[course.ID], enrolled[course.ID]),
			InstructorName: instructorName,
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Enrolled > stats[j].Enrolled
	})

	return stats, nil
}

// RecentActivity returns the newest progress events, most recent first.
// Records carrying neither a last-activity nor a completion timestamp sort
// as most recent (legacy sentinel behavior, kept deliberately).
func (s *StatsService) RecentActivity(limit int) ([]model.ActivityEntry, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	records, err := s.Progress.FindAll()
	if err != nil {
		return nil, err
	}
	users, err := s.Users.FindAll()
	if err != nil {
		return nil, err
	}
	courses, err := s.Courses.FindAll()
	if err != nil {
		return nil, err
	}

	userNames := make(map[uint]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}
	courseTitles := make(map[uint]string, len(courses))
	for _, c := range courses {
		courseTitles[c.ID] = c.Title
	}

	now := time.Now()
	activityTime := func(rec model.CourseProgress) time.Time {
		if !rec.LastActivity.IsZero() {
			return rec.LastActivity
		}
		if rec.CompletedAt != nil {
			return *rec.CompletedAt
		}
		return now
	}

	sorted := make([]model.CourseProgress, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return activityTime(sorted[i]).After(activityTime(sorted[j]))
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]model.ActivityEntry, len(sorted))
	for i, rec := range sorted {
		userName := userNames[rec.UserID]
		if userName == "" {
			userName = "Usuario"
		}
		courseTitle := courseTitles[rec.CourseID]
		if courseTitle == "" {
			courseTitle = "Curso"
		}
		status := rec.Status
		if status == "" {
			status = model.NotStarted
		}

		entries[i] = model.ActivityEntry{
			UserName:     userName,
			CourseTitle:  courseTitle,
			Percentage:   rec.Percentage,
			Status:       status,
			LastActivity: activityTime(rec),
		}
	}

	return entries, nil
}

// CategoryStats groups the catalog by category label (exact match). The
// result keeps first-encounter order of the catalog scan so output is
// deterministic.
func (s *StatsService) CategoryStats() ([]model.CategoryStat, error) {
	courses, err := s.Courses.FindAll()
	if err != nil {
		return nil, err
	}
	records, err := s.Progress.FindAll()
	if err != nil {
		return nil, err
	}

	enrolled := make(map[uint]int)
	completed := make(map[uint]int)
	for _, rec := range records {
		enrolled[rec.CourseID]++
		if rec.Status == model.Completed {
			completed[rec.CourseID]++
		}
	}

	index := make(map[string]int)
	var stats []model.CategoryStat
	for _, course := range courses {
		i, ok := index[course.Category]
		if !ok {
			i = len(stats)
			index[course.Category] = i
			stats = append(stats, model.CategoryStat{Category: course.Category})
		}
		stats[i].CourseCount++
		stats[i].Enrolled += enrolled[course.ID]
		stats[i].Completed += completed[course.ID]
	}

	for i := range stats {
		stats[i].CompletionRate = util.Rate(stats[i].Completed, stats[i].Enrolled)
	}

	return stats, nil
}

// DashboardStats assembles the full admin dashboard payload.
func (s *StatsService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	summary, err := s.DashboardSummary(ctx)
	if err != nil {
		return nil, err
	}
	popularity, err := s.CoursePopularity()
	if err != nil {
		return nil, err
	}
	if len(popularity) > popularCoursesLimit {
		popularity = popularity[:popularCoursesLimit]
	}
	activity, err := s.RecentActivity(defaultActivityLimit)
	if err != nil {
		return nil, err
	}
	categories, err := s.CategoryStats()
	if err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		Summary:        *summary,
		PopularCourses: popularity,
		RecentActivity: activity,
		CategoryStats:  categories,
	}, nil
}
