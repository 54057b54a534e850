package model

import "time"

// DashboardSummary holds the headline figures of the admin dashboard.
type DashboardSummary struct {
	TotalUsers       int     `json:"totalUsers"`
	TotalCourses     int     `json:"totalCourses"`
	TotalAdmins      int     `json:"totalAdmins"`
	TotalInstructors int     `json:"totalInstructors"`
	ActiveUsers      int     `json:"activeUsers"`
	CompletionRate   float64 `json:"completionRate"`
	TotalEnrollments int     `json:"totalEnrollments"`
}

// CourseStat is one row of the course popularity ranking.
type CourseStat struct {
	CourseID       uint    `json:"id"`
	Title          string  `json:"title"`
	Category       string  `json:"category"`
	Enrolled       int     `json:"enrolled"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
	InstructorName string  `json:"instructorName"`
}

// ActivityEntry is one row of the recent activity feed.
type ActivityEntry struct {
	UserName     string         `json:"userName"`
	CourseTitle  string         `json:"courseTitle"`
	Percentage   int            `json:"progress"`
	Status       ProgressStatus `json:"status"`
	LastActivity time.Time      `json:"lastActivity"`
}

// CategoryStat aggregates enrollment per course category.
type CategoryStat struct {
	Category       string  `json:"category"`
	CourseCount    int     `json:"courses"`
	Enrolled       int     `json:"enrolled"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

// DashboardStats is the full payload served to the admin dashboard.
type DashboardStats struct {
	Summary        DashboardSummary `json:"summary"`
	PopularCourses []CourseStat     `json:"popularCourses"`
	RecentActivity []ActivityEntry  `json:"recentActivity"`
	CategoryStats  []CategoryStat   `json:"categoryStats"`
}

// CourseDetail is a catalog entry enriched with enrollment figures.
type CourseDetail struct {
	Course
	InstructorName string  `json:"instructorName"`
	EnrolledCount  int     `json:"enrolledCount"`
	CompletionRate float64 `json:"completionRate"`
}
