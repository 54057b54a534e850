package service

import (
	"context"
	"testing"
	"time"

	"training_portal_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsFixture() (*StatsService, *fakeProgressStore, *fakePresence) {
	users := &fakeUserStore{users: []model.User{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Ana", Role: model.Admin},
		{BaseModel: model.BaseModel{ID: 2}, Name: "Luis", Role: model.Instructor},
		{BaseModel: model.BaseModel{ID: 3}, Name: "Marta", Role: model.Learner},
		{BaseModel: model.BaseModel{ID: 4}, Name: "Pedro", Role: model.Learner},
	}}
	courses := &fakeCourseStore{courses: []model.Course{
		{BaseModel: model.BaseModel{ID: 10}, Title: "Introducción a React", Category: "Frontend", InstructorID: 2},
		{BaseModel: model.BaseModel{ID: 20}, Title: "Node.js Avanzado", Category: "Backend", InstructorID: 2},
		{BaseModel: model.BaseModel{ID: 30}, Title: "Vue desde cero", Category: "Frontend"},
	}}
	progress := &fakeProgressStore{}
	presence := &fakePresence{}

	return NewStatsService(users, courses, progress, presence), progress, presence
}

func TestDashboardSummaryCounts(t *testing.T) {
	svc, progress, presence := newStatsFixture()
	presence.online = 7

	progress.records = []model.CourseProgress{
		{UserID: 3, CourseID: 10, Percentage: 100, Status: model.Completed},
		{UserID: 3, CourseID: 20, Percentage: 40, Status: model.InProgress},
		{UserID: 4, CourseID: 10, Percentage: 100, Status: model.Completed},
	}

	summary, err := svc.DashboardSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalUsers)
	assert.Equal(t, 3, summary.TotalCourses)
	assert.Equal(t, 1, summary.TotalAdmins)
	assert.Equal(t, 1, summary.TotalInstructors)
	assert.Equal(t, 7, summary.ActiveUsers)
	assert.Equal(t, 3, summary.TotalEnrollments)
	// 2 of 3 completed, one decimal.
	assert.InDelta(t, 66.7, summary.CompletionRate, 0.001)
}

func TestDashboardSummaryNoEnrollments(t *testing.T) {
	svc, _, _ := newStatsFixture()

	summary, err := svc.DashboardSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.CompletionRate)
	assert.Equal(t, 0, summary.TotalEnrollments)
}

func TestDashboardSummaryPresenceOutage(t *testing.T) {
	svc, _, presence := newStatsFixture()
	presence.err = errPresenceDown

	summary, err := svc.DashboardSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ActiveUsers)
}

func TestCoursePopularityOrdering(t *testing.T) {
	svc, progress, _ := newStatsFixture()

	progress.records = []model.CourseProgress{
		{UserID: 3, CourseID: 20, Status: model.InProgress},
		{UserID: 4, CourseID: 20, Status: model.Completed},
		{UserID: 3, CourseID: 10, Status: model.Completed},
	}

	stats, err := svc.CoursePopularity()
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, uint(20), stats[0].CourseID)
	assert.Equal(t, 2, stats[0].Enrolled)
	assert.Equal(t, 1, stats[0].Completed)
	assert.InDelta(t, 50.0, stats[0].CompletionRate, 0.001)
	assert.Equal(t, "Luis", stats[0].InstructorName)

	assert.Equal(t, uint(10), stats[1].CourseID)
	assert.Equal(t, uint(30), stats[2].CourseID)
	assert.Equal(t, "Instructor no asignado", stats[2].InstructorName)
}

func TestCoursePopularityTiesKeepCatalogOrder(t *testing.T) {
	svc, _, _ := newStatsFixture()

	// No enrollments at all: every course ties at zero, catalog order wins.
	stats, err := svc.CoursePopularity()
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, uint(10), stats[0].CourseID)
	assert.Equal(t, uint(20), stats[1].CourseID)
	assert.Equal(t, uint(30), stats[2].CourseID)
}

func TestRecentActivityOrderingAndLimit(t *testing.T) {
	svc, progress, _ := newStatsFixture()

	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)
	progress.records = []model.CourseProgress{
		{UserID: 3, CourseID: 10, Percentage: 20, Status: model.InProgress, LastActivity: t1},
		{UserID: 4, CourseID: 20, Percentage: 100, Status: model.Completed, LastActivity: t3},
		{UserID: 3, CourseID: 20, Percentage: 60, Status: model.InProgress, LastActivity: t2},
	}

	entries, err := svc.RecentActivity(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Pedro", entries[0].UserName)
	assert.Equal(t, "Node.js Avanzado", entries[0].CourseTitle)
	assert.Equal(t, t3, entries[0].LastActivity)
	assert.Equal(t, t2, entries[1].LastActivity)
}

func TestRecentActivityMissingTimestampSortsFirst(t *testing.T) {
	svc, progress, _ := newStatsFixture()

	old := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	progress.records = []model.CourseProgress{
		{UserID: 3, CourseID: 10, Percentage: 20, Status: model.InProgress, LastActivity: old},
		{UserID: 4, CourseID: 20, Percentage: 50}, // no timestamps, no status
	}

	entries, err := svc.RecentActivity(5)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// The timestampless record gets "now" and sorts to the top; its empty
	// status normalizes to not_started.
	assert.Equal(t, 50, entries[0].Percentage)
	assert.Equal(t, model.NotStarted, entries[0].Status)
	assert.Equal(t, old, entries[1].LastActivity)
}

func TestRecentActivityUnknownReferences(t *testing.T) {
	svc, progress, _ := newStatsFixture()

	progress.records = []model.CourseProgress{
		{UserID: 999, CourseID: 888, Percentage: 10, Status: model.InProgress, LastActivity: time.Now()},
	}

	entries, err := svc.RecentActivity(5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Usuario", entries[0].UserName)
	assert.Equal(t, "Curso", entries[0].CourseTitle)
}

func TestCategoryStatsFirstEncounterOrder(t *testing.T) {
	svc, progress, _ := newStatsFixture()

	progress.records = []model.CourseProgress{
		{UserID: 3, CourseID: 10, Status: model.Completed},
		{UserID: 4, CourseID: 30, Status: model.InProgress},
		{UserID: 3, CourseID: 20, Status: model.Completed},
	}

	stats, err := svc.CategoryStats()
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Frontend appears first in the catalog and owns two courses.
	assert.Equal(t, "Frontend", stats[0].Category)
	assert.Equal(t, 2, stats[0].CourseCount)
	assert.Equal(t, 2, stats[0].Enrolled)
	assert.Equal(t, 1, stats[0].Completed)
	assert.InDelta(t, 50.0, stats[0].CompletionRate, 0.001)

	assert.Equal(t, "Backend", stats[1].Category)
	assert.Equal(t, 1, stats[1].CourseCount)
	assert.InDelta(t, 100.0, stats[1].CompletionRate, 0.001)
}

func TestDashboardStatsComposition(t *testing.T) {
	svc, progress, presence := newStatsFixture()
	presence.online = 2

	progress.records = []model.CourseProgress{
		{UserID: 3, CourseID: 10, Percentage: 100, Status: model.Completed, LastActivity: time.Now()},
	}

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Summary.ActiveUsers)
	assert.Len(t, stats.PopularCourses, 3)
	assert.Len(t, stats.RecentActivity, 1)
	assert.Len(t, stats.CategoryStats, 2)
}
