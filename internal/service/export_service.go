package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"training_portal_backend/internal/model"
	"training_portal_backend/internal/util"
	"training_portal_backend/pkg/logger"

	"go.uber.org/zap"
)

// ExportField is one named column value; ExportRow keeps column order,
// which a plain map would not.
type ExportField struct {
	Key   string
	Value string
}

type ExportRow []ExportField

type ExportResult struct {
	Filename string
	Data     string
}

type ExportService struct {
	Users    UserCatalog
	Courses  CourseCatalog
	Progress ProgressStore
	Storage  StorageProvider
}

func NewExportService(users UserCatalog, courses CourseCatalog, progress ProgressStore, storage StorageProvider) *ExportService {
	return &ExportService{
		Users:    users,
		Courses:  courses,
		Progress: progress,
		Storage:  storage,
	}
}

// FormatCSV renders rows as delimited text: the header is the first row's
// keys joined by commas, and every value is wrapped in double quotes.
// Embedded quotes and commas are NOT escaped — this matches the legacy
// export format consumers already parse; switching to encoding/csv would
// change the byte output.
func FormatCSV(rows []ExportRow) string {
	var header []string
	if len(rows) > 0 {
		for _, field := range rows[0] {
			header = append(header, field.Key)
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(header, ","))
	for _, row := range rows {
		values := make([]string, len(row))
		for i, field := range row {
			values[i] = `"` + field.Value + `"`
		}
		lines = append(lines, strings.Join(values, ","))
	}

	return strings.Join(lines, "\n")
}

// Export renders the requested data set as CSV and archives a copy through
// the storage provider (best effort).
func (s *ExportService) Export(ctx context.Context, kind string) (*ExportResult, error) {
	var rows []ExportRow
	var filename string

	switch kind {
	case "users":
		users, err := s.Users.FindAll()
		if err != nil {
			return nil, err
		}
		rows = buildUserRows(users)
		filename = "usuarios.csv"
	case "courses":
		courseRows, err := s.buildCourseRows()
		if err != nil {
			return nil, err
		}
		rows = courseRows
		filename = "cursos.csv"
	default:
		return nil, util.ErrInvalidExportType
	}

	data := FormatCSV(rows)
	s.archive(ctx, filename, data)

	return &ExportResult{Filename: filename, Data: data}, nil
}

func buildUserRows(users []model.User) []ExportRow {
	rows := make([]ExportRow, len(users))
	for i, u := range users {
		rows[i] = ExportRow{
			{Key: "id", Value: strconv.FormatUint(uint64(u.ID), 10)},
			{Key: "nombre", Value: u.Name},
			{Key: "email", Value: u.Email},
			{Key: "rol", Value: string(u.Role)},
			{Key: "fecha_creacion", Value: u.CreatedAt.Format(time.RFC3339)},
		}
	}
	return rows
}

func (s *ExportService) buildCourseRows() ([]ExportRow, error) {
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

	rows := make([]ExportRow, len(courses))
	for i, c := range courses {
		rate := "0%"
		if enrolled[c.ID] > 0 {
			rate = fmt.Sprintf("%.1f%%", util.Rate(completed[c.ID], enrolled[c.ID]))
		}

		rows[i] = ExportRow{
			{Key: "id", Value: strconv.FormatUint(uint64(c.ID), 10)},
			{Key: "titulo", Value: c.Title},
			{Key: "descripcion", Value: c.Description},
			{Key: "categoria", Value: c.Category},
			{Key: "instructor", Value: userNames[c.InstructorID]},
			{Key: "inscritos", Value: strconv.Itoa(enrolled[c.ID])},
			{Key: "completados", Value: strconv.Itoa(completed[c.ID])},
			{Key: "tasa_completacion", Value: rate},
		}
	}

	return rows, nil
}

func (s *ExportService) archive(ctx context.Context, filename, data string) {
	if s.Storage == nil {
		return
	}

	name := fmt.Sprintf("exports/%s-%s", time.Now().Format("20060102-150405"), filename)
	reader := strings.NewReader(data)
	if _, err := s.Storage.Upload(ctx, name, reader, int64(len(data)), "text/csv"); err != nil {
		logger.Log.Error("failed to archive export", zap.String("file", name), zap.Error(err))
	}
}
