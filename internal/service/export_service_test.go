package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"training_portal_backend/internal/model"
	"training_portal_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploads map[string]string
}

func (f *fakeStorage) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if f.uploads == nil {
		f.uploads = map[string]string{}
	}
	f.uploads[filename] = string(data)
	return filename, nil
}

func (f *fakeStorage) Delete(ctx context.Context, filename string) error { return nil }

func (f *fakeStorage) GetURL(filename string) string { return filename }

func newExportFixture() (*ExportService, *fakeProgressStore, *fakeStorage) {
	created := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	users := &fakeUserStore{users: []model.User{
		{BaseModel: model.BaseModel{ID: 1, CreatedAt: created}, Name: "Ana", Email: "ana@example.com", Role: model.Admin},
		{BaseModel: model.BaseModel{ID: 2, CreatedAt: created}, Name: "Luis", Email: "luis@example.com", Role: model.Learner},
	}}
	courses := &fakeCourseStore{courses: []model.Course{
		{BaseModel: model.BaseModel{ID: 10}, Title: "Introducción a React", Description: "Curso básico", Category: "Frontend", InstructorID: 1},
		{BaseModel: model.BaseModel{ID: 20}, Title: "Node.js Avanzado", Description: "Curso avanzado", Category: "Backend"},
	}}
	progress := &fakeProgressStore{}
	storage := &fakeStorage{}

	return NewExportService(users, courses, progress, storage), progress, storage
}

func TestFormatCSV(t *testing.T) {
	rows := []ExportRow{
		{{Key: "id", Value: "1"}, {Key: "nombre", Value: "A"}},
	}

	assert.Equal(t, "id,nombre\n\"1\",\"A\"", FormatCSV(rows))
}

func TestFormatCSVEmpty(t *testing.T) {
	assert.Equal(t, "", FormatCSV(nil))
}

func TestFormatCSVDoesNotEscapeQuotes(t *testing.T) {
	rows := []ExportRow{
		{{Key: "nombre", Value: `say "hi", twice`}},
	}

	// Legacy format: values are wrapped but never escaped.
	assert.Equal(t, "nombre\n\"say \"hi\", twice\"", FormatCSV(rows))
}

func TestExportUsers(t *testing.T) {
	svc, _, _ := newExportFixture()

	result, err := svc.Export(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, "usuarios.csv", result.Filename)

	lines := strings.Split(result.Data, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,nombre,email,rol,fecha_creacion", lines[0])
	assert.Equal(t, `"1","Ana","ana@example.com","admin","2026-01-15T09:30:00Z"`, lines[1])
	assert.Equal(t, `"2","Luis","luis@example.com","learner","2026-01-15T09:30:00Z"`, lines[2])
}

func TestExportCourses(t *testing.T) {
	svc, progress, _ := newExportFixture()

	progress.records = []model.CourseProgress{
		{UserID: 2, CourseID: 10, Status: model.Completed},
		{UserID: 1, CourseID: 10, Status: model.InProgress},
	}

	result, err := svc.Export(context.Background(), "courses")
	require.NoError(t, err)
	assert.Equal(t, "cursos.csv", result.Filename)

	lines := strings.Split(result.Data, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,titulo,descripcion,categoria,instructor,inscritos,completados,tasa_completacion", lines[0])
	assert.Equal(t, `"10","Introducción a React","Curso básico","Frontend","Ana","2","1","50.0%"`, lines[1])
	// No enrollments: the rate is the literal 0% without a decimal.
	assert.Equal(t, `"20","Node.js Avanzado","Curso avanzado","Backend","","0","0","0%"`, lines[2])
}

func TestExportInvalidType(t *testing.T) {
	svc, _, _ := newExportFixture()

	_, err := svc.Export(context.Background(), "badges")
	assert.ErrorIs(t, err, util.ErrInvalidExportType)
}

func TestExportArchivesCopy(t *testing.T) {
	svc, _, storage := newExportFixture()

	result, err := svc.Export(context.Background(), "users")
	require.NoError(t, err)

	require.Len(t, storage.uploads, 1)
	for name, data := range storage.uploads {
		assert.True(t, strings.HasPrefix(name, "exports/"))
		assert.True(t, strings.HasSuffix(name, "usuarios.csv"))
		assert.Equal(t, result.Data, data)
	}
}

func TestExportWithoutStorage(t *testing.T) {
	svc, _, _ := newExportFixture()
	svc.Storage = nil

	result, err := svc.Export(context.Background(), "users")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Data)
}
