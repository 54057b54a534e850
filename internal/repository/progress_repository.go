package repository

import (
	"training_portal_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndCourse(userID, courseID uint) (*model.CourseProgress, error) {
	var progress model.CourseProgress
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.CourseProgress, error) {
	var records []model.CourseProgress
	err := r.DB.Where("user_id = ?", userID).Order("id asc").Find(&records).Error
	return records, err
}

func (r *ProgressRepository) FindByCourse(courseID uint) ([]model.CourseProgress, error) {
	var records []model.CourseProgress
	err := r.DB.Where("course_id = ?", courseID).Find(&records).Error
	return records, err
}

func (r *ProgressRepository) FindAll() ([]model.CourseProgress, error) {
	var records []model.CourseProgress
	err := r.DB.Order("id asc").Find(&records).Error
	return records, err
}

// Save upserts on the (user_id, course_id) unique index so a record is
// created on the first report and overwritten on every later one.
func (r *ProgressRepository) Save(progress *model.CourseProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"percentage", "status", "last_activity", "completed_at", "updated_at",
		}),
	}).Create(progress).Error
}

func (r *ProgressRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.CourseProgress{}).Count(&count).Error
	return count, err
}

func (r *ProgressRepository) CountByStatus(status model.ProgressStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.CourseProgress{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
