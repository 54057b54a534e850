package model

// swagger:model Course
type Course struct {
	BaseModel
	Title        string `gorm:"size:255;not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Category     string `gorm:"size:100;index" json:"category"`
	InstructorID uint   `gorm:"index;type:bigint unsigned" json:"instructorId"`
	Modules      int    `gorm:"default:0" json:"modules"`
	Duration     string `gorm:"size:50" json:"duration"`
}

func (Course) TableName() string {
	return "courses"
}
