package database

import (
	"fmt"
	"log"

	"training_portal_backend/internal/config"
	"training_portal_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseProgress{},
		&model.Badge{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed a starter catalog so a fresh install has something to show.
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count == 0 {
		defaultCourses := []model.Course{
			{Title: "Introducción a React", Description: "Curso básico de React desde cero", Category: "Frontend", Modules: 5, Duration: "10 horas"},
			{Title: "Node.js Avanzado", Description: "Curso avanzado de Node.js y Express", Category: "Backend", Modules: 8, Duration: "15 horas"},
			{Title: "AWS Fundamentals", Description: "Conceptos básicos de Amazon Web Services", Category: "Cloud", Modules: 6, Duration: "12 horas"},
		}
		for _, c := range defaultCourses {
			db.Create(&c)
		}
	}

	return db, nil
}
