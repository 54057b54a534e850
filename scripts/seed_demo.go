// Seeds demo accounts and progress so a fresh install has data to show on
// the dashboard. Intended for local development and demo environments only.
//
// Usage: go run scripts/seed_demo.go

package main

import (
	"log"
	"os"

	"training_portal_backend/internal/config"
	"training_portal_backend/internal/model"
	"training_portal_backend/internal/repository"
	"training_portal_backend/internal/service"
	"training_portal_backend/pkg/database"
	"training_portal_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)
	courseRepo := repository.NewCourseRepository(db)

	authService := service.NewAuthService(userRepo, &cfg)
	progressService := service.NewProgressService(progressRepo, badgeRepo, courseRepo, userRepo)

	demoUsers := []model.User{
		{Name: "Admin Demo", Email: "admin@demo.local", Password: "admin123", Role: model.Admin},
		{Name: "Laura Instructora", Email: "laura@demo.local", Password: "laura123", Role: model.Instructor},
		{Name: "Carlos Estudiante", Email: "carlos@demo.local", Password: "carlos123", Role: model.Learner},
		{Name: "María Estudiante", Email: "maria@demo.local", Password: "maria123", Role: model.Learner},
	}

	seeded := map[string]uint{}
	for i := range demoUsers {
		u := demoUsers[i]
		if err := authService.Register(&u); err != nil {
			log.Printf("skipping %s: %v", u.Email, err)
			existing, _ := userRepo.FindByEmail(u.Email)
			if existing != nil {
				seeded[u.Email] = existing.ID
			}
			continue
		}
		seeded[u.Email] = u.ID
		log.Printf("created %s (%s)", u.Name, u.Role)
	}

	courses, err := courseRepo.FindAll()
	if err != nil || len(courses) == 0 {
		log.Fatalf("no courses available to seed progress against: %v", err)
	}

	type report struct {
		email      string
		course     int
		percentage int
	}
	reports := []report{
		{"carlos@demo.local", 0, 100},
		{"carlos@demo.local", 1, 45},
		{"maria@demo.local", 0, 70},
	}

	for _, r := range reports {
		userID, ok := seeded[r.email]
		if !ok || r.course >= len(courses) {
			continue
		}
		if _, err := progressService.RecordProgress(userID, courses[r.course].ID, r.percentage, ""); err != nil {
			log.Printf("failed to seed progress for %s: %v", r.email, err)
		}
	}

	log.Println("demo data seeded")
}
