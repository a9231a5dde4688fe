package config

import (
	"log"

	"mentorhub/internal/adapters/persistence/models"
	"mentorhub/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	if err := s.seedMentors(); err != nil {
		log.Printf("Mentor seeder skipped: %v", err)
	}
	if err := s.seedDemoStudent(); err != nil {
		log.Printf("Demo student seeder skipped: %v", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// seedMentors seeds a starter set of mentors for development.
// In production, mentors register through the API.
func (s *Seeder) seedMentors() error {
	var count int64
	s.db.Model(&models.Mentor{}).Count(&count)
	if count > 0 {
		return nil // Mentors already exist
	}

	hashedPassword, err := password.Hash("password123")
	if err != nil {
		return err
	}

	mentors := []models.Mentor{
		{FirstName: "John", LastName: "Doe", Email: "john@example.com", Password: hashedPassword, Specialization: "UI/UX Design", Availability: "Weekdays"},
		{FirstName: "Jane", LastName: "Smith", Email: "jane@example.com", Password: hashedPassword, Specialization: "Full Stack Development", Availability: "Evenings"},
		{FirstName: "Alex", LastName: "Johnson", Email: "alex@example.com", Password: hashedPassword, Specialization: "Mobile Development", Availability: "Weekends"},
		{FirstName: "Sarah", LastName: "Williams", Email: "sarah@example.com", Password: hashedPassword, Specialization: "Data Science", Availability: "Mornings"},
	}

	if err := s.db.Create(&mentors).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d mentors", len(mentors))
	return nil
}

// seedDemoStudent seeds a demo student account for development
func (s *Seeder) seedDemoStudent() error {
	var count int64
	s.db.Model(&models.Student{}).Where("email = ?", "demo@example.com").Count(&count)
	if count > 0 {
		return nil // Demo student already exists
	}

	hashedPassword, err := password.Hash("password123")
	if err != nil {
		return err
	}

	student := &models.Student{
		FirstName:    "Demo",
		LastName:     "Student",
		Email:        "demo@example.com",
		Password:     hashedPassword,
		TargetSchool: "Demo University",
		Track:        "Web Development",
	}

	if err := s.db.Create(student).Error; err != nil {
		return err
	}

	log.Printf("Demo student created: %s", student.Email)
	return nil
}
