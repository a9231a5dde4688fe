package repositories

import (
	"context"
	"time"

	"mentorhub/internal/adapters/persistence/models"
)

// StudentRepository defines student repository interface
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// MentorRepository defines mentor repository interface
type MentorRepository interface {
	Create(ctx context.Context, mentor *models.Mentor) error
	GetByID(ctx context.Context, id uint) (*models.Mentor, error)
	GetByEmail(ctx context.Context, email string) (*models.Mentor, error)
	Update(ctx context.Context, mentor *models.Mentor) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.Mentor, int64, error)
}

// AppointmentRepository defines appointment repository interface
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*models.Appointment, error)
	ListByMentor(ctx context.Context, mentorID uint) ([]*models.Appointment, error)
	SlotTaken(ctx context.Context, mentorID uint, date time.Time, timeSlot string) (bool, error)
	Delete(ctx context.Context, id uint) error
}
