package repositories

import (
	"context"
	"time"

	"mentorhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// appointmentRepository implements AppointmentRepository interface
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create creates a new appointment. The unique index on
// (mentor_id, date, time_slot) makes this fail with gorm.ErrDuplicatedKey
// when the slot is already booked.
func (r *appointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	return r.db.WithContext(ctx).Create(appt).Error
}

// GetByID gets an appointment by ID with its participants preloaded
func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Mentor").
		Where("id = ?", id).
		First(&appt).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// ListByStudent lists a student's appointments, soonest first
func (r *appointmentRepository) ListByStudent(ctx context.Context, studentID uint) ([]*models.Appointment, error) {
	var appts []*models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Mentor").
		Where("student_id = ?", studentID).
		Order("date, time_slot").
		Find(&appts).Error
	return appts, err
}

// ListByMentor lists a mentor's appointments, soonest first
func (r *appointmentRepository) ListByMentor(ctx context.Context, mentorID uint) ([]*models.Appointment, error) {
	var appts []*models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Mentor").
		Where("mentor_id = ?", mentorID).
		Order("date, time_slot").
		Find(&appts).Error
	return appts, err
}

// SlotTaken checks whether a mentor already has a booking for the slot
func (r *appointmentRepository) SlotTaken(ctx context.Context, mentorID uint, date time.Time, timeSlot string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("mentor_id = ? AND date = ? AND time_slot = ?", mentorID, date, timeSlot).
		Count(&count).Error
	return count > 0, err
}

// Delete hard deletes an appointment so the slot becomes bookable again
func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}
