package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mentorhub/internal/adapters/persistence/models"
	"mentorhub/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Booking errors
var (
	ErrInvalidReference = errors.New("student or mentor does not exist")
	ErrInvalidSlot      = errors.New("time is not a bookable slot")
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrSlotTaken        = errors.New("mentor already has a booking for this slot")
	ErrApptNotFound     = errors.New("appointment not found")
	ErrNotParticipant   = errors.New("appointment does not belong to the requester")
)

// BookingService handles appointment creation, listing and cancellation
type BookingService struct {
	apptRepo    repositories.AppointmentRepository
	studentRepo repositories.StudentRepository
	mentorRepo  repositories.MentorRepository
}

// NewBookingService creates a new booking service
func NewBookingService(
	apptRepo repositories.AppointmentRepository,
	studentRepo repositories.StudentRepository,
	mentorRepo repositories.MentorRepository,
) *BookingService {
	return &BookingService{
		apptRepo:    apptRepo,
		studentRepo: studentRepo,
		mentorRepo:  mentorRepo,
	}
}

// CreateAppointmentInput represents appointment creation input
type CreateAppointmentInput struct {
	StudentID uint   `json:"student_id"`
	MentorID  uint   `json:"mentor_id"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
}

// Create validates and books an appointment. Both references must resolve
// to live records, the slot must come from the fixed set, and the mentor's
// slot must be free. A student may only book for themselves.
func (s *BookingService) Create(ctx context.Context, requestorRole string, requestorID uint, input *CreateAppointmentInput) (*models.AppointmentResponse, error) {
	if !models.ValidTimeSlot(input.TimeSlot) {
		return nil, ErrInvalidSlot
	}

	date, err := time.Parse(models.DateLayout, input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if requestorRole == models.RoleStudent && requestorID != input.StudentID {
		return nil, ErrNotParticipant
	}

	student, err := s.studentRepo.GetByID(ctx, input.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}

	mentor, err := s.mentorRepo.GetByID(ctx, input.MentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}

	taken, err := s.apptRepo.SlotTaken(ctx, mentor.ID, date, input.TimeSlot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	appt := &models.Appointment{
		StudentID: student.ID,
		MentorID:  mentor.ID,
		Date:      date,
		TimeSlot:  input.TimeSlot,
	}

	// The check above races with concurrent bookings; the unique index on
	// (mentor_id, date, time_slot) settles the winner.
	if err := s.apptRepo.Create(ctx, appt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	appt.Student = student
	appt.Mentor = mentor

	log.Printf("Appointment booked: mentor %d, %s %s", mentor.ID, input.Date, input.TimeSlot)
	return appt.ToResponse(), nil
}

// List returns the requester's own appointments. The predicate comes from
// the verified token claims; there is no unscoped listing.
func (s *BookingService) List(ctx context.Context, requestorRole string, requestorID uint) ([]*models.AppointmentResponse, error) {
	var appts []*models.Appointment
	var err error

	switch requestorRole {
	case models.RoleStudent:
		appts, err = s.apptRepo.ListByStudent(ctx, requestorID)
	case models.RoleMentor:
		appts, err = s.apptRepo.ListByMentor(ctx, requestorID)
	default:
		return nil, fmt.Errorf("unknown role %q", requestorRole)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*models.AppointmentResponse, len(appts))
	for i, appt := range appts {
		responses[i] = appt.ToResponse()
	}
	return responses, nil
}

// Cancel deletes an appointment. The lookup runs first so a repeated cancel
// reports not-found rather than leaking whether the requester could see it.
func (s *BookingService) Cancel(ctx context.Context, requestorRole string, requestorID uint, apptID uint) error {
	appt, err := s.apptRepo.GetByID(ctx, apptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApptNotFound
		}
		return err
	}

	participant := (requestorRole == models.RoleStudent && appt.StudentID == requestorID) ||
		(requestorRole == models.RoleMentor && appt.MentorID == requestorID)
	if !participant {
		return ErrNotParticipant
	}

	if err := s.apptRepo.Delete(ctx, apptID); err != nil {
		return err
	}

	log.Printf("Appointment cancelled: %d", apptID)
	return nil
}
