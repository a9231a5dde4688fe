package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles carried in session tokens and locals
const (
	RoleStudent = "STUDENT"
	RoleMentor  = "MENTOR"
)

// DateLayout is the wire format for appointment dates
const DateLayout = "2006-01-02"

// TimeSlots is the fixed set of bookable appointment times
var TimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
}

// ValidTimeSlot reports whether slot is one of the bookable times
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ============================================================
// Users
// ============================================================

// Student represents the students table
type Student struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	FirstName    string         `gorm:"size:100;not null" json:"first_name"`
	LastName     string         `gorm:"size:100;not null" json:"last_name"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password     string         `gorm:"size:255;not null" json:"-"`
	TargetSchool string         `gorm:"size:200" json:"target_school"`
	Track        string         `gorm:"size:100" json:"track"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// StudentResponse DTO
type StudentResponse struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	TargetSchool string    `json:"target_school"`
	Track        string    `json:"track"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Student) ToResponse() *StudentResponse {
	return &StudentResponse{
		ID:           s.ID,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Email:        s.Email,
		TargetSchool: s.TargetSchool,
		Track:        s.Track,
		CreatedAt:    s.CreatedAt,
	}
}

// Mentor represents the mentors table
type Mentor struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	FirstName      string         `gorm:"size:100;not null" json:"first_name"`
	LastName       string         `gorm:"size:100;not null" json:"last_name"`
	Email          string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password       string         `gorm:"size:255;not null" json:"-"`
	Specialization string         `gorm:"size:200" json:"specialization"`
	Availability   string         `gorm:"size:100" json:"availability"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Mentor) TableName() string {
	return "mentors"
}

// MentorResponse DTO
type MentorResponse struct {
	ID             uint      `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Specialization string    `json:"specialization"`
	Availability   string    `json:"availability"`
	CreatedAt      time.Time `json:"created_at"`
}

func (m *Mentor) ToResponse() *MentorResponse {
	return &MentorResponse{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Specialization: m.Specialization,
		Availability:   m.Availability,
		CreatedAt:      m.CreatedAt,
	}
}

// ============================================================
// Appointments
// ============================================================

// Appointment represents the appointments table.
// The composite unique index keeps a mentor's slot bookable at most once;
// a losing concurrent insert fails with a duplicate-key error.
type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"not null;index" json:"student_id"`
	MentorID  uint      `gorm:"not null;uniqueIndex:idx_mentor_slot,priority:1" json:"mentor_id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_mentor_slot,priority:2" json:"date"`
	TimeSlot  string    `gorm:"size:10;not null;uniqueIndex:idx_mentor_slot,priority:3" json:"time_slot"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Mentor  *Mentor  `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentResponse DTO with denormalized display fields
type AppointmentResponse struct {
	ID                   uint      `json:"id"`
	StudentID            uint      `json:"student_id"`
	MentorID             uint      `json:"mentor_id"`
	Date                 string    `json:"date"`
	TimeSlot             string    `json:"time_slot"`
	StudentName          string    `json:"student_name,omitempty"`
	MentorName           string    `json:"mentor_name,omitempty"`
	MentorSpecialization string    `json:"mentor_specialization,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func (a *Appointment) ToResponse() *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:        a.ID,
		StudentID: a.StudentID,
		MentorID:  a.MentorID,
		Date:      a.Date.Format(DateLayout),
		TimeSlot:  a.TimeSlot,
		CreatedAt: a.CreatedAt,
	}

	if a.Student != nil {
		resp.StudentName = a.Student.FirstName + " " + a.Student.LastName
	}
	if a.Mentor != nil {
		resp.MentorName = a.Mentor.FirstName + " " + a.Mentor.LastName
		resp.MentorSpecialization = a.Mentor.Specialization
	}

	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Student{},
		&Mentor{},
		&Appointment{},
	)
}
