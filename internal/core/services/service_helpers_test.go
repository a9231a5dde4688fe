package services

import (
	"context"
	"time"

	"mentorhub/internal/adapters/persistence/models"
	"mentorhub/internal/config"

	"gorm.io/gorm"
)

func newTestConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:       "test-secret",
			SessionHours: 24,
		},
	}
}

// fakeStudentRepo is an in-memory StudentRepository
type fakeStudentRepo struct {
	seq      uint
	students map[uint]*models.Student
	updates  int
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[uint]*models.Student)}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, s := range r.students {
		if s.Email == student.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.seq++
	student.ID = r.seq
	student.CreatedAt = time.Now()
	cp := *student
	r.students[student.ID] = &cp
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id uint) (*models.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range r.students {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := r.students[student.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, s := range r.students {
		if s.ID != student.ID && s.Email == student.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.updates++
	cp := *student
	r.students[student.ID] = &cp
	return nil
}

func (r *fakeStudentRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, s := range r.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakeMentorRepo is an in-memory MentorRepository
type fakeMentorRepo struct {
	seq     uint
	mentors map[uint]*models.Mentor
	updates int
}

func newFakeMentorRepo() *fakeMentorRepo {
	return &fakeMentorRepo{mentors: make(map[uint]*models.Mentor)}
}

func (r *fakeMentorRepo) Create(_ context.Context, mentor *models.Mentor) error {
	for _, m := range r.mentors {
		if m.Email == mentor.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.seq++
	mentor.ID = r.seq
	mentor.CreatedAt = time.Now()
	cp := *mentor
	r.mentors[mentor.ID] = &cp
	return nil
}

func (r *fakeMentorRepo) GetByID(_ context.Context, id uint) (*models.Mentor, error) {
	m, ok := r.mentors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMentorRepo) GetByEmail(_ context.Context, email string) (*models.Mentor, error) {
	for _, m := range r.mentors {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMentorRepo) Update(_ context.Context, mentor *models.Mentor) error {
	if _, ok := r.mentors[mentor.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, m := range r.mentors {
		if m.ID != mentor.ID && m.Email == mentor.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.updates++
	cp := *mentor
	r.mentors[mentor.ID] = &cp
	return nil
}

func (r *fakeMentorRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, m := range r.mentors {
		if m.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMentorRepo) List(_ context.Context, offset, limit int) ([]*models.Mentor, int64, error) {
	var all []*models.Mentor
	for id := uint(1); id <= r.seq; id++ {
		if m, ok := r.mentors[id]; ok {
			cp := *m
			all = append(all, &cp)
		}
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// fakeApptRepo is an in-memory AppointmentRepository enforcing the
// mentor-slot unique index
type fakeApptRepo struct {
	seq   uint
	appts map[uint]*models.Appointment
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: make(map[uint]*models.Appointment)}
}

func (r *fakeApptRepo) Create(_ context.Context, appt *models.Appointment) error {
	for _, a := range r.appts {
		if a.MentorID == appt.MentorID && a.Date.Equal(appt.Date) && a.TimeSlot == appt.TimeSlot {
			return gorm.ErrDuplicatedKey
		}
	}
	r.seq++
	appt.ID = r.seq
	appt.CreatedAt = time.Now()
	cp := *appt
	cp.Student = nil
	cp.Mentor = nil
	r.appts[appt.ID] = &cp
	return nil
}

func (r *fakeApptRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApptRepo) ListByStudent(_ context.Context, studentID uint) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for id := uint(1); id <= r.seq; id++ {
		if a, ok := r.appts[id]; ok && a.StudentID == studentID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) ListByMentor(_ context.Context, mentorID uint) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for id := uint(1); id <= r.seq; id++ {
		if a, ok := r.appts[id]; ok && a.MentorID == mentorID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeApptRepo) SlotTaken(_ context.Context, mentorID uint, date time.Time, timeSlot string) (bool, error) {
	for _, a := range r.appts {
		if a.MentorID == mentorID && a.Date.Equal(date) && a.TimeSlot == timeSlot {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApptRepo) Delete(_ context.Context, id uint) error {
	delete(r.appts, id)
	return nil
}
