package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mentorhub/internal/adapters/http/middleware"
	"mentorhub/internal/adapters/persistence/models"
	"mentorhub/internal/config"
	"mentorhub/internal/core/services"
	"mentorhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memStudentRepo is an in-memory StudentRepository for handler tests
type memStudentRepo struct {
	seq      uint
	students map[uint]*models.Student
}

func (r *memStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, s := range r.students {
		if s.Email == student.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.seq++
	student.ID = r.seq
	cp := *student
	r.students[student.ID] = &cp
	return nil
}

func (r *memStudentRepo) GetByID(_ context.Context, id uint) (*models.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memStudentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range r.students {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := r.students[student.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, s := range r.students {
		if s.ID != student.ID && s.Email == student.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *student
	r.students[student.ID] = &cp
	return nil
}

func (r *memStudentRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, s := range r.students {
		if s.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// memMentorRepo is an in-memory MentorRepository for handler tests
type memMentorRepo struct {
	seq     uint
	mentors map[uint]*models.Mentor
}

func (r *memMentorRepo) Create(_ context.Context, mentor *models.Mentor) error {
	for _, m := range r.mentors {
		if m.Email == mentor.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.seq++
	mentor.ID = r.seq
	cp := *mentor
	r.mentors[mentor.ID] = &cp
	return nil
}

func (r *memMentorRepo) GetByID(_ context.Context, id uint) (*models.Mentor, error) {
	m, ok := r.mentors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memMentorRepo) GetByEmail(_ context.Context, email string) (*models.Mentor, error) {
	for _, m := range r.mentors {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memMentorRepo) Update(_ context.Context, mentor *models.Mentor) error {
	if _, ok := r.mentors[mentor.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, m := range r.mentors {
		if m.ID != mentor.ID && m.Email == mentor.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *mentor
	r.mentors[mentor.ID] = &cp
	return nil
}

func (r *memMentorRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, m := range r.mentors {
		if m.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memMentorRepo) List(_ context.Context, offset, limit int) ([]*models.Mentor, int64, error) {
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

// memApptRepo is an in-memory AppointmentRepository enforcing the
// mentor-slot unique index
type memApptRepo struct {
	seq   uint
	appts map[uint]*models.Appointment
}

func (r *memApptRepo) Create(_ context.Context, appt *models.Appointment) error {
	for _, a := range r.appts {
		if a.MentorID == appt.MentorID && a.Date.Equal(appt.Date) && a.TimeSlot == appt.TimeSlot {
			return gorm.ErrDuplicatedKey
		}
	}
	r.seq++
	appt.ID = r.seq
	cp := *appt
	cp.Student = nil
	cp.Mentor = nil
	r.appts[appt.ID] = &cp
	return nil
}

func (r *memApptRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memApptRepo) ListByStudent(_ context.Context, studentID uint) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for id := uint(1); id <= r.seq; id++ {
		if a, ok := r.appts[id]; ok && a.StudentID == studentID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memApptRepo) ListByMentor(_ context.Context, mentorID uint) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for id := uint(1); id <= r.seq; id++ {
		if a, ok := r.appts[id]; ok && a.MentorID == mentorID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memApptRepo) SlotTaken(_ context.Context, mentorID uint, date time.Time, timeSlot string) (bool, error) {
	for _, a := range r.appts {
		if a.MentorID == mentorID && a.Date.Equal(date) && a.TimeSlot == timeSlot {
			return true, nil
		}
	}
	return false, nil
}

func (r *memApptRepo) Delete(_ context.Context, id uint) error {
	delete(r.appts, id)
	return nil
}

// newTestApp wires the full route surface against in-memory repositories.
// The auth rate limiter is left out so tests can hammer the auth routes.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:       "test-secret",
			SessionHours: 24,
		},
	}

	studentRepo := &memStudentRepo{students: make(map[uint]*models.Student)}
	mentorRepo := &memMentorRepo{mentors: make(map[uint]*models.Mentor)}
	apptRepo := &memApptRepo{appts: make(map[uint]*models.Appointment)}

	authService := services.NewAuthService(studentRepo, mentorRepo, cfg)
	profileService := services.NewProfileService(studentRepo, mentorRepo)
	bookingService := services.NewBookingService(apptRepo, studentRepo, mentorRepo)
	directoryService := services.NewDirectoryService(mentorRepo)

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	apptHandler := NewAppointmentHandler(bookingService)
	mentorHandler := NewMentorHandler(directoryService)

	app := fiber.New()

	student := app.Group("/student")
	student.Post("/register", authHandler.RegisterStudent)
	student.Post("/login", authHandler.LoginStudent)
	student.Get("/me", middleware.AuthMiddleware(cfg), middleware.StudentOnly(), profileHandler.MeStudent)
	student.Put("/update", middleware.AuthMiddleware(cfg), middleware.StudentOnly(), profileHandler.UpdateStudent)

	mentor := app.Group("/mentor")
	mentor.Post("/register", authHandler.RegisterMentor)
	mentor.Post("/login", authHandler.LoginMentor)
	mentor.Get("/me", middleware.AuthMiddleware(cfg), middleware.MentorOnly(), profileHandler.MeMentor)
	mentor.Put("/update", middleware.AuthMiddleware(cfg), middleware.MentorOnly(), profileHandler.UpdateMentor)

	app.Get("/mentors", mentorHandler.List)

	appt := app.Group("/appointment")
	appt.Use(middleware.AuthMiddleware(cfg))
	appt.Post("/", apptHandler.Create)
	appt.Get("/", apptHandler.List)
	appt.Delete("/:id", apptHandler.Cancel)

	return app
}

// doRequest issues a JSON request against the test app
func doRequest(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeEnvelope decodes the standard response envelope
func decodeEnvelope(t *testing.T, resp *http.Response) response.Response {
	t.Helper()

	defer resp.Body.Close()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

// registerAndLoginStudent creates a student and returns the session token
func registerAndLoginStudent(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/student/register", "", fiber.Map{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     email,
		"password":  "p1p1p1p1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, fiber.MethodPost, "/student/login", "", fiber.Map{
		"email":    email,
		"password": "p1p1p1p1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	return token
}

// registerAndLoginMentor creates a mentor and returns the session token
func registerAndLoginMentor(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/mentor/register", "", fiber.Map{
		"firstName":      "Jane",
		"lastName":       "Smith",
		"email":          email,
		"password":       "p1p1p1p1",
		"specialization": "Full Stack Development",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, fiber.MethodPost, "/mentor/login", "", fiber.Map{
		"email":    email,
		"password": "p1p1p1p1",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	return token
}
