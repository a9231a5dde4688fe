package handlers

import (
	"context"
	"errors"
	"strings"

	"mentorhub/internal/core/services"
	"mentorhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterStudentRequest represents student registration request body
type RegisterStudentRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	TargetSchool string `json:"targetSchool"`
	Track        string `json:"track"`
}

// RegisterMentorRequest represents mentor registration request body
type RegisterMentorRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Specialization string `json:"specialization"`
	Availability   string `json:"availability"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterStudent handles student registration
// @Summary Register new student
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterStudentRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /student/register [post]
func (h *AuthHandler) RegisterStudent(c *fiber.Ctx) error {
	var req RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if msg, ok := validateRegistration(req.FirstName, req.LastName, req.Email, req.Password); !ok {
		return response.BadRequest(c, msg)
	}

	input := &services.RegisterStudentInput{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		Password:     req.Password,
		TargetSchool: strings.TrimSpace(req.TargetSchool),
		Track:        strings.TrimSpace(req.Track),
	}

	student, err := h.authService.RegisterStudent(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return response.Conflict(c, "Email already in use")
		}
		return response.InternalServerError(c, "Registration failed")
	}

	return response.Created(c, "Student registered successfully", student)
}

// RegisterMentor handles mentor registration
// @Summary Register new mentor
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterMentorRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /mentor/register [post]
func (h *AuthHandler) RegisterMentor(c *fiber.Ctx) error {
	var req RegisterMentorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if msg, ok := validateRegistration(req.FirstName, req.LastName, req.Email, req.Password); !ok {
		return response.BadRequest(c, msg)
	}

	input := &services.RegisterMentorInput{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.TrimSpace(req.Email),
		Password:       req.Password,
		Specialization: strings.TrimSpace(req.Specialization),
		Availability:   strings.TrimSpace(req.Availability),
	}

	mentor, err := h.authService.RegisterMentor(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return response.Conflict(c, "Email already in use")
		}
		return response.InternalServerError(c, "Registration failed")
	}

	return response.Created(c, "Mentor registered successfully", mentor)
}

// LoginStudent handles student login
// @Summary Login student
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /student/login [post]
func (h *AuthHandler) LoginStudent(c *fiber.Ctx) error {
	return h.login(c, h.authService.LoginStudent)
}

// LoginMentor handles mentor login
// @Summary Login mentor
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /mentor/login [post]
func (h *AuthHandler) LoginMentor(c *fiber.Ctx) error {
	return h.login(c, h.authService.LoginMentor)
}

func (h *AuthHandler) login(c *fiber.Ctx, doLogin func(ctx context.Context, input *services.LoginInput) (*services.AuthResponse, error)) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	result, err := doLogin(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid credentials")
		}
		return response.InternalServerError(c, "Login failed")
	}

	return response.Success(c, "Login successful", result)
}

// validateRegistration checks the fields shared by both registration variants
func validateRegistration(firstName, lastName, email, pass string) (string, bool) {
	if strings.TrimSpace(firstName) == "" {
		return "First name is required", false
	}
	if strings.TrimSpace(lastName) == "" {
		return "Last name is required", false
	}
	if strings.TrimSpace(email) == "" {
		return "Email is required", false
	}
	if pass == "" {
		return "Password is required", false
	}
	return "", true
}
