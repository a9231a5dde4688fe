package handlers

import (
	"errors"

	"mentorhub/internal/core/services"
	"mentorhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles self-fetch and profile update endpoints
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateStudentRequest represents a sparse student update request body
type UpdateStudentRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	TargetSchool *string `json:"targetSchool"`
	Track        *string `json:"track"`
}

// UpdateMentorRequest represents a sparse mentor update request body
type UpdateMentorRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	Specialization *string `json:"specialization"`
	Availability   *string `json:"availability"`
}

// MeStudent returns the authenticated student
// @Summary Get current student
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /student/me [get]
func (h *ProfileHandler) MeStudent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	student, err := h.profileService.GetStudent(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to fetch student data")
	}

	return response.Success(c, "Student retrieved successfully", student)
}

// MeMentor returns the authenticated mentor
// @Summary Get current mentor
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /mentor/me [get]
func (h *ProfileHandler) MeMentor(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	mentor, err := h.profileService.GetMentor(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "Mentor not found")
		}
		return response.InternalServerError(c, "Failed to fetch mentor data")
	}

	return response.Success(c, "Mentor retrieved successfully", mentor)
}

// UpdateStudent handles a sparse student profile update
// @Summary Update current student
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateStudentRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /student/update [put]
func (h *ProfileHandler) UpdateStudent(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateStudentInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     req.Password,
		TargetSchool: req.TargetSchool,
		Track:        req.Track,
	}

	student, err := h.profileService.UpdateStudent(c.Context(), userID, input)
	if err != nil {
		return mapUpdateError(c, err, "Failed to update student information")
	}

	return response.Success(c, "Student updated successfully", student)
}

// UpdateMentor handles a sparse mentor profile update
// @Summary Update current mentor
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateMentorRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /mentor/update [put]
func (h *ProfileHandler) UpdateMentor(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req UpdateMentorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.UpdateMentorInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		Specialization: req.Specialization,
		Availability:   req.Availability,
	}

	mentor, err := h.profileService.UpdateMentor(c.Context(), userID, input)
	if err != nil {
		return mapUpdateError(c, err, "Failed to update mentor information")
	}

	return response.Success(c, "Mentor updated successfully", mentor)
}

// mapUpdateError maps profile update failures to HTTP responses
func mapUpdateError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNoFields):
		return response.BadRequest(c, "No data provided for update")
	case errors.Is(err, services.ErrSamePassword):
		return response.BadRequest(c, "New password must be different from the old password")
	case errors.Is(err, services.ErrEmailTaken):
		return response.Conflict(c, "Email already in use")
	case errors.Is(err, services.ErrUserNotFound):
		return response.NotFound(c, "User not found")
	default:
		return response.InternalServerError(c, fallback)
	}
}
