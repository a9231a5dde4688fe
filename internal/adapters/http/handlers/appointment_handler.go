package handlers

import (
	"errors"
	"strconv"

	"mentorhub/internal/core/services"
	"mentorhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler handles appointment booking endpoints
type AppointmentHandler struct {
	bookingService *services.BookingService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(bookingService *services.BookingService) *AppointmentHandler {
	return &AppointmentHandler{bookingService: bookingService}
}

// CreateAppointmentRequest represents appointment creation request body
type CreateAppointmentRequest struct {
	StudentID uint   `json:"StudentID"`
	MentorID  uint   `json:"MentorID"`
	Date      string `json:"Date"`
	Time      string `json:"Time"`
}

// Create handles appointment booking
// @Summary Book an appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointment [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	role, userID, ok := requesterFromLocals(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.CreateAppointmentInput{
		StudentID: req.StudentID,
		MentorID:  req.MentorID,
		Date:      req.Date,
		TimeSlot:  req.Time,
	}

	appt, err := h.bookingService.Create(c.Context(), role, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSlot):
			return response.BadRequest(c, "Time is not a bookable slot")
		case errors.Is(err, services.ErrInvalidDate):
			return response.BadRequest(c, "Date must be formatted as YYYY-MM-DD")
		case errors.Is(err, services.ErrInvalidReference):
			return response.BadRequest(c, "Student or mentor does not exist")
		case errors.Is(err, services.ErrNotParticipant):
			return response.Forbidden(c, "Students may only book appointments for themselves")
		case errors.Is(err, services.ErrSlotTaken):
			return response.Conflict(c, "Mentor already has a booking for this slot")
		default:
			return response.InternalServerError(c, "Failed to create appointment")
		}
	}

	return response.Created(c, "Appointment booked successfully", appt)
}

// List returns the requester's appointments
// @Summary List own appointments
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /appointment [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	role, userID, ok := requesterFromLocals(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	appts, err := h.bookingService.List(c.Context(), role, userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch appointments")
	}

	return response.Success(c, "Appointments retrieved successfully", appts)
}

// Cancel deletes an appointment
// @Summary Cancel an appointment
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointment/{id} [delete]
func (h *AppointmentHandler) Cancel(c *fiber.Ctx) error {
	role, userID, ok := requesterFromLocals(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	apptID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid appointment ID")
	}

	if err := h.bookingService.Cancel(c.Context(), role, userID, uint(apptID)); err != nil {
		switch {
		case errors.Is(err, services.ErrApptNotFound):
			return response.NotFound(c, "Appointment not found")
		case errors.Is(err, services.ErrNotParticipant):
			return response.Forbidden(c, "You are not part of this appointment")
		default:
			return response.InternalServerError(c, "Failed to cancel appointment")
		}
	}

	return response.Success(c, "Appointment deleted", nil)
}

// requesterFromLocals pulls the verified claims stored by the auth middleware
func requesterFromLocals(c *fiber.Ctx) (role string, userID uint, ok bool) {
	role, roleOK := c.Locals("role").(string)
	userID, idOK := c.Locals("userID").(uint)
	return role, userID, roleOK && idOK
}
