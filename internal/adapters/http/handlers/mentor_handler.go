package handlers

import (
	"mentorhub/internal/core/services"
	"mentorhub/internal/pkg/pagination"
	"mentorhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MentorHandler handles the public mentor directory
type MentorHandler struct {
	directoryService *services.DirectoryService
}

// NewMentorHandler creates a new mentor handler
func NewMentorHandler(directoryService *services.DirectoryService) *MentorHandler {
	return &MentorHandler{directoryService: directoryService}
}

// List returns the paginated mentor directory
// @Summary List mentors
// @Tags Mentors
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /mentors [get]
func (h *MentorHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.directoryService.ListMentors(c.Context(), params)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch mentors")
	}

	return response.Success(c, "Mentors retrieved successfully", result)
}
