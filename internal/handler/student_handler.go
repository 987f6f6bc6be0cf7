package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swimdesk/swimdesk-api/internal/dto"
	"github.com/swimdesk/swimdesk-api/internal/service"
	appErrors "github.com/swimdesk/swimdesk-api/pkg/errors"
	"github.com/swimdesk/swimdesk-api/pkg/response"
)

// StudentHandler manages the student submission endpoints.
type StudentHandler struct {
	service *service.ScheduleService
}

// NewStudentHandler constructs handler.
func NewStudentHandler(svc *service.ScheduleService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// Submit registers a new student request.
func (h *StudentHandler) Submit(c *gin.Context) {
	var req dto.SubmitStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List returns every submitted request.
func (h *StudentHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context()))
}

// Count returns the registry size.
func (h *StudentHandler) Count(c *gin.Context) {
	count := h.service.Count(c.Request.Context())
	response.JSON(c, http.StatusOK, dto.StudentCountResponse{Count: count})
}
