package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swimdesk/swimdesk-api/internal/service"
	"github.com/swimdesk/swimdesk-api/pkg/response"
)

// ScheduleHandler manages scheduling run endpoints.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Run executes a full scheduling run over the submitted students.
func (h *ScheduleHandler) Run(c *gin.Context) {
	result, err := h.service.Schedule(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Latest returns the retained result of the most recent run.
func (h *ScheduleHandler) Latest(c *gin.Context) {
	result := h.service.LastResult(c.Request.Context())
	if result == nil {
		response.JSON(c, http.StatusOK, nil, map[string]interface{}{"message": "no scheduling run yet"})
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Reset discards run-scoped state while keeping the student registry.
func (h *ScheduleHandler) Reset(c *gin.Context) {
	h.service.Reset(c.Request.Context())
	response.JSON(c, http.StatusOK, gin.H{"message": "state has been reset"})
}
