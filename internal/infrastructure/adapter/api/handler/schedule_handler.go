package handler

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
	leaseUseCase "github.com/amirhossein-jamali/lease-processor/internal/domain/usecase/lease"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ScheduleHandler handles schedule read requests
type ScheduleHandler struct {
	leaseService *leaseUseCase.Service
	logger       coreport.Logger
}

// NewScheduleHandler creates a new schedule handler instance
func NewScheduleHandler(leaseService *leaseUseCase.Service, logger coreport.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		leaseService: leaseService,
		logger:       logger,
	}
}

// GetSchedule handles GET /leases/:transactionId/schedule
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	transactionID := c.Param("transactionId")

	view, err := h.leaseService.GetSchedule(c.Request.Context(), transactionID)
	if err != nil {
		h.logger.Error("Error fetching schedule", map[string]any{
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
		c.JSON(StatusFromError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	entries := make([]dto.ScheduleEntryResponse, 0, len(view.Entries))
	for _, entry := range view.Entries {
		entries = append(entries, dto.NewScheduleEntryResponse(entry))
	}

	c.JSON(http.StatusOK, dto.ScheduleResponse{
		TransactionID: transactionID,
		Entries:       entries,
		SettledCount:  view.SettledCount,
		NextDueDate:   view.NextDueDate,
		EvaluatedAt:   view.EvaluatedAt,
	})
}
