package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/lease-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/lease-processor/internal/domain/port/core"
	leaseUseCase "github.com/amirhossein-jamali/lease-processor/internal/domain/usecase/lease"
	"github.com/amirhossein-jamali/lease-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LeaseHandler handles lease lifecycle HTTP requests
type LeaseHandler struct {
	leaseService *leaseUseCase.Service
	logger       coreport.Logger
}

// NewLeaseHandler creates a new lease handler instance
func NewLeaseHandler(leaseService *leaseUseCase.Service, logger coreport.Logger) *LeaseHandler {
	return &LeaseHandler{
		leaseService: leaseService,
		logger:       logger,
	}
}

// SubmitApplication handles POST /leases
func (h *LeaseHandler) SubmitApplication(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	transaction, err := h.leaseService.SubmitApplication(c.Request.Context(), req.TenantID, req.PropertyID)
	if err != nil {
		h.writeError(c, err, "Error submitting application")
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// ListByTenant handles GET /leases?tenantId=
func (h *LeaseHandler) ListByTenant(c *gin.Context) {
	tenantID, err := strconv.ParseUint(c.Query("tenantId"), 10, 64)
	if err != nil || tenantID == 0 {
		h.badRequest(c, "Invalid or missing tenantId query parameter")
		return
	}

	transactions, err := h.leaseService.ListTenantLeases(c.Request.Context(), tenantID)
	if err != nil {
		h.writeError(c, err, "Error listing tenant leases")
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, dto.NewTransactionResponse(transaction))
	}
	c.JSON(http.StatusOK, responses)
}

// GetTransaction handles GET /leases/:transactionId
func (h *LeaseHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.leaseService.GetTransaction(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		h.writeError(c, err, "Error fetching lease transaction")
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// Decide handles POST /leases/:transactionId/decision
func (h *LeaseHandler) Decide(c *gin.Context) {
	var req dto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	transaction, err := h.leaseService.Decide(
		c.Request.Context(),
		c.Param("transactionId"),
		leaseUseCase.Decision(req.Decision),
		req.Terms.ToEntity(),
	)
	if err != nil {
		h.writeError(c, err, "Error deciding application")
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// Sign handles POST /leases/:transactionId/signature
func (h *LeaseHandler) Sign(c *gin.Context) {
	var req dto.SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	transaction, err := h.leaseService.Sign(c.Request.Context(), c.Param("transactionId"), req.SignerFullName)
	if err != nil {
		h.writeError(c, err, "Error recording signature")
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// RecordPayment handles POST /leases/:transactionId/payments
func (h *LeaseHandler) RecordPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	outcome, err := h.leaseService.RecordPayment(c.Request.Context(), c.Param("transactionId"), leaseUseCase.PaymentRequest{
		Amount:         req.Amount,
		ConfirmationID: req.ConfirmationID,
		OccurredAt:     req.OccurredAt,
	})
	if err != nil {
		h.writeError(c, err, "Error recording payment")
		return
	}

	c.JSON(http.StatusOK, dto.PaymentResponse{
		Transaction:    dto.NewTransactionResponse(outcome.Transaction),
		SettledEntry:   dto.NewScheduleEntryResponse(outcome.SettledEntry),
		Classification: string(outcome.Classification),
	})
}

// RequestTermination handles POST /leases/:transactionId/termination
func (h *LeaseHandler) RequestTermination(c *gin.Context) {
	var req dto.TerminationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	transaction, err := h.leaseService.RequestTermination(c.Request.Context(), c.Param("transactionId"), req.RequesterID)
	if err != nil {
		h.writeError(c, err, "Error requesting termination")
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// CompleteLease handles POST /leases/:transactionId/completion
func (h *LeaseHandler) CompleteLease(c *gin.Context) {
	transaction, err := h.leaseService.CompleteLease(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		h.writeError(c, err, "Error completing lease")
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

func (h *LeaseHandler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}

func (h *LeaseHandler) writeError(c *gin.Context, err error, logMessage string) {
	h.logger.Error(logMessage, map[string]any{
		"transaction_id": c.Param("transactionId"),
		"error":          err.Error(),
	})

	c.JSON(StatusFromError(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}

// StatusFromError maps domain errors to HTTP status codes
func StatusFromError(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrTransactionLocked):
		return http.StatusLocked
	case domainerr.IsConflictError(err):
		return http.StatusConflict
	case domainerr.IsSignatureMismatchError(err):
		return http.StatusUnprocessableEntity
	case domainerr.IsValidationError(err), errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrLedgerFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
