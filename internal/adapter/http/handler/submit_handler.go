package handler

import (
	"traveling-message/internal/adapter/http/dto"
	"traveling-message/internal/core/ports"
	"traveling-message/pkg/apperror"
	"traveling-message/pkg/response"

	"github.com/gin-gonic/gin"
)

// SubmitHandler handles POST /api/submit.
type SubmitHandler struct {
	svc ports.SubmissionService
}

// NewSubmitHandler creates a SubmitHandler.
func NewSubmitHandler(svc ports.SubmissionService) *SubmitHandler {
	return &SubmitHandler{svc: svc}
}

// Submit accepts a proof-of-travel submission.
func (h *SubmitHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMalformedBody())
		return
	}

	_, err := h.svc.Submit(c.Request.Context(), ports.SubmitRequest{
		TxID:    req.TxID,
		Alias:   req.Alias,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c)
}
