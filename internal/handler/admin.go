package handler

import (
	"net/http"
	"strconv"

	"github.com/Felixdivoar/natuasili/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ListDeadJobs(c *ginext.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	jobs, err := h.reconciler.ListDeadJobs(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReconcileJobResponse, 0, len(jobs))
	for _, j := range jobs {
		resp = append(resp, dto.ToReconcileJobResponse(j))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RequeueJob(c *ginext.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid job id"})
		return
	}

	if err = h.reconciler.RequeueJob(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "requeued"})
}

// GetPayment returns the local payment record without asking the provider.
func (h *Handler) GetPayment(c *ginext.Context) {
	payment, err := h.reconciler.GetPayment(c.Request.Context(), c.Param("trackingId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
