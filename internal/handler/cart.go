package handler

import (
	"net/http"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateCart(c *ginext.Context) {
	session, ok := sessionID(c)
	if !ok {
		return
	}

	var req dto.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cart, err := h.cartService.Create(c.Request.Context(), domain.CreateCartInput{
		SessionID:      session,
		ExperienceSlug: req.ExperienceSlug,
		Date:           req.Date,
		PartySize:      req.PartySize,
		PriceOption:    req.PriceOption,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCartResponse(cart, h.clock.Now()))
}

func (h *Handler) GetCart(c *ginext.Context) {
	id, session, ok := h.cartParams(c)
	if !ok {
		return
	}

	cart, err := h.cartService.Get(c.Request.Context(), id, session)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart, h.clock.Now()))
}

// TrackActivity slides the inactivity window. The client reports at most one
// event per throttle window; extra events are absorbed by the service.
func (h *Handler) TrackActivity(c *ginext.Context) {
	id, session, ok := h.cartParams(c)
	if !ok {
		return
	}

	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	cart, err := h.cartService.Touch(c.Request.Context(), id, session, domain.ActivityEvent(req.Event))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart, h.clock.Now()))
}

func (h *Handler) RestartHold(c *ginext.Context) {
	id, session, ok := h.cartParams(c)
	if !ok {
		return
	}

	cart, err := h.cartService.RestartHold(c.Request.Context(), id, session)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart, h.clock.Now()))
}

func (h *Handler) Checkout(c *ginext.Context) {
	id, session, ok := h.cartParams(c)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.cartService.Checkout(c.Request.Context(), id, session, toCustomer(req.Customer))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) cartParams(c *ginext.Context) (string, string, bool) {
	session, ok := sessionID(c)
	if !ok {
		return "", "", false
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid cart id"})
		return "", "", false
	}
	return id, session, true
}
