package handler

import (
	"net/http"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

// Experiences

func (h *Handler) CreateExperience(c *ginext.Context) {
	var req dto.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	options := make([]domain.PriceOption, 0, len(req.PriceOptions))
	for _, o := range req.PriceOptions {
		options = append(options, domain.PriceOption{Code: o.Code, Label: o.Label, UnitAmount: o.UnitAmount})
	}

	exp, err := h.experienceService.Create(c.Request.Context(), domain.CreateExperienceInput{
		Slug:         req.Slug,
		Title:        req.Title,
		Description:  req.Description,
		PartnerID:    req.PartnerID,
		Currency:     req.Currency,
		Capacity:     req.Capacity,
		PriceOptions: options,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExperienceResponse(exp))
}

func (h *Handler) GetExperience(c *ginext.Context) {
	exp, err := h.experienceService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceResponse(exp))
}

func (h *Handler) ListExperiences(c *ginext.Context) {
	experiences, err := h.experienceService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		resp = append(resp, dto.ToExperienceResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Partners

func (h *Handler) CreatePartner(c *ginext.Context) {
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	partner, err := h.partnerService.Create(c.Request.Context(), domain.CreatePartnerInput{
		Name:           req.Name,
		Email:          req.Email,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPartnerResponse(partner))
}

func (h *Handler) ListPartners(c *ginext.Context) {
	partners, err := h.partnerService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PartnerResponse, 0, len(partners))
	for _, p := range partners {
		resp = append(resp, dto.ToPartnerResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListPartnerBookings(c *ginext.Context) {
	partnerID := c.Param("id")
	if _, err := uuid.Parse(partnerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid partner id"})
		return
	}

	bookings, err := h.bookingService.ListByPartner(c.Request.Context(), partnerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}
