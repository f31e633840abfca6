package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Felixdivoar/natuasili/internal/domain"
	"github.com/Felixdivoar/natuasili/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	confirmationPath = "/booking/confirmation"
	maxIPNBody       = 64 << 10
)

func (h *Handler) CreateOrder(c *ginext.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.OrderResponse{OK: false, Error: err.Error()})
		return
	}

	res, err := h.paymentService.CreateOrder(c.Request.Context(), domain.CreateOrderInput{
		BookingID:   req.BookingID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Customer:    toCustomer(req.Customer),
	})
	if err != nil {
		c.Set("error", err.Error())
		status, msg := errorStatus(err)
		c.JSON(status, dto.OrderResponse{OK: false, Error: msg})
		return
	}

	c.JSON(http.StatusCreated, dto.OrderResponse{
		OK:          true,
		RedirectURL: res.RedirectURL,
		TrackingID:  res.TrackingID,
	})
}

// PaymentStatus is the pull path: it asks the provider, reconciles and returns
// the provider payload next to the local view.
func (h *Handler) PaymentStatus(c *ginext.Context) {
	trackingID := strings.TrimSpace(c.Param("trackingId"))
	if trackingID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid tracking id"})
		return
	}

	check, err := h.reconciler.CheckStatus(c.Request.Context(), trackingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentStatusResponse(trackingID, check))
}

// IPN receives the provider push. It always answers 200 "OK": processing
// failures are queued for retry by the reconciler and only logged here.
func (h *Handler) IPN(c *ginext.Context) {
	raw := rawNotification(c)

	var q dto.IPNQuery
	if err := c.ShouldBind(&q); err != nil {
		h.logger.LogAttrs(c.Request.Context(), logger.WarnLevel, "malformed ipn",
			logger.String("query", c.Request.URL.RawQuery),
			logger.String("error", err.Error()),
		)
	}

	err := h.reconciler.HandleIPN(c.Request.Context(), domain.IPNNotification{
		OrderTrackingID:   strings.TrimSpace(q.OrderTrackingID),
		MerchantReference: q.OrderMerchantReference,
		NotificationType:  q.OrderNotificationType,
		Raw:               raw,
	})
	if err != nil {
		c.Set("error", err.Error())
		h.logger.LogAttrs(c.Request.Context(), logger.WarnLevel, "ipn processing failed",
			logger.String("order_tracking_id", q.OrderTrackingID),
			logger.String("error", err.Error()),
		)
	}

	c.String(http.StatusOK, "OK")
}

// PaymentCallback is where the browser lands after the hosted payment page. The
// query is not trusted: the status is verified through the pull path before the
// visitor is sent on to the confirmation page.
func (h *Handler) PaymentCallback(c *ginext.Context) {
	var q dto.CallbackQuery
	_ = c.ShouldBindQuery(&q)

	params := url.Values{}
	trackingID := strings.TrimSpace(q.OrderTrackingID)
	if trackingID == "" {
		params.Set("status", "error")
		c.Redirect(http.StatusFound, h.confirmationURL(params))
		return
	}
	params.Set("tracking", trackingID)

	check, err := h.reconciler.CheckStatus(c.Request.Context(), trackingID)
	if err != nil {
		c.Set("error", err.Error())
		h.logger.LogAttrs(c.Request.Context(), logger.WarnLevel, "payment callback verification failed",
			logger.String("order_tracking_id", trackingID),
			logger.String("error", err.Error()),
		)
		params.Set("status", "unknown")
		c.Redirect(http.StatusFound, h.confirmationURL(params))
		return
	}

	status := string(domain.PaymentStatusPending)
	if check.Payment != nil {
		params.Set("booking", check.Payment.BookingID)
		status = string(check.Payment.Status)
	}
	params.Set("status", status)

	c.Redirect(http.StatusFound, h.confirmationURL(params))
}

func (h *Handler) confirmationURL(params url.Values) string {
	return h.frontendURL + confirmationPath + "?" + params.Encode()
}

type rawIPN struct {
	Method string          `json:"method"`
	Query  url.Values      `json:"query,omitempty"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// rawNotification captures the notification exactly as received, every query
// parameter and the body, for the payment audit trail. The body is put back so
// binding can still read it.
func rawNotification(c *ginext.Context) json.RawMessage {
	entry := rawIPN{Method: c.Request.Method, Query: c.Request.URL.Query()}

	if c.Request.Body != nil {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxIPNBody))
		if err == nil && len(body) > 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			if json.Valid(body) {
				entry.Body = body
			} else {
				entry.Body, _ = json.Marshal(string(body))
			}
		}
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return raw
}
