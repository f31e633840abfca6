package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

// stubHandler answers every route with its own name so the table below can
// check the wiring.
type stubHandler struct{}

func reply(name string) func(c *ginext.Context) {
	return func(c *ginext.Context) { c.String(http.StatusOK, name) }
}

func (stubHandler) ListExperiences(c *ginext.Context)     { reply("ListExperiences")(c) }
func (stubHandler) GetExperience(c *ginext.Context)       { reply("GetExperience")(c) }
func (stubHandler) CreateExperience(c *ginext.Context)    { reply("CreateExperience")(c) }
func (stubHandler) CreatePartner(c *ginext.Context)       { reply("CreatePartner")(c) }
func (stubHandler) ListPartners(c *ginext.Context)        { reply("ListPartners")(c) }
func (stubHandler) ListPartnerBookings(c *ginext.Context) { reply("ListPartnerBookings")(c) }
func (stubHandler) CreateCart(c *ginext.Context)          { reply("CreateCart")(c) }
func (stubHandler) GetCart(c *ginext.Context)             { reply("GetCart")(c) }
func (stubHandler) TrackActivity(c *ginext.Context)       { reply("TrackActivity")(c) }
func (stubHandler) RestartHold(c *ginext.Context)         { reply("RestartHold")(c) }
func (stubHandler) Checkout(c *ginext.Context)            { reply("Checkout")(c) }
func (stubHandler) GetBooking(c *ginext.Context)          { reply("GetBooking")(c) }
func (stubHandler) CreateOrder(c *ginext.Context)         { reply("CreateOrder")(c) }
func (stubHandler) PaymentStatus(c *ginext.Context)       { reply("PaymentStatus")(c) }
func (stubHandler) IPN(c *ginext.Context)                 { reply("IPN")(c) }
func (stubHandler) PaymentCallback(c *ginext.Context)     { reply("PaymentCallback")(c) }
func (stubHandler) GetPayment(c *ginext.Context)          { reply("GetPayment")(c) }
func (stubHandler) ListDeadJobs(c *ginext.Context)        { reply("ListDeadJobs")(c) }
func (stubHandler) RequeueJob(c *ginext.Context)          { reply("RequeueJob")(c) }

func denyAll(c *ginext.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func TestInitRouter_Routes(t *testing.T) {
	r := InitRouter("test", stubHandler{}, denyAll)

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/api/experiences", "ListExperiences"},
		{http.MethodGet, "/api/experiences/mara-walk", "GetExperience"},
		{http.MethodPost, "/api/carts", "CreateCart"},
		{http.MethodGet, "/api/carts/c1", "GetCart"},
		{http.MethodPost, "/api/carts/c1/activity", "TrackActivity"},
		{http.MethodPost, "/api/carts/c1/hold", "RestartHold"},
		{http.MethodPost, "/api/carts/c1/checkout", "Checkout"},
		{http.MethodGet, "/api/bookings/b1", "GetBooking"},
		{http.MethodPost, "/api/payments/orders", "CreateOrder"},
		{http.MethodGet, "/api/payments/status/abc-123", "PaymentStatus"},
		{http.MethodGet, "/api/payments/ipn?OrderTrackingId=abc-123", "IPN"},
		{http.MethodPost, "/api/payments/ipn", "IPN"},
		{http.MethodGet, "/api/payments/callback?OrderTrackingId=abc-123", "PaymentCallback"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestInitRouter_AdminGuarded(t *testing.T) {
	r := InitRouter("test", stubHandler{}, denyAll)

	for _, path := range []string{
		"/api/admin/partners",
		"/api/admin/reconciliation/dead",
		"/api/admin/payments/abc-123",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestInitRouter_Health(t *testing.T) {
	r := InitRouter("test", stubHandler{}, denyAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
