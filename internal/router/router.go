package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListExperiences(c *ginext.Context)
	GetExperience(c *ginext.Context)
	CreateExperience(c *ginext.Context)
	CreatePartner(c *ginext.Context)
	ListPartners(c *ginext.Context)
	ListPartnerBookings(c *ginext.Context)

	CreateCart(c *ginext.Context)
	GetCart(c *ginext.Context)
	TrackActivity(c *ginext.Context)
	RestartHold(c *ginext.Context)
	Checkout(c *ginext.Context)
	GetBooking(c *ginext.Context)

	CreateOrder(c *ginext.Context)
	PaymentStatus(c *ginext.Context)
	IPN(c *ginext.Context)
	PaymentCallback(c *ginext.Context)
	GetPayment(c *ginext.Context)
	ListDeadJobs(c *ginext.Context)
	RequeueJob(c *ginext.Context)
}

func InitRouter(mode string, h Handler, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/experiences", h.ListExperiences)
		api.GET("/experiences/:slug", h.GetExperience)

		// Carts
		api.POST("/carts", h.CreateCart)
		api.GET("/carts/:id", h.GetCart)
		api.POST("/carts/:id/activity", h.TrackActivity)
		api.POST("/carts/:id/hold", h.RestartHold)
		api.POST("/carts/:id/checkout", h.Checkout)

		// Bookings
		api.GET("/bookings/:id", h.GetBooking)

		// Payments
		api.POST("/payments/orders", h.CreateOrder)
		api.GET("/payments/status/:trackingId", h.PaymentStatus)
		api.GET("/payments/ipn", h.IPN)
		api.POST("/payments/ipn", h.IPN)
		api.GET("/payments/callback", h.PaymentCallback)
	}

	admin := router.Group("/api/admin", adminAuth)
	{
		admin.POST("/experiences", h.CreateExperience)
		admin.POST("/partners", h.CreatePartner)
		admin.GET("/partners", h.ListPartners)
		admin.GET("/partners/:id/bookings", h.ListPartnerBookings)
		admin.GET("/payments/:trackingId", h.GetPayment)
		admin.GET("/reconciliation/dead", h.ListDeadJobs)
		admin.POST("/reconciliation/:id/requeue", h.RequeueJob)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
