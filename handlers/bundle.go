package handlers

import (
	"bestdental/middleware"
	"bestdental/services/booking"
	"bestdental/services/site"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Booking *BookingHandler
	Pages   *PageHandler
	SEO     *SEOHandler

	Health gin.HandlerFunc
	// Metrics is nil when the metrics endpoint is disabled.
	Metrics gin.HandlerFunc
}

// NewHandlerBundle wires every handler to the given services.
func NewHandlerBundle(bookingSvc booking.BookingService, siteSvc site.SiteService, metrics *middleware.Metrics) *HandlerBundle {
	hb := &HandlerBundle{
		Booking: NewBookingHandler(bookingSvc, siteSvc, metrics),
		Pages:   NewPageHandler(siteSvc),
		SEO:     &SEOHandler{Site: siteSvc},
		Health:  Health,
	}
	if metrics != nil {
		hb.Metrics = metrics.Handler()
	}
	return hb
}
