package routes

import (
	"net/http"

	"bestdental/handlers"
	"bestdental/web"

	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes registers the server-rendered pages.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Pages.Home)
	r.GET("/about", hb.Pages.About)
	r.GET("/services", hb.Pages.Services)
	r.GET("/services/:slug", hb.Pages.ServiceDetail)
	r.GET("/gallery", hb.Pages.Gallery)
	r.GET("/testimonials", hb.Pages.Testimonials)
	r.GET("/contact", hb.Pages.Contact)
	r.GET("/privacy", hb.Pages.Privacy)

	// Booking form without JavaScript.
	r.GET("/book", hb.Booking.BookingPage)
	r.POST("/book", hb.Booking.SubmitBookingForm)

	r.NoRoute(hb.Pages.NotFound)
}

// RegisterSEORoutes registers sitemap.xml and robots.txt.
func RegisterSEORoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/sitemap.xml", hb.SEO.Sitemap)
	r.GET("/robots.txt", hb.SEO.Robots)
}

// RegisterOpsRoutes registers the health-check and metrics endpoints.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
	if hb.Metrics != nil {
		r.GET("/metrics", hb.Metrics)
	}
}

// RegisterStaticRoutes serves the embedded assets under /static.
func RegisterStaticRoutes(r *gin.Engine) {
	r.StaticFS("/static", http.FS(web.Static()))
}

// RegisterRoutes centralizes registration of all endpoints.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowOrigins []string) {
	RegisterStaticRoutes(r)
	RegisterPageRoutes(r, hb)
	RegisterBookingRoutes(r, hb, allowOrigins)
	RegisterSEORoutes(r, hb)
	RegisterOpsRoutes(r, hb)
}
