package routes

import (
	"net/http"
	"time"

	"bestdental/handlers"
	"bestdental/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// apiTimeout bounds API handlers, including the rate limiter's store call.
const apiTimeout = 10 * time.Second

// RegisterBookingRoutes sets up the booking API.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowOrigins []string) {
	api := r.Group("/api")
	{
		api.Use(cors.New(corsConfig(allowOrigins)))
		api.Use(middleware.Timeout(apiTimeout))
		api.POST("/book", hb.Booking.SubmitBooking)
		api.GET("/booking/schema", hb.Booking.GetBookingSchema)
		// Preflight requests only need to reach the CORS middleware.
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 || (len(allowOrigins) == 1 && allowOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	return cfg
}
