package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"artist-booking-backend/internal/mw"
)

// RouterConfig holds the HTTP surface settings.
type RouterConfig struct {
	AllowedOrigins  []string
	RateLimitPerSec float64
	RateLimitBurst  int
}

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, cfg RouterConfig, tokens mw.TokenParser) *gin.Engine {
	r := gin.New()
	r.Use(mw.RequestLogger(h.log), mw.Recovery(h.log))

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rateLimiter := mw.RateLimiter(cfg.RateLimitPerSec, cfg.RateLimitBurst)
	caching := func(c *gin.Context) { c.Next() }
	if h.cache != nil {
		caching = h.cache.Handler()
	}

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/artists", caching, h.ListArtists)
		api.GET("/artists/:id", caching, h.GetArtist)
		api.GET("/artists/:id/availability", h.GetAvailability)
		api.GET("/artists/:id/calendar", h.GetCalendar)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)
	}

	admin := api.Group("/admin")
	admin.Use(mw.RequireAdmin(tokens))
	{
		admin.GET("/bookings", h.ListBookings)
		admin.PATCH("/bookings/:id", h.PatchBooking)
		admin.DELETE("/bookings/:id", h.DeleteBooking)

		admin.GET("/artists", h.ListArtists)
		admin.POST("/artists", h.CreateArtist)
		admin.PUT("/artists/order", h.ReorderArtists)
		admin.PUT("/artists/:id", h.UpdateArtist)

		admin.GET("/artists/:id/blackouts", h.ListBlackouts)
		admin.PUT("/artists/:id/blackouts", h.PutBlackout)
		admin.DELETE("/artists/:id/blackouts/:date", h.DeleteBlackout)

		admin.GET("/subscriptions", h.GetSubscriptions)
		admin.PUT("/subscriptions", h.PutSubscription)
		admin.DELETE("/subscriptions", h.DeleteSubscription)
	}

	return r
}
