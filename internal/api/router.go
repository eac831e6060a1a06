package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"spacesync-backend/config"
	"spacesync-backend/internal/mw"
	"spacesync-backend/internal/notification"
	"spacesync-backend/internal/store"
	"spacesync-backend/internal/suggest"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, webpushOptions *webpush.Options, suggester suggest.Suggester, pool *notification.WorkerPool, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Initialize middleware
	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst, cfg.Server.RequestIPHeader)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	handler := NewHandler(s, webpushOptions, suggester, pool, cacheStore)

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/locations", handler.GetLocations)
		api.POST("/locations", handler.PostLocation)
		api.PUT("/locations/:location_id", handler.PutLocation)
		api.DELETE("/locations/:location_id", handler.DeleteLocation)

		api.GET("/locations/:location_id/rooms", handler.GetRooms)
		api.POST("/locations/:location_id/rooms", handler.PostRoom)
		api.PUT("/rooms/:room_id", handler.PutRoom)
		api.DELETE("/rooms/:room_id", handler.DeleteRoom)

		api.GET("/locations/:location_id/desks", handler.GetDesks)
		api.POST("/locations/:location_id/desks", handler.PostDesk)
		api.PUT("/desks/:desk_id", handler.PutDesk)
		api.DELETE("/desks/:desk_id", handler.DeleteDesk)

		// Scored analysis reads are cached until the next floor-plan mutation.
		api.GET("/locations/:location_id/proximity", caching, handler.GetProximity)
		api.GET("/locations/:location_id/flow", caching, handler.GetFlow)

		api.POST("/locations/:location_id/proximity/swap", handler.PostSwapSimulation)
		api.POST("/locations/:location_id/proximity/swap/apply", handler.PostSwapApply)

		api.POST("/locations/:location_id/suggestions", handler.PostSuggestions)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
