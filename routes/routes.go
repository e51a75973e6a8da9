package routes

import (
	"staymate/insights"
	"staymate/listings"
	"staymate/live"
	"staymate/middleware"
	"staymate/ratelim"
	"staymate/ratings"
	"staymate/search"

	"github.com/julienschmidt/httprouter"
)

func AddListingRoutes(router *httprouter.Router, h *listings.Handler) {
	router.GET("/api/listings", h.GetListings)
	router.GET("/api/amenities", h.GetAmenities)
	// httprouter cannot mix a static segment with :listingid, so export
	// lives under its own prefix
	router.GET("/api/export/listings", h.ExportCSV)
	router.GET("/api/listings/:listingid", h.GetListing)
	router.GET("/api/listings/:listingid/qr", h.ListingQR)
	router.GET("/api/listings/:listingid/flyer", h.ListingFlyer)
	router.POST("/api/listings", middleware.Authenticate(h.CreateListing))
}

func AddRatingRoutes(router *httprouter.Router, h *ratings.Handler) {
	router.GET("/api/ratings", h.GetRatings)
	router.PUT("/api/ratings/:listingid", h.RateListing)
}

func AddInsightRoutes(router *httprouter.Router, h *insights.Handler, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/listings/:listingid/insights", rateLimiter.Limit(h.GetInsights))
}

func AddSearchRoutes(router *httprouter.Router, h *search.Handler, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/search/smart", rateLimiter.Limit(h.SmartSearch))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/listings", live.WebSocketHandler(hub))
}
