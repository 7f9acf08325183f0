package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tripforge/handlers"
)

// HandlerBundle collects the handlers wired up in main.
type HandlerBundle struct {
	Planner   *handlers.PlannerHandler
	Itinerary *handlers.ItineraryHandler
	Checkout  *handlers.CheckoutHandler
}

// RegisterRoutes sets up all endpoints on the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPlannerRoutes(r, hb)
}

// RegisterPlannerRoutes registers the planning-session endpoints.
func RegisterPlannerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/planner/sessions")
	{
		api.POST("", hb.Planner.CreateSession)
		api.GET("/:sessionID", hb.Planner.GetSession)
		api.POST("/:sessionID/input", hb.Planner.SubmitInput)
		api.DELETE("/:sessionID", hb.Planner.EndSession)

		api.GET("/:sessionID/itinerary", hb.Itinerary.GetItinerary)
		api.GET("/:sessionID/costs", hb.Itinerary.GetCostBreakdown)
		api.GET("/:sessionID/share", hb.Itinerary.GetShareCard)

		api.POST("/:sessionID/checkout", hb.Checkout.Checkout)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Tripforge"})
	})
}
