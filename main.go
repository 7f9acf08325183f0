package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tripforge/config"
	"tripforge/handlers"
	"tripforge/middleware"
	"tripforge/routes"
	"tripforge/services/planner"
	"tripforge/services/trip"
	"tripforge/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Mock mode keeps everything in-process; live mode stores backend
	// session identifiers in Redis so they survive a restart.
	var newPlanner handlers.PlannerFactory
	if config.AppConfig.PlannerUseMock {
		newPlanner = func(string) planner.Service {
			return planner.NewMockService(planner.NewMemorySessionStore(), nil)
		}
	} else {
		utils.InitSessionCache()
		newPlanner = func(planningSessionID string) planner.Service {
			sessions := planner.NewRedisSessionStore(utils.GetSessionCacheClient(), planningSessionID)
			return planner.NewHTTPService(config.AppConfig.PlannerAPIURL, sessions, logger)
		}
	}

	registry := handlers.NewSessionRegistry(
		newPlanner,
		trip.NewScheduler(),
		time.Duration(config.AppConfig.TypingDelayMs)*time.Millisecond,
		config.AppConfig.MaxTripNights,
		logger,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Planner:   handlers.NewPlannerHandler(registry, logger),
		Itinerary: handlers.NewItineraryHandler(registry, logger),
		Checkout:  handlers.NewCheckoutHandler(registry, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
