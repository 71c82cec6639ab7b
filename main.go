// File: vetly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetly/config"
	"vetly/cron"
	"vetly/handlers"
	"vetly/middleware"
	"vetly/routes"
	routingsvc "vetly/services/routing"
	"vetly/services/schedule"
	pimsUpstream "vetly/upstream/pims"
	routingUpstream "vetly/upstream/routing"
	"vetly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitScheduleCache()
	utils.InitNameCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// Upstream clients.
	pimsClient := pimsUpstream.NewHTTPClient()
	routingClient := routingUpstream.NewHTTPClient()

	// Services.
	windowPolicy := schedule.WindowPolicy{
		DefaultWindow: config.AppConfig.TimelineDefaultWindow,
	}
	if startSec, ok := utils.ParseClockSeconds(config.AppConfig.TimelineDefaultStart); ok {
		windowPolicy.DefaultStartSec = startSec
	}
	if endSec, ok := utils.ParseClockSeconds(config.AppConfig.TimelineDefaultEnd); ok {
		windowPolicy.DefaultEndSec = endSec
	}

	timelineService := &schedule.DefaultTimelineService{
		Pims:        pimsClient,
		CacheClient: utils.GetScheduleCacheClient(),
		CacheTTL:    time.Duration(config.AppConfig.TimelineCacheTTLSec) * time.Second,
		Policy:      windowPolicy,
	}

	nameResolver := routingsvc.NewNameResolver(pimsClient, utils.GetNameCacheClient(), time.Hour)
	suggestionService := &routingsvc.DefaultSuggestionService{
		Routing: routingClient,
		Names:   nameResolver,
	}

	// Background timeline warm worker.
	warmer := cron.NewWarmer()
	cron.InitWarmWorker(timelineService)

	// Handlers.
	scheduleHandler := handlers.NewScheduleHandler(timelineService, warmer, logger)
	routingHandler := handlers.NewRoutingHandler(suggestionService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetDayTimeline:         scheduleHandler.GetDayTimeline,
		GetWeekSummaries:       scheduleHandler.GetWeekSummaries,
		PostRoutingSuggestions: routingHandler.PostSuggestions,
		GetHealth:              handlers.GetHealth,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Health monitoring of redis and the upstream APIs.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetScheduleCacheClient(), utils.GetNameCacheClient()},
		config.AppConfig.PimsBaseURL+"/health",
		config.AppConfig.RoutingBaseURL+"/health",
	)

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
