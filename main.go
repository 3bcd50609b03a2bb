// File: gramzo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gramzo/config"
	"gramzo/cron"
	"gramzo/database"
	agentRepoPkg "gramzo/database/repository/agent"
	bookingRepoPkg "gramzo/database/repository/booking"
	catalogRepoPkg "gramzo/database/repository/catalog"
	directoryRepoPkg "gramzo/database/repository/directory"
	marketRepoPkg "gramzo/database/repository/market"
	notificationRepoPkg "gramzo/database/repository/notification"
	"gramzo/handlers"
	"gramzo/middleware"
	"gramzo/routes"
	agentSvc "gramzo/services/agent"
	"gramzo/services/booking"
	"gramzo/services/catalog"
	"gramzo/services/directory"
	"gramzo/services/market"
	"gramzo/services/notification"
	"gramzo/services/storage"
	"gramzo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.AuthContextMiddleware())

	// repositories.
	agentRepo := agentRepoPkg.NewMongoAgentRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo()
	productRepo := catalogRepoPkg.NewMongoProductRepo()
	marketRepo := marketRepoPkg.NewMongoMarketRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	categoryRepo := directoryRepoPkg.NewMongoCategoryRepo()
	noticeRepo := directoryRepoPkg.NewMongoNoticeRepo()

	// Notification outbox: booking events are enqueued and persisted by the
	// background worker so booking responses never wait on delivery. Without
	// redis, notifications persist synchronously and market reads skip caching.
	var dispatcher notification.Dispatcher
	var marketCache *redis.Client
	if config.AppConfig.RedisAddr == "" {
		logger.Sugar().Warn("main: redis not configured; notification queue and market cache disabled")
		dispatcher = &notification.StoreDispatcher{Repo: notificationRepo}
	} else {
		utils.InitCache()
		marketCache = utils.GetCacheClient()

		queueClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		defer queueClient.Close()
		dispatcher = &notification.AsynqDispatcher{Client: queueClient}
		cron.InitNotificationWorker(notificationRepo)
	}

	// services.
	agentService := &agentSvc.DefaultAgentService{Repo: agentRepo}
	catalogService := &catalog.DefaultCatalogService{
		Services: serviceRepo,
		Products: productRepo,
		Agents:   agentRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Services: serviceRepo,
		Agents:   agentRepo,
		Notifier: dispatcher,
	}
	marketService := &market.DefaultMarketService{Repo: marketRepo, Cache: marketCache}
	notificationService := &notification.DefaultNotificationService{Repo: notificationRepo}
	directoryService := &directory.DefaultDirectoryService{
		Categories: categoryRepo,
		Notices:    noticeRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Agent:        handlers.NewAgentHandler(agentService),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Market:       handlers.NewMarketHandler(marketService),
		Notification: handlers.NewNotificationHandler(notificationService),
		Directory:    handlers.NewDirectoryHandler(directoryService),
	}

	// Image hosting is optional; the server runs without Cloudinary credentials.
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: image storage disabled: %v", err)
	} else {
		handlerBundle.Storage = handlers.NewStorageHandler(storage.NewStorageService(cld))
	}

	// Register routes with the assembled handler bundle.
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
