package routes

import (
	"net/http"
	"time"

	"gramzo/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAgentRoutes registers agent onboarding and moderation endpoints.
func RegisterAgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/agents")
	{
		api.POST("/signup", hb.Agent.Signup)
		api.GET("", hb.Agent.List)
		api.GET("/:id", hb.Agent.Get)
		api.PATCH("/approve/:id", hb.Agent.Approve)
		api.PATCH("/block/:id", hb.Agent.ToggleBlock)
	}
}

// RegisterCatalogRoutes registers service and product listing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	services := r.Group("/api/services")
	{
		services.POST("/create", hb.Catalog.CreateService)
		services.GET("", hb.Catalog.ListServices)
		services.GET("/:id", hb.Catalog.GetService)
		services.DELETE("/:id", hb.Catalog.DeleteService)
	}

	products := r.Group("/api/products")
	{
		products.POST("/create", hb.Catalog.CreateProduct)
		products.GET("", hb.Catalog.ListProducts)
		products.GET("/:id", hb.Catalog.GetProduct)
		products.DELETE("/:id", hb.Catalog.DeleteProduct)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("/create", hb.Booking.Create)
		api.PATCH("/respond/:id", hb.Booking.Respond)
		api.PATCH("/status/:id", hb.Booking.UpdateStatus)
		api.PATCH("/pay/:id", hb.Booking.Pay)
		api.GET("", hb.Booking.List)
		api.GET("/:id", hb.Booking.Get)
	}
}

// RegisterMarketRoutes registers the community price board endpoints.
func RegisterMarketRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/market")
	{
		api.POST("/add", hb.Market.AddOrUpdate)
		api.POST("/update", hb.Market.UpdateByID)
		api.GET("", hb.Market.List)
		api.GET("/category/:category", hb.Market.ByCategory)
	}
}

// RegisterNotificationRoutes registers the polled notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.GET("", hb.Notification.List)
		api.POST("/create", hb.Notification.Create)
		api.PATCH("/read/:id", hb.Notification.MarkRead)
		api.DELETE("/:id", hb.Notification.Delete)
	}
}

// RegisterDirectoryRoutes registers category and notice endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	categories := r.Group("/api/categories")
	{
		categories.POST("", hb.Directory.CreateCategory)
		categories.GET("", hb.Directory.ListCategories)
		categories.DELETE("/:id", hb.Directory.DeleteCategory)
	}

	notices := r.Group("/api/notices")
	{
		notices.POST("", hb.Directory.CreateNotice)
		notices.GET("", hb.Directory.ListNotices)
		notices.DELETE("/:id", hb.Directory.DeleteNotice)
	}
}

// RegisterStorageRoutes registers the image upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.Storage == nil {
		return
	}
	api := r.Group("/api/storage")
	{
		api.POST("/upload", hb.Storage.Upload)
		api.DELETE("", hb.Storage.Delete)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Gramzo"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "x-user-role", "x-agent-id", "x-user-id", "x-user-phone"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAgentRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterMarketRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
