// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/apfam/apfam-backend/internal/config"
	"github.com/apfam/apfam-backend/internal/handlers"
	"github.com/apfam/apfam-backend/internal/middleware"
	"github.com/apfam/apfam-backend/internal/services"
	"github.com/apfam/apfam-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage service: %v", err)
	}

	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db, storageService)
	associateService := services.NewAssociateService(db, storageService)
	eventService := services.NewEventService(db, storageService)
	contactService := services.NewContactService(db, cfg)
	authService := services.NewAuthService(db, cfg)
	statsService := services.NewStatsService(db)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	associateHandler := handlers.NewAssociateHandler(associateService)
	eventHandler := handlers.NewEventHandler(eventService)
	contactHandler := handlers.NewContactHandler(contactService)
	authHandler := handlers.NewAuthHandler(authService)
	uploadHandler := handlers.NewUploadHandler(storageService)
	dashboardHandler := handlers.NewDashboardHandler(statsService, productService, associateService, eventService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Public catalog routes
		v1.GET("/home", dashboardHandler.GetHome)
		v1.GET("/categories", categoryHandler.GetCategories)
		v1.GET("/products", productHandler.GetProducts)
		v1.GET("/products/:slug", productHandler.GetProduct)
		v1.GET("/associates", associateHandler.GetAssociates)
		v1.GET("/associates/:slug", associateHandler.GetAssociate)
		v1.GET("/events", eventHandler.GetEvents)
		v1.GET("/events/:slug", eventHandler.GetEvent)

		// Contact form
		v1.POST("/contact", middleware.ContactRateLimit(), contactHandler.SubmitContact)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired())
		{
			admin.PUT("/profile", authHandler.UpdateProfile)

			dashboard := admin.Group("/dashboard")
			{
				dashboard.GET("/stats", dashboardHandler.GetDashboardStats)
			}

			categories := admin.Group("/categories")
			{
				categories.GET("", categoryHandler.GetCategories)
				categories.POST("", categoryHandler.CreateCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
			}

			products := admin.Group("/products")
			{
				products.GET("", productHandler.GetProducts)
				products.POST("", productHandler.CreateProduct)
				products.PUT("/:id", productHandler.UpdateProduct)
				products.DELETE("/:id", productHandler.DeleteProduct)
			}

			associates := admin.Group("/associates")
			{
				associates.GET("", associateHandler.GetAssociates)
				associates.POST("", associateHandler.CreateAssociate)
				associates.PUT("/:id", associateHandler.UpdateAssociate)
				associates.DELETE("/:id", associateHandler.DeleteAssociate)
			}

			events := admin.Group("/events")
			{
				events.GET("", eventHandler.GetEvents)
				events.POST("", eventHandler.CreateEvent)
				events.PUT("/:id", eventHandler.UpdateEvent)
				events.DELETE("/:id", eventHandler.DeleteEvent)
			}

			admin.GET("/contact-messages", contactHandler.GetContactMessages)

			uploads := admin.Group("/uploads")
			uploads.Use(middleware.UploadRateLimit())
			{
				uploads.POST("", uploadHandler.UploadImage)
				uploads.DELETE("", uploadHandler.DeleteImage)
			}
		}
	}

	return r
}
