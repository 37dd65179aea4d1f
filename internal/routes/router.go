package routes

import (
	"net/http"

	"package-intake/internal/cache"
	"package-intake/internal/config"
	"package-intake/internal/delivery/http/handler"
	"package-intake/internal/infrastructure/database/postgres"
	"package-intake/internal/logger"
	"package-intake/internal/middleware"
	"package-intake/internal/usecase/clia"
	"package-intake/internal/usecase/client"
	"package-intake/internal/usecase/reference"
	"package-intake/internal/usecase/shipment"

	"github.com/gin-gonic/gin"
)

// Services bundles the use case layer so the background workers can share
// the same instances the HTTP handlers use.
type Services struct {
	Shipments  *shipment.Service
	References *reference.Service
	Clients    *client.Service
}

func SetupRoutes(cfg *config.Config, db *postgres.DB) (*gin.Engine, *Services) {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	referenceRepository := postgres.NewReferenceRepository(db)
	referenceService := reference.NewService(referenceRepository)
	referenceHandler := handler.NewReferenceHandler(referenceService)

	shipmentRepository := postgres.NewShipmentRepository(db)
	shipmentService := shipment.NewService(shipmentRepository, referenceService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService)

	clientRepository := postgres.NewClientRepository(db)
	clientCache := cache.NewClientCache(clientRepository)
	clientService := client.NewService(clientRepository, clientCache)
	clientHandler := handler.NewClientHandler(clientService)

	adminRepository := postgres.NewCLIAAdminRepository(db)
	memberRepository := postgres.NewCLIAMemberRepository(db)
	cliaHandler := handler.NewCLIAHandler(
		clia.NewAdminService(adminRepository),
		clia.NewMemberService(memberRepository),
	)

	api := router.Group("/api")
	{
		shipmentHandler.RegisterRoutes(api)
		referenceHandler.RegisterRoutes(api)
		clientHandler.RegisterRoutes(api)
		cliaHandler.RegisterRoutes(api)
	}

	logger.Info("All routes initialized")

	return router, &Services{
		Shipments:  shipmentService,
		References: referenceService,
		Clients:    clientService,
	}
}
