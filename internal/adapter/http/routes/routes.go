package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	_ "grenzgaenger_service/docs" // generated by swag init
	"grenzgaenger_service/internal/adapter/http/handlers"
	"grenzgaenger_service/internal/infrastructure/config"
	"grenzgaenger_service/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	store := openLeadStore(context.Background(), cfg)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		store.close(ctx)
	}()

	router := NewRouter(cfg, store)

	log.Printf("[http] listening port=%d store=%s", cfg.Port, cfg.LeadStore)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg *config.Config, store *leadStore) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	leadUseCase := usecase.NewLeadUseCase(store.repo)
	netSalaryUseCase := usecase.NewNetSalaryUseCase()
	statusUseCase := usecase.NewStatusUseCase(store.probe, usecase.StoreSettings{
		DatabaseURLSet:  cfg.DatabaseURLSet,
		DatabaseNameSet: cfg.DatabaseNameSet,
	})

	leadHandler := handlers.NewLeadHandler(leadUseCase)
	netSalaryHandler := handlers.NewNetSalaryHandler(netSalaryUseCase)
	statusHandler := handlers.NewStatusHandler(statusUseCase)

	addStatusRoutes(router, statusHandler)

	api := router.Group("/api")
	addLeadRoutes(api, leadHandler, newIPRateLimiter(cfg.LeadRateLimitPerMinute, cfg.LeadRateLimitBurst))
	addCalcRoutes(api, netSalaryHandler)

	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig(cfg)))
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	c.MaxAge = 12 * time.Hour
	if cfg.CORSAllowAll {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSOrigins
	}
	return c
}
