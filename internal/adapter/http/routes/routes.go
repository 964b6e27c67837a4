package routes

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gestion_tramites/docs"
	"gestion_tramites/internal/adapter/http/handlers"
	"gestion_tramites/internal/app"
	"gestion_tramites/internal/infrastructure/config"
	"gestion_tramites/internal/infrastructure/logger"
)

// Run wires the configured stores and serves the API until the listener fails.
func Run(ctx context.Context, cfg config.Config) error {
	uc, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}

	router := NewRouter(uc)
	log := logger.WithComponent("http")
	log.Info().Int("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("starting api")
	return router.Run(":" + strconv.Itoa(cfg.Port))
}

// NewRouter builds the engine with middlewares, docs, metrics and the /v1 API.
func NewRouter(uc app.UseCases) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCaseRoutes(v1, handlers.NewCaseHandler(uc.Cases, uc.Attention, uc.SoftDelete))
	addProcedureRoutes(v1, handlers.NewProcedureHandler(uc.Procedures, uc.Attention, uc.SoftDelete))
	addClientRoutes(v1, handlers.NewClientHandler(uc.Attention, uc.SoftDelete))
	addDocumentRoutes(v1, handlers.NewDocumentHandler(uc.Documents))
	addRecycleBinRoutes(v1, handlers.NewRecycleBinHandler(uc.RecycleBin))
	return router
}

func setMiddlewares(router *gin.Engine) {
	log := logger.WithComponent("http")
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
