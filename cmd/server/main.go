package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cartworks/internal/config"
	"cartworks/internal/handler"
	"cartworks/internal/repo"
	"cartworks/internal/service"
	"cartworks/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	logger.Init(cfg.Environment, cfg.LogLevel)

	catalog := repo.NewCatalogRepo()
	catalog.Seed(repo.DefaultProducts()...)

	svc := service.NewCartService(catalog)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), cors.Default())
	handler.NewCartHandler(svc).Register(r)

	logger.Info().Int("port", cfg.Port).Str("env", cfg.Environment).Msg("cart server listening")
	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
