package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/pagecms/internal/config"
	"github.com/pagecms/internal/db"
	"github.com/pagecms/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	r := router.SetupRouter(cfg, db.DB)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
