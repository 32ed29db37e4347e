package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-shareit/infra"
	"gin-shareit/models"
	"gin-shareit/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultPort = "9090"

func initDB(cfg *infra.Config) *gorm.DB {
	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("[ERROR] Failed to connect to database: %v", err)
	}

	// インメモリ SQLite は起動のたびに空なので常にマイグレーションする
	if cfg.AutoMigrate || (cfg.DB.Driver == "" && cfg.DB.Name == "" && cfg.DB.Path == "") {
		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("[ERROR] Failed to migrate database: %v", err)
		}
		log.Println("[INFO] Database migrated")
	}
	return db
}

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("[ERROR] Failed to load config: %v", err)
	}
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	port := cfg.ListenPort(defaultPort)
	db := initDB(cfg)
	r := setupRouter(db, cfg, services.NewClock())

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("[INFO] Starting shareit server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[ERROR] Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("[ERROR] Server forced to shutdown:", err)
	}
	log.Println("[INFO] Server exited")
}
