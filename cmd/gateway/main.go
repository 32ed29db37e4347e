package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-shareit/gateway"
	"gin-shareit/infra"

	"github.com/gin-gonic/gin"
)

const defaultPort = "8080"

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("[ERROR] Failed to load config: %v", err)
	}
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	port := cfg.ListenPort(defaultPort)
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      gateway.NewRouter(cfg, nil),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("[INFO] Starting shareit gateway on port %s (server %s)", port, cfg.ServerURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[ERROR] Failed to start gateway: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[INFO] Shutting down gateway...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("[ERROR] Gateway forced to shutdown:", err)
	}
	log.Println("[INFO] Gateway exited")
}
