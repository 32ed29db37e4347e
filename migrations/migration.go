package main

import (
	"log"

	"gin-shareit/infra"
	"gin-shareit/models"
)

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("[ERROR] Failed to load config: %v", err)
	}
	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("[ERROR] Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("[ERROR] Failed to migrate database: %v", err)
	}
	log.Println("[INFO] Migration completed")
}
