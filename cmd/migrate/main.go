package main

import (
	"log"

	"usersvc/config"
	"usersvc/internal/db"
	"usersvc/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	gormDB, err := db.NewDB(cfg.DSN)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	migrator := gormDB.Migrator()
	if !migrator.HasIndex(&models.User{}, "Email") {
		if err := migrator.CreateIndex(&models.User{}, "Email"); err != nil {
			log.Fatalf("create index failed: %v", err)
		}
	}

	log.Println("migration completed")
}
