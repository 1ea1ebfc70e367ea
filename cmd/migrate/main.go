package main

import (
	"log"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/config"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
)

func main() {
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer config.CloseDB(db)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Service{},
		&models.Reservation{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("migration completed")
}
