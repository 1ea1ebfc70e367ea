package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/config"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/handlers"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/routes"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/services"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils/events"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils/mailer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := config.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	appCfg := config.LoadAppConfig()
	mail := mailer.NewClient(config.LoadEmailConfig())

	tokens := services.NewTokenService()
	verification := services.NewVerificationService(db, tokens)
	recovery := services.NewRecoveryService(db, tokens)
	reservations := services.NewReservationService(db)
	vehicles := services.NewVehicleService(db)
	catalog := services.NewCatalogService(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events.StartNotifierConsumer(ctx, log)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(fiberlogger.New())

	routes.Register(ctx, app, db, routes.Handlers{
		Auth:         handlers.NewAuthHandler(db, verification, recovery, mail, appCfg, log),
		Users:        handlers.NewUserHandler(db, log),
		Vehicles:     handlers.NewVehicleHandler(vehicles, log),
		Reservations: handlers.NewReservationHandler(reservations, log),
		Services:     handlers.NewServiceHandler(catalog, log),
		Admin:        handlers.NewAdminHandler(db, log),
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	log.WithField("port", appCfg.Port).Info("API listening")
	if err := app.Listen(":" + appCfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}

	if err := config.CloseDB(db); err != nil {
		log.WithError(err).Error("failed to close database")
	}
}
