package handlers

import (
	"runtime"
	"time"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db        *gorm.DB
	log       *logrus.Logger
	startedAt time.Time
}

func NewAdminHandler(db *gorm.DB, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{db: db, log: log, startedAt: time.Now()}
}

type statsResponse struct {
	Users               int64            `json:"users"`
	Vehicles            int64            `json:"vehicles"`
	Services            int64            `json:"services"`
	Reservations        int64            `json:"reservations"`
	ReservationsByState map[string]int64 `json:"reservations_by_status"`
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	ctx := c.UserContext()
	stats := statsResponse{ReservationsByState: make(map[string]int64)}

	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.User{}, &stats.Users},
		{&models.Vehicle{}, &stats.Vehicles},
		{&models.Service{}, &stats.Services},
		{&models.Reservation{}, &stats.Reservations},
	}
	for _, cnt := range counts {
		if err := h.db.WithContext(ctx).Model(cnt.model).Count(cnt.dst).Error; err != nil {
			h.log.WithError(err).Error("failed to compute stats")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to compute stats")
		}
	}

	rows := []struct {
		Status string
		Count  int64
	}{}
	err := h.db.WithContext(ctx).Model(&models.Reservation{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		h.log.WithError(err).Error("failed to compute reservation stats")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL", "failed to compute stats")
	}
	for _, row := range rows {
		stats.ReservationsByState[row.Status] = row.Count
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "stats computed", stats)
}

type systemResponse struct {
	UptimeSeconds int64  `json:"uptime_seconds"`
	GoVersion     string `json:"go_version"`
	Database      string `json:"database"`
}

func (h *AdminHandler) System(c *fiber.Ctx) error {
	dbStatus := "ok"
	if sqlDB, err := h.db.DB(); err != nil {
		dbStatus = "unavailable"
	} else if err := sqlDB.PingContext(c.UserContext()); err != nil {
		dbStatus = "unreachable"
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "system status", systemResponse{
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		GoVersion:     runtime.Version(),
		Database:      dbStatus,
	})
}
