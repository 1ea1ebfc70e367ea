package handlers

import (
	"strconv"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/dto"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/services"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils/events"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReservationHandler struct {
	reservations *services.ReservationService
	log          *logrus.Logger
}

func NewReservationHandler(reservations *services.ReservationService, log *logrus.Logger) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, log: log}
}

func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	var req dto.CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}

	reservation, err := h.reservations.Create(c.UserContext(), actor.UserID, services.CreateReservationInput{
		VehicleID: req.VehicleID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	events.Publish(events.ReservationEvent{
		Type:        events.ReservationCreated,
		Reservation: *reservation,
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, "reservation created successfully", dto.NewReservationResponse(*reservation))
}

func (h *ReservationHandler) ListMine(c *fiber.Ctx) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	reservations, err := h.reservations.ListByUser(c.UserContext(), actor.UserID)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "reservations retrieved", dto.NewReservationResponses(reservations))
}

func (h *ReservationHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid user id")
	}

	reservations, err := h.reservations.ListByUser(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "reservations retrieved", dto.NewReservationResponses(reservations))
}

func (h *ReservationHandler) GetByDate(c *fiber.Ctx) error {
	date := c.Params("date")

	reservations, err := h.reservations.GetByDate(c.UserContext(), date)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "reservations retrieved", dto.NewReservationResponses(reservations))
}

func (h *ReservationHandler) GetByMonth(c *fiber.Ctx) error {
	year, errY := strconv.Atoi(c.Params("year"))
	month, errM := strconv.Atoi(c.Params("month"))
	if errY != nil || errM != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "year and month must be numeric")
	}

	reservations, err := h.reservations.GetByMonth(c.UserContext(), year, month)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "reservations retrieved", dto.NewReservationResponses(reservations))
}

func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
	}

	reservation, err := h.reservations.GetByID(c.UserContext(), actor, id)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "reservation retrieved", dto.NewReservationResponse(*reservation))
}

func (h *ReservationHandler) Update(c *fiber.Ctx) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
	}

	var req dto.UpdateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}

	before, err := h.reservations.GetByID(c.UserContext(), actor, id)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	oldStatus := before.Status

	reservation, err := h.reservations.Update(c.UserContext(), actor, id, services.UpdateReservationInput{
		Date:   req.Date,
		Time:   req.Time,
		Notes:  req.Notes,
		Status: req.Status,
	})
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	if reservation.Status != oldStatus {
		events.Publish(events.ReservationEvent{
			Type:        events.ReservationStatusMoved,
			Reservation: *reservation,
			OldStatus:   oldStatus,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "reservation updated successfully", dto.NewReservationResponse(*reservation))
}

func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
	}

	before, err := h.reservations.GetByID(c.UserContext(), actor, id)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	oldStatus := before.Status

	reservation, err := h.reservations.Cancel(c.UserContext(), actor, id)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	events.Publish(events.ReservationEvent{
		Type:        events.ReservationStatusMoved,
		Reservation: *reservation,
		OldStatus:   oldStatus,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, "reservation cancelled", dto.NewReservationResponse(*reservation))
}

func (h *ReservationHandler) Delete(c *fiber.Ctx) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
	}

	if err := h.reservations.Delete(c.UserContext(), actor, id); err != nil {
		return respondServiceError(c, h.log, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
