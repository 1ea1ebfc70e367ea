package handlers

import (
	"strconv"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/dto"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/middleware"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/services"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VehicleHandler struct {
	vehicles *services.VehicleService
	log      *logrus.Logger
}

func NewVehicleHandler(vehicles *services.VehicleService, log *logrus.Logger) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles, log: log}
}

func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	var req dto.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}

	vehicle, err := h.vehicles.Create(c.UserContext(), actor.UserID, services.CreateVehicleInput{
		License:   req.License,
		Brand:     req.Brand,
		ModelName: req.Model,
		Year:      req.Year,
		Color:     req.Color,
	})
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "vehicle registered successfully", dto.NewVehicleResponse(*vehicle))
}

func (h *VehicleHandler) ListMine(c *fiber.Ctx) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	vehicles, err := h.vehicles.ListByUser(c.UserContext(), actor.UserID)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "vehicles retrieved", dto.NewVehicleResponses(vehicles))
}

func (h *VehicleHandler) ListAll(c *fiber.Ctx) error {
	vehicles, err := h.vehicles.ListAll(c.UserContext())
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "vehicles retrieved", dto.NewVehicleResponses(vehicles))
}

func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
	}

	vehicle, err := h.vehicles.GetByID(c.UserContext(), actor, id)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "vehicle retrieved", dto.NewVehicleResponse(*vehicle))
}

func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
	}

	var req dto.UpdateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}

	vehicle, err := h.vehicles.Update(c.UserContext(), actor, id, services.UpdateVehicleInput{
		License:   req.License,
		Brand:     req.Brand,
		ModelName: req.Model,
		Year:      req.Year,
		Color:     req.Color,
		Status:    req.Status,
	})
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "vehicle updated successfully", dto.NewVehicleResponse(*vehicle))
}

func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	actor, ok := requestActor(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
	}

	if err := h.vehicles.Delete(c.UserContext(), actor, id); err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "vehicle deleted successfully", nil)
}

// requestActor builds the services.Actor from the verified JWT claims.
func requestActor(c *fiber.Ctx) (services.Actor, bool) {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return services.Actor{}, false
	}
	return services.Actor{UserID: claims.UserID, Role: claims.Role}, true
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
