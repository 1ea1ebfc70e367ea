package handlers

import (
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/dto"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/services"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServiceHandler struct {
	catalog *services.CatalogService
	log     *logrus.Logger
}

func NewServiceHandler(catalog *services.CatalogService, log *logrus.Logger) *ServiceHandler {
	return &ServiceHandler{catalog: catalog, log: log}
}

func (h *ServiceHandler) List(c *fiber.Ctx) error {
	includeInactive := false
	if actor, ok := requestActor(c); ok && actor.Role == models.RoleAdmin {
		includeInactive = c.QueryBool("all", false)
	}

	list, err := h.catalog.List(c.UserContext(), includeInactive)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "services retrieved", dto.NewServiceResponses(list))
}

func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
	}

	service, err := h.catalog.GetByID(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "service retrieved", dto.NewServiceResponse(*service))
}

func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}

	service, err := h.catalog.Create(c.UserContext(), services.CreateServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "service created successfully", dto.NewServiceResponse(*service))
}

func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
	}

	var req dto.UpdateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
	}

	service, err := h.catalog.Update(c.UserContext(), id, services.UpdateServiceInput{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "service updated successfully", dto.NewServiceResponse(*service))
}

// Delete deactivates the catalog entry; the row stays for historical
// reservations.
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid id")
	}

	if err := h.catalog.Delete(c.UserContext(), id); err != nil {
		return respondServiceError(c, h.log, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "service deactivated", nil)
}
