package dto

import (
	"time"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
)

type CreateVehicleRequest struct {
	License string `json:"license"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
	Color   string `json:"color"`
}

type UpdateVehicleRequest struct {
	License *string               `json:"license"`
	Brand   *string               `json:"brand"`
	Model   *string               `json:"model"`
	Year    *int                  `json:"year"`
	Color   *string               `json:"color"`
	Status  *models.VehicleStatus `json:"status"`
}

type VehicleResponse struct {
	ID        uint                 `json:"id"`
	License   string               `json:"license"`
	Brand     string               `json:"brand"`
	Model     string               `json:"model"`
	Year      int                  `json:"year"`
	Color     string               `json:"color"`
	UserID    uint                 `json:"user_id"`
	Status    models.VehicleStatus `json:"status"`
	CreatedAt string               `json:"created_at"`
}

func NewVehicleResponse(v models.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:        v.ID,
		License:   v.License,
		Brand:     v.Brand,
		Model:     v.ModelName,
		Year:      v.Year,
		Color:     v.Color,
		UserID:    v.UserID,
		Status:    v.Status,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}

func NewVehicleResponses(vehicles []models.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, NewVehicleResponse(vehicles[i]))
	}
	return out
}
