package dto

import "github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"

type CreateServiceRequest struct {
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	Category        models.ServiceCategory `json:"category"`
	Price           float64                `json:"price"`
	DurationMinutes int                    `json:"duration_minutes"`
}

type UpdateServiceRequest struct {
	Name            *string                 `json:"name"`
	Description     *string                 `json:"description"`
	Category        *models.ServiceCategory `json:"category"`
	Price           *float64                `json:"price"`
	DurationMinutes *int                    `json:"duration_minutes"`
	IsActive        *bool                   `json:"is_active"`
}

type ServiceResponse struct {
	ID              uint                   `json:"id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	Category        models.ServiceCategory `json:"category"`
	Price           float64                `json:"price"`
	DurationMinutes int                    `json:"duration_minutes"`
	IsActive        bool                   `json:"is_active"`
}

func NewServiceResponse(s models.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Category:        s.Category,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		IsActive:        s.IsActive,
	}
}

func NewServiceResponses(services []models.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, NewServiceResponse(services[i]))
	}
	return out
}
