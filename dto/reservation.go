package dto

import (
	"time"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
)

type CreateReservationRequest struct {
	VehicleID uint   `json:"vehicle_id"`
	ServiceID uint   `json:"service_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes"`
}

type UpdateReservationRequest struct {
	Date   *string                   `json:"date"`
	Time   *string                   `json:"time"`
	Notes  *string                   `json:"notes"`
	Status *models.ReservationStatus `json:"status"`
}

type ReservationResponse struct {
	ID        uint                     `json:"id"`
	UserID    uint                     `json:"user_id"`
	VehicleID uint                     `json:"vehicle_id"`
	ServiceID uint                     `json:"service_id"`
	Date      string                   `json:"date"`
	Time      string                   `json:"time"`
	Status    models.ReservationStatus `json:"status"`
	Notes     string                   `json:"notes,omitempty"`
	Vehicle   *VehicleResponse         `json:"vehicle,omitempty"`
	Service   *ServiceResponse         `json:"service,omitempty"`
	CreatedAt string                   `json:"created_at"`
}

func NewReservationResponse(r models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		VehicleID: r.VehicleID,
		ServiceID: r.ServiceID,
		Date:      r.Date,
		Time:      r.Time,
		Status:    r.Status,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.Vehicle.ID != 0 {
		v := NewVehicleResponse(r.Vehicle)
		resp.Vehicle = &v
	}
	if r.Service.ID != 0 {
		s := NewServiceResponse(r.Service)
		resp.Service = &s
	}
	return resp
}

func NewReservationResponses(reservations []models.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, NewReservationResponse(reservations[i]))
	}
	return out
}
