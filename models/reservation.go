package models

import "gorm.io/gorm"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// Reservation books a (date, time) slot for one vehicle and one service.
// Date and Time are kept as the canonical YYYY-MM-DD / HH:MM strings the
// API exchanges, so slot lookups are exact string matches and month
// listings are a prefix match.
type Reservation struct {
	gorm.Model
	UserID    uint              `gorm:"not null;index"`
	VehicleID uint              `gorm:"not null;index"`
	ServiceID uint              `gorm:"not null;index"`
	Date      string            `gorm:"type:char(10);not null;index:idx_reservations_slot"`
	Time      string            `gorm:"type:char(5);not null;index:idx_reservations_slot"`
	Status    ReservationStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes     string            `gorm:"type:text"`

	User    User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Vehicle Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Service Service `gorm:"constraint:OnUpdate:CASCADE"`
}

func (Reservation) TableName() string {
	return "reservations"
}

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status may move to next. Completed is
// terminal; cancelled cannot be re-activated through this workflow.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if s == next {
		return false
	}
	switch s {
	case ReservationPending:
		return next == ReservationConfirmed || next == ReservationCancelled || next == ReservationCompleted
	case ReservationConfirmed:
		return next == ReservationCancelled || next == ReservationCompleted
	default:
		return false
	}
}
