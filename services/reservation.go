package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"

	"gorm.io/gorm"
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// Actor identifies the authenticated caller for authorization checks.
type Actor struct {
	UserID uint
	Role   models.Role
}

func (a Actor) isAdmin() bool { return a.Role == models.RoleAdmin }

type CreateReservationInput struct {
	VehicleID uint
	ServiceID uint
	Date      string
	Time      string
	Notes     string
}

type UpdateReservationInput struct {
	Date   *string
	Time   *string
	Notes  *string
	Status *models.ReservationStatus
}

// ReservationService enforces the booking rules: one non-cancelled
// reservation per (date, time) slot, no past dates, owner-only vehicles.
// The slot check and the write run inside one transaction so two concurrent
// bookings for the same slot cannot both pass the availability read.
type ReservationService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db, now: time.Now}
}

func (s *ReservationService) Create(ctx context.Context, userID uint, in CreateReservationInput) (*models.Reservation, error) {
	if in.VehicleID == 0 || in.ServiceID == 0 || in.Date == "" || in.Time == "" {
		return nil, fmt.Errorf("%w: vehicleId, serviceId, date and time are required", ErrValidation)
	}

	var vehicle models.Vehicle
	if err := s.db.WithContext(ctx).First(&vehicle, in.VehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if vehicle.UserID != userID {
		return nil, ErrForbidden
	}

	if err := s.validateSlotFields(in.Date, in.Time); err != nil {
		return nil, err
	}

	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, in.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reservation := &models.Reservation{
		UserID:    userID,
		VehicleID: in.VehicleID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Time:      in.Time,
		Status:    models.ReservationPending,
		Notes:     in.Notes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkSlotAvailable(tx, in.Date, in.Time, 0); err != nil {
			return err
		}
		return tx.Create(reservation).Error
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

func (s *ReservationService) Update(ctx context.Context, actor Actor, id uint, in UpdateReservationInput) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if reservation.UserID != actor.UserID && !actor.isAdmin() {
		return nil, ErrForbidden
	}

	date := reservation.Date
	timeStr := reservation.Time
	slotChanged := false
	if in.Date != nil && *in.Date != reservation.Date {
		date = *in.Date
		slotChanged = true
	}
	if in.Time != nil && *in.Time != reservation.Time {
		timeStr = *in.Time
		slotChanged = true
	}

	if slotChanged {
		if reservation.Status != models.ReservationPending {
			return nil, ErrInvalidState
		}
		if err := s.validateSlotFields(date, timeStr); err != nil {
			return nil, err
		}
	}

	if in.Status != nil {
		if !in.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *in.Status)
		}
		if !reservation.Status.CanTransitionTo(*in.Status) {
			return nil, ErrInvalidState
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if slotChanged {
			if err := s.checkSlotAvailable(tx, date, timeStr, reservation.ID); err != nil {
				return err
			}
			reservation.Date = date
			reservation.Time = timeStr
		}
		if in.Notes != nil {
			reservation.Notes = *in.Notes
		}
		if in.Status != nil {
			reservation.Status = *in.Status
		}
		return tx.Save(&reservation).Error
	})
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

// Cancel marks the reservation cancelled, freeing its slot. Completed
// reservations cannot be cancelled.
func (s *ReservationService) Cancel(ctx context.Context, actor Actor, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if reservation.UserID != actor.UserID && !actor.isAdmin() {
		return nil, ErrForbidden
	}

	if reservation.Status == models.ReservationCompleted {
		return nil, ErrInvalidState
	}

	if err := s.db.WithContext(ctx).Model(&reservation).
		Update("status", models.ReservationCancelled).Error; err != nil {
		return nil, err
	}

	reservation.Status = models.ReservationCancelled
	return &reservation, nil
}

// Delete is a hard delete, admin-only, with no status guard.
func (s *ReservationService) Delete(ctx context.Context, actor Actor, id uint) error {
	if !actor.isAdmin() {
		return ErrForbidden
	}

	res := s.db.WithContext(ctx).Unscoped().Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReservationService) GetByID(ctx context.Context, actor Actor, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).
		Preload("Vehicle").Preload("Service").
		First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if reservation.UserID != actor.UserID && !actor.isAdmin() {
		return nil, ErrForbidden
	}

	return &reservation, nil
}

func (s *ReservationService) ListByUser(ctx context.Context, userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Preload("Vehicle").Preload("Service").
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) GetByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	if !datePattern.MatchString(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Preload("Vehicle").Preload("Service").
		Where("date = ?", date).
		Order("time ASC").
		Find(&reservations).Error
	return reservations, err
}

// GetByMonth matches by prefix of the stored date string.
func (s *ReservationService) GetByMonth(ctx context.Context, year, month int) ([]models.Reservation, error) {
	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: invalid year or month", ErrValidation)
	}

	prefix := fmt.Sprintf("%04d-%02d-%%", year, month)
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Preload("Vehicle").Preload("Service").
		Where("date LIKE ?", prefix).
		Order("date ASC, time ASC").
		Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) validateSlotFields(date, timeStr string) error {
	if !datePattern.MatchString(date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if !timePattern.MatchString(timeStr) {
		return fmt.Errorf("%w: time must be HH:MM (24-hour)", ErrValidation)
	}

	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return fmt.Errorf("%w: date is not a real calendar date", ErrValidation)
	}

	today := s.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if parsed.Before(today) {
		return ErrPastDate
	}

	return nil
}

// checkSlotAvailable must run inside the transaction that also performs the
// write, so the second of two concurrent conflicting bookings fails here.
func (s *ReservationService) checkSlotAvailable(tx *gorm.DB, date, timeStr string, excludeID uint) error {
	q := tx.Model(&models.Reservation{}).
		Where("date = ? AND time = ? AND status <> ?", date, timeStr, models.ReservationCancelled)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlotTaken
	}
	return nil
}
