package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"
	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/utils"

	"gorm.io/gorm"
)

type CreateVehicleInput struct {
	License   string
	Brand     string
	ModelName string
	Year      int
	Color     string
}

type UpdateVehicleInput struct {
	License   *string
	Brand     *string
	ModelName *string
	Year      *int
	Color     *string
	Status    *models.VehicleStatus
}

// VehicleService owns license normalization and uniqueness. "ABC123" and
// "abc-123" are the same plate; both store as "ABC-123".
type VehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

func (s *VehicleService) Create(ctx context.Context, userID uint, in CreateVehicleInput) (*models.Vehicle, error) {
	license, ok := models.NormalizeLicense(in.License)
	if !ok {
		return nil, fmt.Errorf("%w: license must be three letters followed by three digits", ErrValidation)
	}
	if in.Brand == "" || in.ModelName == "" || in.Year == 0 {
		return nil, fmt.Errorf("%w: brand, model and year are required", ErrValidation)
	}

	if err := s.checkLicenseUnique(ctx, license, 0); err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		License:   license,
		Brand:     in.Brand,
		ModelName: in.ModelName,
		Year:      in.Year,
		Color:     in.Color,
		UserID:    userID,
		Status:    models.VehicleActive,
	}

	if err := s.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		// Two concurrent creates can both pass the pre-check; the unique
		// index catches the loser.
		if utils.IsDuplicateError(err) {
			return nil, fmt.Errorf("%w: license %s already registered", ErrConflict, license)
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, actor Actor, id uint, in UpdateVehicleInput) (*models.Vehicle, error) {
	vehicle, err := s.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if in.License != nil {
		license, ok := models.NormalizeLicense(*in.License)
		if !ok {
			return nil, fmt.Errorf("%w: license must be three letters followed by three digits", ErrValidation)
		}
		if license != vehicle.License {
			if err := s.checkLicenseUnique(ctx, license, vehicle.ID); err != nil {
				return nil, err
			}
			vehicle.License = license
		}
	}
	if in.Brand != nil {
		vehicle.Brand = *in.Brand
	}
	if in.ModelName != nil {
		vehicle.ModelName = *in.ModelName
	}
	if in.Year != nil {
		vehicle.Year = *in.Year
	}
	if in.Color != nil {
		vehicle.Color = *in.Color
	}
	if in.Status != nil {
		if !in.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *in.Status)
		}
		vehicle.Status = *in.Status
	}

	if err := s.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return nil, fmt.Errorf("%w: license %s already registered", ErrConflict, vehicle.License)
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) GetByID(ctx context.Context, actor Actor, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if vehicle.UserID != actor.UserID && !actor.isAdmin() {
		return nil, ErrForbidden
	}

	return &vehicle, nil
}

func (s *VehicleService) ListByUser(ctx context.Context, userID uint) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&vehicles).Error
	return vehicles, err
}

func (s *VehicleService) ListAll(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&vehicles).Error
	return vehicles, err
}

// Delete removes the row outright. A soft delete would keep the plate in the
// unique index and block re-registering the same vehicle later.
func (s *VehicleService) Delete(ctx context.Context, actor Actor, id uint) error {
	vehicle, err := s.GetByID(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Unscoped().Delete(vehicle).Error
}

// checkLicenseUnique excludes the vehicle being edited so saving a vehicle
// with its own plate is not a conflict.
func (s *VehicleService) checkLicenseUnique(ctx context.Context, license string, excludeID uint) error {
	q := s.db.WithContext(ctx).Model(&models.Vehicle{}).Where("license = ?", license)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: license %s already registered", ErrConflict, license)
	}
	return nil
}
