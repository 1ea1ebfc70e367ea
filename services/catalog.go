package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"

	"gorm.io/gorm"
)

type CreateServiceInput struct {
	Name            string
	Description     string
	Category        models.ServiceCategory
	Price           float64
	DurationMinutes int
}

type UpdateServiceInput struct {
	Name            *string
	Description     *string
	Category        *models.ServiceCategory
	Price           *float64
	DurationMinutes *int
	IsActive        *bool
}

// CatalogService manages the bookable service catalog. Deleting an entry is
// a soft delete (IsActive=false) so existing reservations keep their
// reference.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Create(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !in.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}

	service := &models.Service{
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		IsActive:        true,
	}
	if service.DurationMinutes <= 0 {
		service.DurationMinutes = 30
	}

	if err := s.db.WithContext(ctx).Create(service).Error; err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) Update(ctx context.Context, id uint, in UpdateServiceInput) (*models.Service, error) {
	service, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Category != nil {
		if !in.Category.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *in.Category)
		}
		service.Category = *in.Category
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
		}
		service.Price = *in.Price
	}
	if in.DurationMinutes != nil && *in.DurationMinutes > 0 {
		service.DurationMinutes = *in.DurationMinutes
	}
	if in.IsActive != nil {
		service.IsActive = *in.IsActive
	}

	if err := s.db.WithContext(ctx).Save(service).Error; err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// List returns active entries; includeInactive widens it for admins.
func (s *CatalogService) List(ctx context.Context, includeInactive bool) ([]models.Service, error) {
	q := s.db.WithContext(ctx).Order("category ASC, name ASC")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var services []models.Service
	err := q.Find(&services).Error
	return services, err
}

// Delete soft-deletes by flipping IsActive.
func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	service, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(service).Update("is_active", false).Error
}
