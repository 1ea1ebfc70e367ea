package services

import (
	"context"
	"testing"

	"github.com/S-kfmN/UTN-DS25-Grupo6-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCatalogService(t *testing.T) {
	db := openTestDB(t)
	svc := NewCatalogService(db)

	service, err := svc.Create(context.Background(), CreateServiceInput{
		Name:        "Cambio de aceite",
		Description: "Aceite sintetico y filtro",
		Category:    models.CategoryOilChange,
		Price:       15000,
	})
	require.NoError(t, err)
	assert.True(t, service.IsActive)
	assert.Equal(t, 30, service.DurationMinutes, "duration defaults when omitted")
}

func TestCreateCatalogServiceValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewCatalogService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateServiceInput{Category: models.CategoryOther})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreateServiceInput{Name: "Revision", Category: "detailing"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreateServiceInput{Name: "Revision", Category: models.CategoryInspection, Price: -1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteCatalogServiceIsSoft(t *testing.T) {
	db := openTestDB(t)
	svc := NewCatalogService(db)
	ctx := context.Background()

	service := createTestService(t, db)
	require.NoError(t, svc.Delete(ctx, service.ID))

	// Still readable by id, hidden from the public listing.
	got, err := svc.GetByID(ctx, service.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	visible, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateCatalogService(t *testing.T) {
	db := openTestDB(t)
	svc := NewCatalogService(db)
	ctx := context.Background()

	service := createTestService(t, db)

	price := 21000.0
	duration := 45
	updated, err := svc.Update(ctx, service.ID, UpdateServiceInput{
		Price:           &price,
		DurationMinutes: &duration,
	})
	require.NoError(t, err)
	assert.Equal(t, 21000.0, updated.Price)
	assert.Equal(t, 45, updated.DurationMinutes)

	bad := models.ServiceCategory("detailing")
	_, err = svc.Update(ctx, service.ID, UpdateServiceInput{Category: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(ctx, 9999, UpdateServiceInput{Price: &price})
	assert.ErrorIs(t, err, ErrNotFound)
}
