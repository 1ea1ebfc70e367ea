package models

import "gorm.io/gorm"

type ServiceCategory string

const (
	CategoryOilChange   ServiceCategory = "oil_change"
	CategoryFilters     ServiceCategory = "filters"
	CategoryLubrication ServiceCategory = "lubrication"
	CategoryInspection  ServiceCategory = "inspection"
	CategoryOther       ServiceCategory = "other"
)

// Service is a catalog entry. Deleting one only flips IsActive so that
// historical reservations keep a valid reference.
type Service struct {
	gorm.Model
	Name            string          `gorm:"type:varchar(100);not null"`
	Description     string          `gorm:"type:text"`
	Category        ServiceCategory `gorm:"type:varchar(20);not null;index"`
	Price           float64         `gorm:"not null"`
	DurationMinutes int             `gorm:"not null;default:30"`
	IsActive        bool            `gorm:"not null;default:true;index"`
}

func (Service) TableName() string {
	return "services"
}

func (c ServiceCategory) IsValid() bool {
	switch c {
	case CategoryOilChange, CategoryFilters, CategoryLubrication, CategoryInspection, CategoryOther:
		return true
	default:
		return false
	}
}
