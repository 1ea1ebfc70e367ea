package models

import (
	"regexp"
	"strings"

	"gorm.io/gorm"
)

type VehicleStatus string

const (
	VehicleActive   VehicleStatus = "active"
	VehicleInactive VehicleStatus = "inactive"
)

var licensePattern = regexp.MustCompile(`^[A-Z]{3}-[0-9]{3}$`)

type Vehicle struct {
	gorm.Model
	License   string        `gorm:"type:varchar(10);uniqueIndex;not null"`
	Brand     string        `gorm:"type:varchar(50);not null"`
	ModelName string        `gorm:"type:varchar(50);not null;column:model"`
	Year      int           `gorm:"not null"`
	Color     string        `gorm:"type:varchar(30)"`
	UserID    uint          `gorm:"not null;index"`
	Status    VehicleStatus `gorm:"type:varchar(20);not null;default:'active'"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// NormalizeLicense canonicalizes a plate to the XXX-123 form, so "abc123"
// and "ABC-123" refer to the same vehicle for uniqueness purposes.
// Returns false when the input is not three letters followed by three digits.
func NormalizeLicense(raw string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	if len(s) != 6 {
		return "", false
	}
	normalized := s[:3] + "-" + s[3:]
	if !licensePattern.MatchString(normalized) {
		return "", false
	}
	return normalized, true
}

func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleActive, VehicleInactive:
		return true
	default:
		return false
	}
}
