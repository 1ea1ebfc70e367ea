package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleUser     Role = "user"
	RoleAdmin    Role = "admin"
	RoleMechanic Role = "mechanic"
)

type User struct {
	gorm.Model
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(191);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Phone        string `gorm:"type:varchar(30)"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'user';index"`
	IsVerified   bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`

	// Both token pairs live on the user row and are nulled after
	// consumption or expiry cleanup.
	VerificationToken    *string `gorm:"type:char(64);index"`
	VerificationExpires  *time.Time
	PasswordResetToken   *string `gorm:"type:char(64);index"`
	PasswordResetExpires *time.Time

	Vehicles     []Vehicle     `gorm:"foreignKey:UserID"`
	Reservations []Reservation `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool    { return u.Role == RoleAdmin }
func (u *User) IsMechanic() bool { return u.Role == RoleMechanic }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleMechanic:
		return true
	default:
		return false
	}
}
