package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID           string                      `gorm:"primaryKey" json:"_id"`
	Name         string                      `json:"name,omitempty"`
	Email        string                      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string                      `gorm:"not null" json:"-"`
	Role         Role                        `gorm:"type:VARCHAR(10);default:'buyer'" json:"role"`
	Saved        datatypes.JSONSlice[string] `json:"saved"` // saved product ids
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
