package entity

import (
	"github.com/google/uuid"
)

// Role values accepted at login.
const (
	RoleCitizen = "citizen"
	RoleDoctor  = "doctor"
	RoleAsha    = "asha"
	RoleGov     = "gov"
)

// User represents a portal account, provisioned on first login by email.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role        string    `gorm:"type:varchar(20);not null" json:"role"`
	FullName    string    `gorm:"type:varchar(255);not null" json:"full_name"`
	WardID      *string   `gorm:"type:varchar(64)" json:"ward_id"`
	HouseholdID *string   `gorm:"type:varchar(64)" json:"household_id"`
}

func (User) TableName() string {
	return "users"
}
