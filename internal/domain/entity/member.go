package entity

import (
	"github.com/google/uuid"
)

// Member is a person belonging to exactly one household. MemberID is the
// derived MEM-<household-suffix>-<seq> identifier; ID is the internal key.
type Member struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID    *string   `gorm:"type:varchar(64);uniqueIndex" json:"member_id"`
	HouseholdID string    `gorm:"type:varchar(64);not null;index" json:"household_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Age         int       `gorm:"not null" json:"age"`
	Relation    string    `gorm:"type:varchar(50);not null" json:"relation"`
}

func (Member) TableName() string {
	return "members"
}
