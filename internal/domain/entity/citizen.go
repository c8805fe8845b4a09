package entity

import (
	"github.com/google/uuid"
)

// Citizen mirrors the citizens reference table. No route reads or writes it;
// it is migrated for parity with the relational schema.
type Citizen struct {
	CitizenID uuid.UUID `gorm:"type:uuid;primaryKey" json:"citizen_id"`
	UhcID     *string   `gorm:"type:varchar(64);uniqueIndex" json:"uhc_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Age       *int      `json:"age"`
	Gender    *string   `gorm:"type:varchar(20)" json:"gender"`
	Address   *string   `gorm:"type:text" json:"address"`
	WardID    *string   `gorm:"type:varchar(64)" json:"ward_id"`
	Category  *string   `gorm:"type:varchar(20)" json:"category"`
}

func (Citizen) TableName() string {
	return "citizens"
}
