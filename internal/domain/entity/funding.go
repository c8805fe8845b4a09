package entity

import (
	"github.com/google/uuid"
)

const (
	FundingStatusRecommended = "recommended"
	FundingStatusApproved    = "approved"
	FundingStatusDisbursed   = "disbursed"
)

// Funding is a household funding recommendation. The table exists in the
// schema but no route serves it; kept for parity with the relational model.
type Funding struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HouseholdID       string    `gorm:"type:varchar(64);not null;index" json:"household_id"`
	RecommendedAmount *int      `json:"recommended_amount"`
	GovtSharePercent  *int      `json:"govt_share_percent"`
	GstSharePercent   *int      `json:"gst_share_percent"`
	Status            *string   `gorm:"type:varchar(20)" json:"status"`
	CreatedAt         string    `gorm:"type:varchar(10)" json:"created_at"`
}

func (Funding) TableName() string {
	return "funding"
}
