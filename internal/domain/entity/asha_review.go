package entity

import (
	"github.com/google/uuid"
)

// AshaReview is a citizen rating of an ASHA worker after a visit.
type AshaReview struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AshaID     string    `gorm:"type:varchar(64);not null;index" json:"asha_id"`
	CitizenID  string    `gorm:"type:varchar(64);not null" json:"citizen_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	ReviewText *string   `gorm:"type:text" json:"review_text"`
	VisitDate  string    `gorm:"type:varchar(10);not null" json:"visit_date"`
	CreatedAt  string    `gorm:"type:varchar(10)" json:"created_at"`
}

func (AshaReview) TableName() string {
	return "asha_reviews"
}
