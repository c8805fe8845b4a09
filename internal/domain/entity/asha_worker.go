package entity

const (
	AshaStatusActive    = "active"
	AshaStatusSuspended = "suspended"
)

// AshaWorker is a community health worker assigned to a ward. Workers are
// managed by the admin panel and suspended/reactivated by the government role.
type AshaWorker struct {
	AshaID           string  `gorm:"type:varchar(64);primaryKey" json:"asha_id"`
	WardID           string  `gorm:"type:varchar(64);not null;index" json:"ward_id"`
	Name             string  `gorm:"type:varchar(255);not null" json:"name"`
	Phone            string  `gorm:"type:varchar(20);not null" json:"phone"`
	Email            *string `gorm:"type:varchar(255)" json:"email"`
	Status           string  `gorm:"type:varchar(20);not null;default:active" json:"status"`
	SuspensionReason *string `gorm:"type:text" json:"suspension_reason"`
	SuspendedBy      *string `gorm:"type:varchar(255)" json:"suspended_by"`
	SuspendedAt      *string `gorm:"type:varchar(10)" json:"suspended_at"`
}

func (AshaWorker) TableName() string {
	return "asha_workers"
}
