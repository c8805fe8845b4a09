package entity

// Household is a family unit tracked for sanitation and vaccination metrics.
// Household IDs follow HH-<ward-suffix>-<seq>; uhc_id is the citizen-facing
// Unique Health Code.
type Household struct {
	HouseholdID           string  `gorm:"type:varchar(64);primaryKey" json:"household_id"`
	WardID                string  `gorm:"type:varchar(64);not null;index" json:"ward_id"`
	FamilyName            string  `gorm:"type:varchar(255);not null" json:"family_name"`
	FamilyHead            string  `gorm:"type:varchar(255);not null" json:"family_head"`
	CleanlinessScore      *int    `json:"cleanliness_score"`
	VaccinationCompletion *int    `json:"vaccination_completion"`
	LastVisit             *string `gorm:"type:varchar(10)" json:"last_visit"`
	Address               *string `gorm:"type:text" json:"address"`
	UhcID                 *string `gorm:"type:varchar(64);uniqueIndex" json:"uhc_id"`
}

func (Household) TableName() string {
	return "households"
}

// HouseholdCounter backs atomic member-ID sequence allocation per household.
// Incremented with a single UPDATE so concurrent member inserts cannot mint
// the same sequence number.
type HouseholdCounter struct {
	HouseholdID string `gorm:"type:varchar(64);primaryKey" json:"household_id"`
	MemberSeq   int    `gorm:"not null;default:0" json:"member_seq"`
}

func (HouseholdCounter) TableName() string {
	return "household_counters"
}
