package entity

// Ward is the smallest administrative health-tracking unit. Ward IDs follow
// the WARD-<STATE>-<DISTRICT>-<NUM> format and are minted by government
// officials; existing wards are treated as immutable reference data.
type Ward struct {
	WardID                    string `gorm:"type:varchar(64);primaryKey" json:"ward_id"`
	State                     string `gorm:"type:varchar(100);not null" json:"state"`
	District                  string `gorm:"type:varchar(100);not null" json:"district"`
	WardName                  string `gorm:"type:varchar(255);not null" json:"ward_name"`
	WardNumber                int    `gorm:"not null" json:"ward_number"`
	CleanlinessRate           *int   `json:"cleanliness_rate"`
	VaccinationCompletionRate *int   `json:"vaccination_completion_rate"`
}

func (Ward) TableName() string {
	return "wards"
}
