package dto

type CreateReviewRequest struct {
	CitizenID  string  `json:"citizen_id" validate:"required"`
	Rating     int     `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText *string `json:"review_text" validate:"omitempty"`
	VisitDate  string  `json:"visit_date" validate:"required,datetime=2006-01-02"`
}
