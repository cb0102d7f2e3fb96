package domain

type DeadlineRequest struct {
	State        string `json:"state" validate:"required"`
	JobStartDate string `json:"job_start_date" validate:"required"` // expected format: YYYY-MM-DD
}
