package dto

type JobOrderResponse struct {
	ID             string   `json:"id"`
	ClientID       string   `json:"client_id"`
	ClientName     string   `json:"client_name"`
	JobTitle       string   `json:"job_title"`
	RequiredSkills []string `json:"required_skills"`
	Location       string   `json:"location"`
	PayRate        float64  `json:"pay_rate"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Status         string   `json:"status"`
}
