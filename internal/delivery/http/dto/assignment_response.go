package dto

type AssignmentResponse struct {
	ID            string `json:"id"`
	JobOrderID    string `json:"job_order_id"`
	JobTitle      string `json:"job_title"`
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	AssignedDate  string `json:"assigned_date"`
	Status        string `json:"status"`
}
