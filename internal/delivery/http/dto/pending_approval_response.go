package dto

type PendingApprovalResponse struct {
	TimesheetID   string  `json:"timesheet_id"`
	WorkDate      string  `json:"work_date"`
	HoursWorked   float64 `json:"hours_worked"`
	Description   string  `json:"description"`
	CandidateID   string  `json:"candidate_id"`
	CandidateName string  `json:"candidate_name"`
	JobOrderID    string  `json:"job_order_id"`
	JobTitle      string  `json:"job_title"`
}
