package dto

type PayrollExportResponse struct {
	TimesheetID   string  `json:"timesheet_id"`
	CandidateID   string  `json:"candidate_id"`
	CandidateName string  `json:"candidate_name"`
	WorkDate      string  `json:"work_date"`
	HoursWorked   float64 `json:"hours_worked"`
	PayRate       float64 `json:"pay_rate"`
	Amount        float64 `json:"amount"`
}
