package dto

type TimesheetResponse struct {
	ID           string  `json:"id"`
	AssignmentID string  `json:"assignment_id"`
	WorkDate     string  `json:"work_date"`
	HoursWorked  float64 `json:"hours_worked"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
}
