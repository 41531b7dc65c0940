package timesheet

type Status string

const (
	StatusSubmitted    Status = "SUBMITTED"
	StatusApproved     Status = "APPROVED"
	StatusRejected     Status = "REJECTED"
	StatusPayrollReady Status = "PAYROLL_READY"
)

type Timesheet struct {
	ID           string
	AssignmentID string
	WorkDate     string
	HoursWorked  float64
	Description  string
	Status       Status
}
