package dto

type DashboardResponse struct {
	OpenJobOrders     int `json:"open_job_orders"`
	Assignments       int `json:"assignments"`
	PendingTimesheets int `json:"pending_timesheets"`
	PayrollReady      int `json:"payroll_ready"`
}
