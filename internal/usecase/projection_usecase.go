package usecase

import (
	"context"

	"staff-flow/internal/domain/joborder"
	"staff-flow/internal/domain/timesheet"
	"staff-flow/internal/store"
)

type DashboardCounts struct {
	OpenJobOrders     int
	Assignments       int
	PendingTimesheets int
	PayrollReady      int
}

// PendingApprovalItem is a SUBMITTED timesheet joined with its assignment,
// candidate and job order for display. Unresolved references leave the joined
// fields blank instead of failing the whole projection.
type PendingApprovalItem struct {
	TimesheetID   string
	WorkDate      string
	HoursWorked   float64
	Description   string
	CandidateID   string
	CandidateName string
	JobOrderID    string
	JobTitle      string
}

type PayrollExportItem struct {
	TimesheetID   string
	CandidateID   string
	CandidateName string
	WorkDate      string
	HoursWorked   float64
	PayRate       float64
	Amount        float64
}

type ProjectionUsecase interface {
	DashboardCounts(ctx context.Context) DashboardCounts
	PendingApprovals(ctx context.Context) []PendingApprovalItem
	PayrollExport(ctx context.Context) []PayrollExportItem
}

// Projection recomputes every view from the store on each call. The dataset is
// small and staleness is never acceptable, so there is no caching here.
type Projection struct {
	store *store.Store
}

func NewProjectionUsecase(st *store.Store) *Projection {
	return &Projection{store: st}
}

func (p *Projection) DashboardCounts(ctx context.Context) DashboardCounts {
	var counts DashboardCounts
	for _, jo := range p.store.ListJobOrders() {
		if jo.Status == joborder.StatusOpen {
			counts.OpenJobOrders++
		}
	}
	counts.Assignments = len(p.store.ListAssignments())
	for _, ts := range p.store.ListTimesheets() {
		switch ts.Status {
		case timesheet.StatusSubmitted:
			counts.PendingTimesheets++
		case timesheet.StatusPayrollReady:
			counts.PayrollReady++
		}
	}
	return counts
}

func (p *Projection) PendingApprovals(ctx context.Context) []PendingApprovalItem {
	out := make([]PendingApprovalItem, 0)
	for _, ts := range p.store.ListTimesheets() {
		if ts.Status != timesheet.StatusSubmitted {
			continue
		}

		item := PendingApprovalItem{
			TimesheetID: ts.ID,
			WorkDate:    ts.WorkDate,
			HoursWorked: ts.HoursWorked,
			Description: ts.Description,
		}
		if a, err := p.store.AssignmentByID(ts.AssignmentID); err == nil {
			item.CandidateID = a.CandidateID
			item.JobOrderID = a.JobOrderID
			if cand, err := p.store.CandidateByID(a.CandidateID); err == nil {
				item.CandidateName = cand.FullName
			}
			if jo, err := p.store.JobOrderByID(a.JobOrderID); err == nil {
				item.JobTitle = jo.JobTitle
			}
		}
		out = append(out, item)
	}
	return out
}

func (p *Projection) PayrollExport(ctx context.Context) []PayrollExportItem {
	out := make([]PayrollExportItem, 0)
	for _, ts := range p.store.ListTimesheets() {
		if ts.Status != timesheet.StatusPayrollReady {
			continue
		}

		item := PayrollExportItem{
			TimesheetID: ts.ID,
			WorkDate:    ts.WorkDate,
			HoursWorked: ts.HoursWorked,
		}
		if a, err := p.store.AssignmentByID(ts.AssignmentID); err == nil {
			item.CandidateID = a.CandidateID
			if cand, err := p.store.CandidateByID(a.CandidateID); err == nil {
				item.CandidateName = cand.FullName
			}
			if jo, err := p.store.JobOrderByID(a.JobOrderID); err == nil {
				item.PayRate = jo.PayRate
				item.Amount = jo.PayRate * ts.HoursWorked
			}
		}
		out = append(out, item)
	}
	return out
}
