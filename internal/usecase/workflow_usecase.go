package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"staff-flow/internal/domain/assignment"
	"staff-flow/internal/domain/joborder"
	"staff-flow/internal/domain/timesheet"
	"staff-flow/internal/pkg/idgen"
	"staff-flow/internal/store"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrDuplicateAssignment = errors.New("candidate already assigned to this job")
	ErrNotFound            = errors.New("not found")
	ErrInternal            = errors.New("internal error")
)

type CreateJobOrderInput struct {
	ClientID       string
	JobTitle       string
	Location       string
	PayRate        float64
	StartDate      string
	EndDate        string
	RequiredSkills []string
}

type SubmitTimesheetInput struct {
	AssignmentID string
	WorkDate     string
	HoursWorked  float64
	Description  string
}

type WorkflowUsecase interface {
	CreateJobOrder(ctx context.Context, in CreateJobOrderInput) (joborder.JobOrder, error)
	AssignCandidate(ctx context.Context, jobOrderID, candidateID string) (assignment.JobAssignment, error)
	SubmitTimesheet(ctx context.Context, in SubmitTimesheetInput) (timesheet.Timesheet, error)
	DecideTimesheet(ctx context.Context, id string, approve bool) (timesheet.Timesheet, error)
}

type Workflow struct {
	store *store.Store
	now   func() time.Time
}

func NewWorkflowUsecase(st *store.Store) *Workflow {
	return &Workflow{store: st, now: func() time.Time { return time.Now().UTC() }}
}

// CreateJobOrder validates the required fields, then inserts a fresh OPEN job
// order at the head of the collection. Nothing is written on a validation failure.
func (u *Workflow) CreateJobOrder(ctx context.Context, in CreateJobOrderInput) (joborder.JobOrder, error) {
	if strings.TrimSpace(in.ClientID) == "" || strings.TrimSpace(in.JobTitle) == "" {
		return joborder.JobOrder{}, ErrInvalidInput
	}
	if in.PayRate < 0 {
		return joborder.JobOrder{}, ErrInvalidInput
	}

	jo := joborder.JobOrder{
		ID:             idgen.New(idgen.PrefixJobOrder),
		ClientID:       strings.TrimSpace(in.ClientID),
		JobTitle:       strings.TrimSpace(in.JobTitle),
		RequiredSkills: normalizeSkills(in.RequiredSkills),
		Location:       strings.TrimSpace(in.Location),
		PayRate:        in.PayRate,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		Status:         joborder.StatusOpen,
	}
	if err := u.store.InsertJobOrder(jo); err != nil {
		return joborder.JobOrder{}, ErrInternal
	}
	return jo, nil
}

// AssignCandidate enforces the one-assignment-per-(job, candidate) rule and
// rejects dangling references before appending an ACTIVE assignment.
func (u *Workflow) AssignCandidate(ctx context.Context, jobOrderID, candidateID string) (assignment.JobAssignment, error) {
	jobOrderID = strings.TrimSpace(jobOrderID)
	candidateID = strings.TrimSpace(candidateID)
	if jobOrderID == "" || candidateID == "" {
		return assignment.JobAssignment{}, ErrInvalidInput
	}

	if _, err := u.store.JobOrderByID(jobOrderID); err != nil {
		return assignment.JobAssignment{}, ErrNotFound
	}
	if _, err := u.store.CandidateByID(candidateID); err != nil {
		return assignment.JobAssignment{}, ErrNotFound
	}
	if _, exists := u.store.FindAssignmentByPair(jobOrderID, candidateID); exists {
		return assignment.JobAssignment{}, ErrDuplicateAssignment
	}

	a := assignment.JobAssignment{
		ID:           idgen.New(idgen.PrefixAssignment),
		JobOrderID:   jobOrderID,
		CandidateID:  candidateID,
		AssignedDate: u.now(),
		Status:       assignment.StatusActive,
	}
	if err := u.store.InsertAssignment(a); err != nil {
		return assignment.JobAssignment{}, ErrInternal
	}
	return a, nil
}

// SubmitTimesheet appends a SUBMITTED timesheet against an assignment.
func (u *Workflow) SubmitTimesheet(ctx context.Context, in SubmitTimesheetInput) (timesheet.Timesheet, error) {
	if strings.TrimSpace(in.AssignmentID) == "" {
		return timesheet.Timesheet{}, ErrInvalidInput
	}
	if in.HoursWorked <= 0 {
		return timesheet.Timesheet{}, ErrInvalidInput
	}

	ts := timesheet.Timesheet{
		ID:           idgen.New(idgen.PrefixTimesheet),
		AssignmentID: strings.TrimSpace(in.AssignmentID),
		WorkDate:     in.WorkDate,
		HoursWorked:  in.HoursWorked,
		Description:  in.Description,
		Status:       timesheet.StatusSubmitted,
	}
	if err := u.store.InsertTimesheet(ts); err != nil {
		return timesheet.Timesheet{}, ErrInternal
	}
	return ts, nil
}

// DecideTimesheet moves a timesheet to PAYROLL_READY or REJECTED. Re-deciding an
// already decided timesheet overwrites the status again; only the status changes.
func (u *Workflow) DecideTimesheet(ctx context.Context, id string, approve bool) (timesheet.Timesheet, error) {
	if strings.TrimSpace(id) == "" {
		return timesheet.Timesheet{}, ErrInvalidInput
	}

	next := timesheet.StatusRejected
	if approve {
		next = timesheet.StatusPayrollReady
	}

	updated, err := u.store.UpdateTimesheet(id, func(ts *timesheet.Timesheet) {
		ts.Status = next
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return timesheet.Timesheet{}, ErrNotFound
		}
		return timesheet.Timesheet{}, ErrInternal
	}
	return updated, nil
}

// SplitSkills turns the form's free-text skills field into a clean slice:
// comma separated, trimmed, empty entries dropped.
func SplitSkills(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
