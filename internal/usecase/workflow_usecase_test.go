package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"staff-flow/internal/domain/candidate"
	"staff-flow/internal/domain/client"
	"staff-flow/internal/domain/joborder"
	"staff-flow/internal/domain/timesheet"
	"staff-flow/internal/store"
)

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	if err := st.AddClient(client.Client{ID: "C1", Name: "TechCorp Global", Industry: "Software"}); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	if err := st.AddCandidate(candidate.Candidate{ID: "CAN1", FullName: "Alice Johnson", Email: "alice@example.com"}); err != nil {
		t.Fatalf("seed candidate: %v", err)
	}
	return st
}

func TestWorkflowUsecase_CreateJobOrder_MissingRequiredFields(t *testing.T) {
	st := newSeededStore(t)
	uc := NewWorkflowUsecase(st)

	cases := []CreateJobOrderInput{
		{ClientID: "", JobTitle: "Backend Engineer"},
		{ClientID: "C1", JobTitle: ""},
		{ClientID: "   ", JobTitle: "Backend Engineer"},
	}
	for _, in := range cases {
		if _, err := uc.CreateJobOrder(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	}
	if n := len(st.ListJobOrders()); n != 0 {
		t.Fatalf("store mutated on validation failure: %d job orders", n)
	}
}

func TestWorkflowUsecase_CreateJobOrder_Success(t *testing.T) {
	st := newSeededStore(t)
	uc := NewWorkflowUsecase(st)

	jo, err := uc.CreateJobOrder(context.Background(), CreateJobOrderInput{
		ClientID:       "C1",
		JobTitle:       "Backend Engineer",
		PayRate:        75,
		RequiredSkills: []string{"Go", "SQL"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if jo.ID == "" || !strings.HasPrefix(jo.ID, "JO-") {
		t.Fatalf("unexpected id %q", jo.ID)
	}
	if jo.Status != joborder.StatusOpen {
		t.Fatalf("expected OPEN, got %s", jo.Status)
	}
	if len(jo.RequiredSkills) != 2 || jo.RequiredSkills[0] != "Go" || jo.RequiredSkills[1] != "SQL" {
		t.Fatalf("unexpected skills %v", jo.RequiredSkills)
	}
}

func TestWorkflowUsecase_CreateJobOrder_NewestFirst(t *testing.T) {
	st := newSeededStore(t)
	uc := NewWorkflowUsecase(st)

	first, err := uc.CreateJobOrder(context.Background(), CreateJobOrderInput{ClientID: "C1", JobTitle: "First"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.CreateJobOrder(context.Background(), CreateJobOrderInput{ClientID: "C1", JobTitle: "Second"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("ids must be unique")
	}

	list := st.ListJobOrders()
	if len(list) != 2 {
		t.Fatalf("expected 2 job orders, got %d", len(list))
	}
	if list[0].ID != second.ID {
		t.Fatalf("expected newest first, got %s", list[0].ID)
	}
}

func TestWorkflowUsecase_CreateJobOrder_SkillsNormalized(t *testing.T) {
	st := newSeededStore(t)
	uc := NewWorkflowUsecase(st)

	jo, err := uc.CreateJobOrder(context.Background(), CreateJobOrderInput{
		ClientID:       "C1",
		JobTitle:       "Backend Engineer",
		RequiredSkills: []string{" Go ", "", "  ", "SQL"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jo.RequiredSkills) != 2 || jo.RequiredSkills[0] != "Go" || jo.RequiredSkills[1] != "SQL" {
		t.Fatalf("unexpected skills %v", jo.RequiredSkills)
	}
}

func TestWorkflowUsecase_AssignCandidate_DuplicatePair(t *testing.T) {
	st := newSeededStore(t)
	uc := NewWorkflowUsecase(st)

	jo, err := uc.CreateJobOrder(context.Background(), CreateJobOrderInput{ClientID: "C1", JobTitle: "Backend Engineer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	a, err := uc.AssignCandidate(context.Background(), jo.ID, "CAN1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != "ACTIVE" {
		t.Fatalf("expected ACTIVE, got %s", a.Status)
	}
	if a.AssignedDate.IsZero() {
		t.Fatalf("assigned date not set")
	}

	if _, err := uc.AssignCandidate(context.Background(), jo.ID, "CAN1"); !errors.Is(err, ErrDuplicateAssignment) {
		t.Fatalf("expected ErrDuplicateAssignment, got %v", err)
	}
	if n := len(st.ListAssignments()); n != 1 {
		t.Fatalf("expected 1 assignment, got %d", n)
	}
}

func TestWorkflowUsecase_AssignCandidate_UnknownReferences(t *testing.T) {
	st := newSeededStore(t)
	uc := NewWorkflowUsecase(st)

	jo, err := uc.CreateJobOrder(context.Background(), CreateJobOrderInput{ClientID: "C1", JobTitle: "Backend Engineer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.AssignCandidate(context.Background(), "JO-missing", "CAN1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown job order, got %v", err)
	}
	if _, err := uc.AssignCandidate(context.Background(), jo.ID, "CAN-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown candidate, got %v", err)
	}
	if n := len(st.ListAssignments()); n != 0 {
		t.Fatalf("store mutated on failure: %d assignments", n)
	}
}

func TestWorkflowUsecase_SubmitTimesheet(t *testing.T) {
	st := newSeededStore(t)
	uc := NewWorkflowUsecase(st)

	if _, err := uc.SubmitTimesheet(context.Background(), SubmitTimesheetInput{AssignmentID: "", HoursWorked: 8}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing assignment, got %v", err)
	}
	if _, err := uc.SubmitTimesheet(context.Background(), SubmitTimesheetInput{AssignmentID: "AS-1", HoursWorked: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero hours, got %v", err)
	}

	ts, err := uc.SubmitTimesheet(context.Background(), SubmitTimesheetInput{
		AssignmentID: "AS-1",
		WorkDate:     "2026-08-31",
		HoursWorked:  8,
		Description:  "API integration work",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ts.Status != timesheet.StatusSubmitted {
		t.Fatalf("expected SUBMITTED, got %s", ts.Status)
	}
	if !strings.HasPrefix(ts.ID, "TS-") {
		t.Fatalf("unexpected id %q", ts.ID)
	}
}

func TestWorkflowUsecase_DecideTimesheet(t *testing.T) {
	st := newSeededStore(t)
	uc := NewWorkflowUsecase(st)

	ts, err := uc.SubmitTimesheet(context.Background(), SubmitTimesheetInput{
		AssignmentID: "AS-1",
		WorkDate:     "2026-08-31",
		HoursWorked:  7.5,
		Description:  "migration scripts",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	approved, err := uc.DecideTimesheet(context.Background(), ts.ID, true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if approved.Status != timesheet.StatusPayrollReady {
		t.Fatalf("expected PAYROLL_READY, got %s", approved.Status)
	}
	if approved.ID != ts.ID || approved.AssignmentID != ts.AssignmentID ||
		approved.WorkDate != ts.WorkDate || approved.HoursWorked != ts.HoursWorked ||
		approved.Description != ts.Description {
		t.Fatalf("fields other than status changed: %+v", approved)
	}

	// Re-deciding overwrites the terminal status again.
	rejected, err := uc.DecideTimesheet(context.Background(), ts.ID, false)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rejected.Status != timesheet.StatusRejected {
		t.Fatalf("expected REJECTED, got %s", rejected.Status)
	}
}

func TestWorkflowUsecase_DecideTimesheet_UnknownID(t *testing.T) {
	st := newSeededStore(t)
	uc := NewWorkflowUsecase(st)

	if _, err := uc.DecideTimesheet(context.Background(), "TS-999", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSplitSkills(t *testing.T) {
	got := SplitSkills(" Go , , SQL,TypeScript ,")
	want := []string{"Go", "SQL", "TypeScript"}
	if len(got) != len(want) {
		t.Fatalf("expected %d skills, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if SplitSkills("") != nil {
		t.Fatalf("expected nil for empty input")
	}
}
