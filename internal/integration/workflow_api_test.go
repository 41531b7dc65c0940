package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staff-flow/internal/delivery/http/middleware"
	"staff-flow/internal/delivery/http/routes"
	"staff-flow/internal/notification"
	"staff-flow/internal/store"
	"staff-flow/internal/store/seeder"
	"staff-flow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	st := store.New()
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(context.Background(), st); err != nil {
		t.Fatalf("seed: %v", err)
	}

	f := fiber.New(fiber.Config{})
	f.Use(middleware.NewErrorMiddleware().Middleware())

	routes.Register(f, routes.Deps{
		Store:      st,
		Workflow:   usecase.NewWorkflowUsecase(st),
		Projection: usecase.NewProjectionUsecase(st),
		Notify:     notification.NewCenter(notification.NewMemoryStore(), time.Minute, nil),
	})

	return f
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, json.RawMessage) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var envelope semanticResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v (%s)", err, raw)
	}
	return resp.StatusCode, envelope.Data
}

func TestIntegration_FullWorkflow(t *testing.T) {
	app := newTestApp(t)

	status, data := doJSON(t, app, http.MethodGet, "/api/v1/clients", nil)
	if status != http.StatusOK {
		t.Fatalf("list clients: status %d", status)
	}
	var clients []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &clients); err != nil {
		t.Fatalf("unmarshal clients: %v", err)
	}
	if len(clients) != 3 {
		t.Fatalf("expected 3 seeded clients, got %d", len(clients))
	}

	status, data = doJSON(t, app, http.MethodPost, "/api/v1/job-orders", map[string]any{
		"client_id": "C1",
		"job_title": "Backend Engineer",
		"location":  "Austin, TX",
		"pay_rate":  75,
		"skills":    "Go, SQL",
	})
	if status != http.StatusCreated {
		t.Fatalf("create job order: status %d", status)
	}
	var jo struct {
		ID         string   `json:"id"`
		ClientName string   `json:"client_name"`
		Skills     []string `json:"required_skills"`
		Status     string   `json:"status"`
	}
	if err := json.Unmarshal(data, &jo); err != nil {
		t.Fatalf("unmarshal job order: %v", err)
	}
	if jo.Status != "OPEN" || jo.ClientName != "TechCorp Global" || len(jo.Skills) != 2 {
		t.Fatalf("unexpected job order %+v", jo)
	}

	status, data = doJSON(t, app, http.MethodPost, "/api/v1/assignments", map[string]any{
		"job_order_id": jo.ID,
		"candidate_id": "CAN1",
	})
	if status != http.StatusCreated {
		t.Fatalf("assign candidate: status %d", status)
	}
	var a struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &a); err != nil {
		t.Fatalf("unmarshal assignment: %v", err)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/assignments", map[string]any{
		"job_order_id": jo.ID,
		"candidate_id": "CAN1",
	})
	if status != http.StatusConflict {
		t.Fatalf("duplicate assignment: status %d", status)
	}

	status, data = doJSON(t, app, http.MethodPost, "/api/v1/timesheets", map[string]any{
		"assignment_id": a.ID,
		"work_date":     "2026-08-31",
		"hours_worked":  8,
		"description":   "sprint work",
	})
	if status != http.StatusCreated {
		t.Fatalf("submit timesheet: status %d", status)
	}
	var ts struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &ts); err != nil {
		t.Fatalf("unmarshal timesheet: %v", err)
	}
	if ts.Status != "SUBMITTED" {
		t.Fatalf("expected SUBMITTED, got %s", ts.Status)
	}

	status, data = doJSON(t, app, http.MethodPost, "/api/v1/timesheets/"+ts.ID+"/decision", map[string]any{
		"approve": true,
	})
	if status != http.StatusOK {
		t.Fatalf("decide timesheet: status %d", status)
	}
	var decided struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &decided); err != nil {
		t.Fatalf("unmarshal decision: %v", err)
	}
	if decided.Status != "PAYROLL_READY" {
		t.Fatalf("expected PAYROLL_READY, got %s", decided.Status)
	}

	status, data = doJSON(t, app, http.MethodGet, "/api/v1/dashboard", nil)
	if status != http.StatusOK {
		t.Fatalf("dashboard: status %d", status)
	}
	var counts struct {
		OpenJobOrders     int `json:"open_job_orders"`
		Assignments       int `json:"assignments"`
		PendingTimesheets int `json:"pending_timesheets"`
		PayrollReady      int `json:"payroll_ready"`
	}
	if err := json.Unmarshal(data, &counts); err != nil {
		t.Fatalf("unmarshal dashboard: %v", err)
	}
	if counts.OpenJobOrders != 1 || counts.Assignments != 1 || counts.PendingTimesheets != 0 || counts.PayrollReady != 1 {
		t.Fatalf("unexpected counts %+v", counts)
	}

	status, data = doJSON(t, app, http.MethodGet, "/api/v1/payroll/export", nil)
	if status != http.StatusOK {
		t.Fatalf("payroll export: status %d", status)
	}
	var export []struct {
		TimesheetID   string  `json:"timesheet_id"`
		CandidateID   string  `json:"candidate_id"`
		CandidateName string  `json:"candidate_name"`
		Amount        float64 `json:"amount"`
	}
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if len(export) != 1 || export[0].TimesheetID != ts.ID || export[0].CandidateID != "CAN1" || export[0].Amount != 600 {
		t.Fatalf("unexpected export %+v", export)
	}

	status, data = doJSON(t, app, http.MethodGet, "/api/v1/notifications", nil)
	if status != http.StatusOK {
		t.Fatalf("notifications: status %d", status)
	}
	var notifications []struct {
		Level   string `json:"level"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &notifications); err != nil {
		t.Fatalf("unmarshal notifications: %v", err)
	}
	if len(notifications) == 0 {
		t.Fatalf("expected operation outcomes to be recorded")
	}
}

func TestIntegration_ValidationAndNotFound(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/v1/job-orders", map[string]any{
		"client_id": "",
		"job_title": "Backend Engineer",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}

	status, data := doJSON(t, app, http.MethodGet, "/api/v1/job-orders", nil)
	if status != http.StatusOK {
		t.Fatalf("list job orders: status %d", status)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("store mutated by rejected create: %d rows", len(list))
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/v1/timesheets/TS-999/decision", map[string]any{
		"approve": true,
	})
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}
