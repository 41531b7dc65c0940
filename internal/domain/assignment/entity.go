package assignment

import "time"

// StatusActive is the only status the current workflow produces. The field stays
// an open string so future statuses do not require a schema change.
const StatusActive = "ACTIVE"

type JobAssignment struct {
	ID           string
	JobOrderID   string
	CandidateID  string
	AssignedDate time.Time
	Status       string
}
