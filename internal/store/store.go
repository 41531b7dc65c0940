package store

import (
	"sync"

	"staff-flow/internal/domain/assignment"
	"staff-flow/internal/domain/candidate"
	"staff-flow/internal/domain/client"
	"staff-flow/internal/domain/joborder"
	"staff-flow/internal/domain/timesheet"
)

// Store holds every entity collection in process memory. Clients and candidates are
// seeded reference data; job orders, assignments and timesheets are mutated by the
// workflow usecases only. All access goes through the mutex because the HTTP layer
// serves concurrent requests against a single shared instance.
type Store struct {
	mu sync.RWMutex

	clients      []client.Client
	clientIdx    map[string]int
	candidates   []candidate.Candidate
	candidateIdx map[string]int

	jobOrders     []joborder.JobOrder
	jobOrderIdx   map[string]struct{}
	assignments   []assignment.JobAssignment
	assignmentIdx map[string]struct{}
	timesheets    []timesheet.Timesheet
	timesheetIdx  map[string]int
}

func New() *Store {
	return &Store{
		clientIdx:     make(map[string]int),
		candidateIdx:  make(map[string]int),
		jobOrderIdx:   make(map[string]struct{}),
		assignmentIdx: make(map[string]struct{}),
		timesheetIdx:  make(map[string]int),
	}
}

func (s *Store) AddClient(c client.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clientIdx[c.ID]; ok {
		return ErrDuplicateID
	}
	s.clientIdx[c.ID] = len(s.clients)
	s.clients = append(s.clients, c)
	return nil
}

func (s *Store) ClientByID(id string) (client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.clientIdx[id]
	if !ok {
		return client.Client{}, ErrNotFound
	}
	return s.clients[i], nil
}

func (s *Store) ListClients() []client.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]client.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Store) AddCandidate(c candidate.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidateIdx[c.ID]; ok {
		return ErrDuplicateID
	}
	s.candidateIdx[c.ID] = len(s.candidates)
	s.candidates = append(s.candidates, c)
	return nil
}

func (s *Store) CandidateByID(id string) (candidate.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.candidateIdx[id]
	if !ok {
		return candidate.Candidate{}, ErrNotFound
	}
	return s.candidates[i], nil
}

func (s *Store) ListCandidates() []candidate.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]candidate.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// InsertJobOrder prepends, so ListJobOrders returns newest first.
func (s *Store) InsertJobOrder(jo joborder.JobOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobOrderIdx[jo.ID]; ok {
		return ErrDuplicateID
	}
	s.jobOrderIdx[jo.ID] = struct{}{}
	s.jobOrders = append([]joborder.JobOrder{jo}, s.jobOrders...)
	return nil
}

func (s *Store) JobOrderByID(id string) (joborder.JobOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, jo := range s.jobOrders {
		if jo.ID == id {
			return jo, nil
		}
	}
	return joborder.JobOrder{}, ErrNotFound
}

func (s *Store) ListJobOrders() []joborder.JobOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]joborder.JobOrder, len(s.jobOrders))
	copy(out, s.jobOrders)
	return out
}

func (s *Store) InsertAssignment(a assignment.JobAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assignmentIdx[a.ID]; ok {
		return ErrDuplicateID
	}
	s.assignmentIdx[a.ID] = struct{}{}
	s.assignments = append(s.assignments, a)
	return nil
}

func (s *Store) AssignmentByID(id string) (assignment.JobAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return assignment.JobAssignment{}, ErrNotFound
}

// FindAssignmentByPair backs the one-assignment-per-(job,candidate) rule.
func (s *Store) FindAssignmentByPair(jobOrderID, candidateID string) (assignment.JobAssignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.assignments {
		if a.JobOrderID == jobOrderID && a.CandidateID == candidateID {
			return a, true
		}
	}
	return assignment.JobAssignment{}, false
}

func (s *Store) ListAssignments() []assignment.JobAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]assignment.JobAssignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

func (s *Store) InsertTimesheet(ts timesheet.Timesheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timesheetIdx[ts.ID]; ok {
		return ErrDuplicateID
	}
	s.timesheetIdx[ts.ID] = len(s.timesheets)
	s.timesheets = append(s.timesheets, ts)
	return nil
}

func (s *Store) TimesheetByID(id string) (timesheet.Timesheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.timesheetIdx[id]
	if !ok {
		return timesheet.Timesheet{}, ErrNotFound
	}
	return s.timesheets[i], nil
}

// UpdateTimesheet applies mutate to the stored timesheet under the write lock and
// returns the updated copy. The id itself cannot be rewritten.
func (s *Store) UpdateTimesheet(id string, mutate func(*timesheet.Timesheet)) (timesheet.Timesheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.timesheetIdx[id]
	if !ok {
		return timesheet.Timesheet{}, ErrNotFound
	}
	if mutate != nil {
		mutate(&s.timesheets[i])
		s.timesheets[i].ID = id
	}
	return s.timesheets[i], nil
}

func (s *Store) ListTimesheets() []timesheet.Timesheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]timesheet.Timesheet, len(s.timesheets))
	copy(out, s.timesheets)
	return out
}
