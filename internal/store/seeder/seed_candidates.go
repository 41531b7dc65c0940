package seeder

import (
	"context"
	"errors"

	"staff-flow/internal/domain/candidate"
	"staff-flow/internal/store"
)

type CandidatesSeeder struct {
	Items []candidate.Candidate
}

func (CandidatesSeeder) Name() string { return "candidates" }

func (s CandidatesSeeder) Run(ctx context.Context, st *store.Store) error {
	items := s.Items
	if len(items) == 0 {
		items = defaultCandidates()
	}
	for _, it := range items {
		if err := st.AddCandidate(it); err != nil {
			if errors.Is(err, store.ErrDuplicateID) {
				continue
			}
			return err
		}
	}
	return nil
}

func defaultCandidates() []candidate.Candidate {
	return []candidate.Candidate{
		{ID: "CAN1", FullName: "Alice Johnson", Email: "alice@example.com", Skills: []string{"React", "Node.js", "TypeScript"}},
		{ID: "CAN2", FullName: "Bob Smith", Email: "bob@example.com", Skills: []string{"C#", "SQL Server", "ASP.NET Core"}},
		{ID: "CAN3", FullName: "Charlie Davis", Email: "charlie@example.com", Skills: []string{"Angular", "Java", "Spring Boot"}},
	}
}
