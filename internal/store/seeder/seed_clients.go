package seeder

import (
	"context"
	"errors"

	"staff-flow/internal/domain/client"
	"staff-flow/internal/store"
)

type ClientsSeeder struct {
	Items []client.Client
}

func (ClientsSeeder) Name() string { return "clients" }

func (s ClientsSeeder) Run(ctx context.Context, st *store.Store) error {
	items := s.Items
	if len(items) == 0 {
		items = defaultClients()
	}
	for _, it := range items {
		if err := st.AddClient(it); err != nil {
			if errors.Is(err, store.ErrDuplicateID) {
				continue
			}
			return err
		}
	}
	return nil
}

func defaultClients() []client.Client {
	return []client.Client{
		{ID: "C1", Name: "TechCorp Global", Industry: "Software"},
		{ID: "C2", Name: "HealthNet Systems", Industry: "Healthcare"},
		{ID: "C3", Name: "BuildRight Inc", Industry: "Construction"},
	}
}
