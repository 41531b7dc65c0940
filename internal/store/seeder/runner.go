package seeder

import (
	"context"
	"fmt"
	"log"

	"staff-flow/internal/store"
)

type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, st *store.Store) error {
	if st == nil {
		return fmt.Errorf("nil store")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, st); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("[Seed] done | seeder=%s", s.Name())
		}
	}
	return nil
}
