package seeder

import (
	"context"

	"staff-flow/internal/store"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, st *store.Store) error
}
