package app

import (
	"context"
	"log"
	"os"
	"time"

	"staff-flow/internal/config"
	"staff-flow/internal/notification"
	"staff-flow/internal/store"
	"staff-flow/internal/store/seeder"
	"staff-flow/internal/usecase"
	"staff-flow/internal/ws"
)

type Container struct {
	Config     config.Config
	Logger     *log.Logger
	Store      *store.Store
	Hub        *ws.Hub
	Notify     *notification.Center
	Workflow   usecase.WorkflowUsecase
	Projection usecase.ProjectionUsecase

	redisStore *notification.RedisStore
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	st := store.New()

	seeders := seeder.Defaults()
	if cfg.Seed.File != "" {
		clientsSeeder, candidatesSeeder, err := seeder.LoadSeedFile(cfg.Seed.File)
		if err != nil {
			return nil, err
		}
		seeders = []seeder.Seeder{clientsSeeder, candidatesSeeder}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := (seeder.Runner{Seeders: seeders, Logger: logger}).Run(ctx, st); err != nil {
		return nil, err
	}

	var notifyStore notification.Store
	redisStore := notification.NewRedis(logger)
	if redisStore.Available() {
		notifyStore = redisStore
	} else {
		redisStore = nil
		notifyStore = notification.NewMemoryStore()
	}

	ttl := time.Duration(cfg.Workflow.NotifyTTLSeconds) * time.Second
	center := notification.NewCenter(notifyStore, ttl, logger)

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		Store:      st,
		Hub:        hub,
		Notify:     center,
		Workflow:   usecase.NewWorkflowUsecase(st),
		Projection: usecase.NewProjectionUsecase(st),
		redisStore: redisStore,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.redisStore == nil {
		return nil
	}
	return c.redisStore.Close()
}
