package notification

import (
	"context"
	"log"
	"time"

	"staff-flow/internal/pkg/idgen"
)

const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// DefaultTTL matches the UI's auto-dismiss interval.
const DefaultTTL = 4 * time.Second

type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps notifications until their TTL runs out.
type Store interface {
	Push(ctx context.Context, n Notification, ttl time.Duration) error
	List(ctx context.Context) ([]Notification, error)
}

// Center records operation outcomes for the notification surface. Failures to
// record are logged and swallowed: notifications are presentation, never a
// reason to fail the operation that produced them.
type Center struct {
	store  Store
	ttl    time.Duration
	logger *log.Logger
}

func NewCenter(store Store, ttl time.Duration, logger *log.Logger) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{store: store, ttl: ttl, logger: logger}
}

func (c *Center) Success(ctx context.Context, message string) {
	c.push(ctx, LevelSuccess, message)
}

func (c *Center) Error(ctx context.Context, message string) {
	c.push(ctx, LevelError, message)
}

func (c *Center) List(ctx context.Context) []Notification {
	if c == nil || c.store == nil {
		return nil
	}
	items, err := c.store.List(ctx)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[Notify] list failed | error=%v", err)
		}
		return nil
	}
	return items
}

func (c *Center) push(ctx context.Context, level, message string) {
	if c == nil || c.store == nil || message == "" {
		return
	}
	n := Notification{
		ID:        idgen.New(""),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.store.Push(ctx, n, c.ttl); err != nil && c.logger != nil {
		c.logger.Printf("[Notify] push failed | error=%v", err)
	}
}
