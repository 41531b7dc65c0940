package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// Collection names carried in change events.
const (
	CollectionJobOrders   = "job_orders"
	CollectionAssignments = "assignments"
	CollectionTimesheets  = "timesheets"
)

type StoreChangedEvent struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
	EntityID   string `json:"entity_id"`
	Timestamp  string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyStoreChanged broadcasts that a collection was mutated so subscribed
// rendering layers re-read their projections.
func NotifyStoreChanged(collection, entityID string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if collection == "" {
		return
	}

	evt := StoreChangedEvent{
		Type:       "store_changed",
		Collection: collection,
		EntityID:   entityID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
