package event

import (
	"context"
	"time"
)

// OrderItemsTopic carries item status changes from the API server to
// any connected board. Boards treat these as hints between polls; the
// next poll remains the authoritative reload.
const OrderItemsTopic = "orders.items"

const (
	EventOrderCreated           = "order.created"
	EventOrderItemStatusChanged = "order.item.status_changed"
)

// OrderItemStatusEvent is published whenever an item's status is
// persisted, so boards can update without waiting for the next poll.
type OrderItemStatusEvent struct {
	EventType      string    `json:"event_type"`
	OccurredAt     time.Time `json:"occurred_at"`
	OrderID        string    `json:"order_id"`
	ItemID         string    `json:"item_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
}

type HandlerFunc func(ctx context.Context, msg []byte) error

type Publisher interface {
	Publish(ctx context.Context, topic string, msg []byte) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler HandlerFunc) error
}
