package order

import (
	"context"

	"github.com/google/uuid"
)

type Repo interface {
	Create(ctx context.Context, order *Order) error
	Get(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context) ([]*Order, error)

	// SetReadiness flips the order-level is_ready flag. The update is
	// field-scoped: only is_ready and updated_at are touched.
	SetReadiness(ctx context.Context, id uuid.UUID, isReady bool) error

	// SetItemStatus patches one cart item's status in place without
	// rewriting the rest of the order document.
	SetItemStatus(ctx context.Context, orderID, itemID uuid.UUID, status string) error
}
