package board

import (
	"context"

	"github.com/google/uuid"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/order"
)

// OrderSource produces the current full order list. The HTTP client is
// the production implementation; keeping it behind an interface means a
// push-based source can replace polling without touching reconciliation
// or grouping.
type OrderSource interface {
	Orders(ctx context.Context) ([]order.Order, error)
}

// StatusUpdater persists staff status actions back to the server.
type StatusUpdater interface {
	// UpdateOrderReadiness is fire-and-forget from the board's point of
	// view: it reports success but the board does not roll back local
	// state when it fails.
	UpdateOrderReadiness(ctx context.Context, orderID uuid.UUID, isReady bool) bool

	UpdateItemStatus(ctx context.Context, orderID, itemID uuid.UUID, status string) error
}
