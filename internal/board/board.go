package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/event"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/logger"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/order"
)

// ErrDeclined is returned when the staff confirmation prompt answers no.
var ErrDeclined = errors.New("action declined")

// ConfirmFunc gates a status-advancing or destructive staff action.
type ConfirmFunc func() bool

// Board holds one view's reconciled order state: the latest polled
// order list with this terminal's local overrides applied on top.
// The server stays the long-term source of truth for other viewers;
// the overrides are authoritative for what this terminal just did.
type Board struct {
	mu      sync.RWMutex
	source  OrderSource
	store   *OverrideStore
	updater StatusUpdater
	logger  logger.Logger

	orders   []order.Order
	lastErr  error
	lastSync time.Time
}

func New(source OrderSource, store *OverrideStore, updater StatusUpdater, log logger.Logger) *Board {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Board{
		source:  source,
		store:   store,
		updater: updater,
		logger:  log,
	}
}

// Refresh fetches the order list and reconciles it against the local
// overrides. On failure the previous snapshot is kept and the error is
// recorded so the view can show a retryable error state.
func (b *Board) Refresh(ctx context.Context) error {
	orders, err := b.source.Orders(ctx)
	if err != nil {
		b.logger.Error("poll failed", "error", err)
		b.mu.Lock()
		b.lastErr = err
		b.mu.Unlock()
		return err
	}

	reconciled := b.reconcile(orders)

	b.mu.Lock()
	b.orders = reconciled
	b.lastErr = nil
	b.lastSync = time.Now()
	b.mu.Unlock()

	return nil
}

// reconcile applies override precedence (delivered > ready > server)
// to every item and prunes overrides the server already reflects.
func (b *Board) reconcile(orders []order.Order) []order.Order {
	for oi := range orders {
		o := &orders[oi]
		for ii := range o.Cart {
			item := &o.Cart[ii]
			key := OverrideKey{OrderID: o.ID, ItemID: item.ID}

			override, ok := b.store.StatusFor(key)
			if !ok {
				continue
			}

			if order.StatusRank(item.Status) >= order.StatusRank(override) {
				// Server caught up; the override has served its purpose.
				if err := b.store.Prune(key, item.Status); err != nil {
					b.logger.Error("cannot prune override", "error", err)
				}
				continue
			}

			item.Status = override
		}
	}
	return orders
}

// Snapshot returns the current reconciled orders, the last poll error
// and the time of the last successful sync.
func (b *Board) Snapshot() ([]order.Order, error, time.Time) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]order.Order, len(b.orders))
	copy(out, b.orders)
	for i := range out {
		cart := make([]order.CartItem, len(out[i].Cart))
		copy(cart, out[i].Cart)
		out[i].Cart = cart
	}
	return out, b.lastErr, b.lastSync
}

// MarkItemStatus advances one item to ready or delivered after staff
// confirmation. The in-memory state and the local override are updated
// first; the server calls follow and their failure is reported but does
// not roll the local state back.
func (b *Board) MarkItemStatus(ctx context.Context, orderID, itemID uuid.UUID, status string, confirm ConfirmFunc) error {
	if status != order.StatusReady && status != order.StatusDelivered {
		return fmt.Errorf("staff can only mark items ready or delivered, not %q", status)
	}
	if confirm == nil || !confirm() {
		return ErrDeclined
	}

	key := OverrideKey{OrderID: orderID, ItemID: itemID}

	b.mu.Lock()
	item := b.findItemLocked(orderID, itemID)
	if item == nil {
		b.mu.Unlock()
		return fmt.Errorf("item %s not found on order %s", itemID, orderID)
	}
	if !order.CanAdvance(item.Status, status) {
		current := item.Status
		b.mu.Unlock()
		return fmt.Errorf("cannot move item from %q to %q", current, status)
	}
	item.Status = status
	b.mu.Unlock()

	var persistErr error
	switch status {
	case order.StatusReady:
		persistErr = b.store.MarkReady(key)
	case order.StatusDelivered:
		persistErr = b.store.MarkDelivered(key)
	}
	if persistErr != nil {
		b.logger.Error("cannot persist override", "error", persistErr)
	}

	// Server updates are best effort: the local override already
	// guarantees this terminal keeps showing the new status.
	if err := b.updater.UpdateItemStatus(ctx, orderID, itemID, status); err != nil {
		b.logger.Error("server rejected item status update", "error", err,
			"order_id", orderID.String(), "item_id", itemID.String())
	}
	if ok := b.updater.UpdateOrderReadiness(ctx, orderID, true); !ok {
		b.logger.Error("server readiness update failed", "order_id", orderID.String())
	}

	if err := b.Refresh(ctx); err != nil {
		b.logger.Debug("reconcile poll after status update failed", "error", err)
	}

	return nil
}

// Reset clears the local override sets after confirmation. Items revert
// to their server-reported status on the next poll.
func (b *Board) Reset(ctx context.Context, confirm ConfirmFunc) error {
	if confirm == nil || !confirm() {
		return ErrDeclined
	}

	if err := b.store.Reset(); err != nil {
		return err
	}

	b.logger.Info("local overrides cleared")

	if err := b.Refresh(ctx); err != nil {
		b.logger.Debug("reconcile poll after reset failed", "error", err)
	}
	return nil
}

// HandleEvent applies a pushed status change to the snapshot between
// polls. Only forward moves are applied; the next poll remains the
// authoritative reload.
func (b *Board) HandleEvent(ctx context.Context, msg []byte) error {
	var evt event.OrderItemStatusEvent
	if err := json.Unmarshal(msg, &evt); err != nil {
		b.logger.Error("cannot decode order item event", "error", err)
		return nil
	}
	if evt.EventType != event.EventOrderItemStatusChanged {
		return nil
	}

	orderID, err := uuid.Parse(evt.OrderID)
	if err != nil {
		return nil
	}
	itemID, err := uuid.Parse(evt.ItemID)
	if err != nil {
		return nil
	}

	b.mu.Lock()
	item := b.findItemLocked(orderID, itemID)
	if item != nil && order.CanAdvance(item.Status, evt.Status) {
		item.Status = evt.Status
	}
	b.mu.Unlock()

	key := OverrideKey{OrderID: orderID, ItemID: itemID}
	if err := b.store.Prune(key, evt.Status); err != nil {
		b.logger.Error("cannot prune override", "error", err)
	}

	return nil
}

// findItemLocked must be called with b.mu held.
func (b *Board) findItemLocked(orderID, itemID uuid.UUID) *order.CartItem {
	for oi := range b.orders {
		if b.orders[oi].ID != orderID {
			continue
		}
		return b.orders[oi].Item(itemID)
	}
	return nil
}
