package board

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/order"
)

// MockSource is a mock implementation of OrderSource for testing
type MockSource struct {
	mu     sync.Mutex
	orders []order.Order
	err    error
	Calls  int

	OrdersFunc func(ctx context.Context) ([]order.Order, error)
}

func NewMockSource(orders ...order.Order) *MockSource {
	return &MockSource{orders: orders}
}

func (m *MockSource) SetOrders(orders []order.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = orders
	m.err = nil
}

func (m *MockSource) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockSource) Orders(ctx context.Context) ([]order.Order, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.OrdersFunc != nil {
		return m.OrdersFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	// Return a deep copy so reconciliation never mutates the fixture.
	out := make([]order.Order, len(m.orders))
	copy(out, m.orders)
	for i := range out {
		cart := make([]order.CartItem, len(out[i].Cart))
		copy(cart, out[i].Cart)
		out[i].Cart = cart
	}
	return out, nil
}

// MockUpdater is a mock implementation of StatusUpdater for testing
type MockUpdater struct {
	mu sync.Mutex

	ReadinessCalls  int
	ItemStatusCalls int

	UpdateOrderReadinessFunc func(ctx context.Context, orderID uuid.UUID, isReady bool) bool
	UpdateItemStatusFunc     func(ctx context.Context, orderID, itemID uuid.UUID, status string) error
}

func (m *MockUpdater) UpdateOrderReadiness(ctx context.Context, orderID uuid.UUID, isReady bool) bool {
	m.mu.Lock()
	m.ReadinessCalls++
	m.mu.Unlock()
	if m.UpdateOrderReadinessFunc != nil {
		return m.UpdateOrderReadinessFunc(ctx, orderID, isReady)
	}
	return true
}

func (m *MockUpdater) UpdateItemStatus(ctx context.Context, orderID, itemID uuid.UUID, status string) error {
	m.mu.Lock()
	m.ItemStatusCalls++
	m.mu.Unlock()
	if m.UpdateItemStatusFunc != nil {
		return m.UpdateItemStatusFunc(ctx, orderID, itemID, status)
	}
	return nil
}

func confirmYes() bool { return true }

func confirmNo() bool { return false }
