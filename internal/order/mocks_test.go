package order

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/api"
)

// MockRepo is a mock implementation of Repo for testing
type MockRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]*Order

	CreateFunc        func(ctx context.Context, o *Order) error
	GetFunc           func(ctx context.Context, id uuid.UUID) (*Order, error)
	ListFunc          func(ctx context.Context) ([]*Order, error)
	SetReadinessFunc  func(ctx context.Context, id uuid.UUID, isReady bool) error
	SetItemStatusFunc func(ctx context.Context, orderID, itemID uuid.UUID, status string) error

	SetReadinessCalls  int
	SetItemStatusCalls int
}

func NewMockRepo() *MockRepo {
	return &MockRepo{
		orders: make(map[uuid.UUID]*Order),
	}
}

func (m *MockRepo) Create(ctx context.Context, o *Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
	return nil
}

func (m *MockRepo) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return o, nil
}

func (m *MockRepo) List(ctx context.Context) ([]*Order, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*Order
	for _, o := range m.orders {
		result = append(result, o)
	}
	return result, nil
}

func (m *MockRepo) SetReadiness(ctx context.Context, id uuid.UUID, isReady bool) error {
	m.mu.Lock()
	m.SetReadinessCalls++
	m.mu.Unlock()
	if m.SetReadinessFunc != nil {
		return m.SetReadinessFunc(ctx, id, isReady)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return api.ErrNotFound
	}
	o.IsReady = isReady
	return nil
}

func (m *MockRepo) SetItemStatus(ctx context.Context, orderID, itemID uuid.UUID, status string) error {
	m.mu.Lock()
	m.SetItemStatusCalls++
	m.mu.Unlock()
	if m.SetItemStatusFunc != nil {
		return m.SetItemStatusFunc(ctx, orderID, itemID, status)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return api.ErrNotFound
	}
	item := o.Item(itemID)
	if item == nil {
		return api.ErrNotFound
	}
	item.Status = status
	return nil
}

// MockPublisher is a mock implementation of event.Publisher for testing
type MockPublisher struct {
	mu        sync.Mutex
	Published []string

	PublishFunc func(ctx context.Context, topic string, msg []byte) error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	m.mu.Lock()
	m.Published = append(m.Published, topic)
	m.mu.Unlock()
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, msg)
	}
	return nil
}

// MockSubmitter is a mock implementation of Submitter for testing
type MockSubmitter struct {
	CreateOrderFunc func(ctx context.Context, cart []CartItem, user User) (uuid.UUID, error)
	Calls           int
}

func (m *MockSubmitter) CreateOrder(ctx context.Context, cart []CartItem, user User) (uuid.UUID, error) {
	m.Calls++
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, cart, user)
	}
	return uuid.New(), nil
}
