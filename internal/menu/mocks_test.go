package menu

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MockRepo is a mock implementation of Repo for testing
type MockRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*MenuItem

	CreateFunc     func(ctx context.Context, item *MenuItem) error
	GetFunc        func(ctx context.Context, id uuid.UUID) (*MenuItem, error)
	ListFunc       func(ctx context.Context) ([]*MenuItem, error)
	FindByNameFunc func(ctx context.Context, name string) (*MenuItem, error)
	SaveFunc       func(ctx context.Context, item *MenuItem) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func NewMockRepo() *MockRepo {
	return &MockRepo{
		items: make(map[uuid.UUID]*MenuItem),
	}
}

func (m *MockRepo) Create(ctx context.Context, item *MenuItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
	return nil
}

func (m *MockRepo) Get(ctx context.Context, id uuid.UUID) (*MenuItem, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return item, nil
}

func (m *MockRepo) List(ctx context.Context) ([]*MenuItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*MenuItem
	for _, item := range m.items {
		result = append(result, item)
	}
	return result, nil
}

func (m *MockRepo) FindByName(ctx context.Context, name string) (*MenuItem, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.items {
		if item.Name == name {
			return item, nil
		}
	}
	return nil, nil
}

func (m *MockRepo) Save(ctx context.Context, item *MenuItem) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
	return nil
}

func (m *MockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}
