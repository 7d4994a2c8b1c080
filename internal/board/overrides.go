package board

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/order"
)

// OverrideKey addresses one cart item on one order.
type OverrideKey struct {
	OrderID uuid.UUID `json:"order_id"`
	ItemID  uuid.UUID `json:"item_id"`
}

// overrideFile is the on-disk shape: two arrays under distinct keys,
// one per override kind.
type overrideFile struct {
	ReadyItems     []OverrideKey `json:"ready_items"`
	DeliveredItems []OverrideKey `json:"delivered_items"`
}

// OverrideStore keeps the staff terminal's local status overrides: the
// items this terminal marked ready or delivered that the server may not
// reflect yet. It is per-terminal state, persisted to a JSON file so it
// survives a board restart; it is never shared between terminals.
type OverrideStore struct {
	mu        sync.Mutex
	path      string
	ready     map[OverrideKey]struct{}
	delivered map[OverrideKey]struct{}
}

// LoadOverrides opens the store at path, reading any persisted state.
// A missing file starts the store empty.
func LoadOverrides(path string) (*OverrideStore, error) {
	s := &OverrideStore{
		path:      path,
		ready:     make(map[OverrideKey]struct{}),
		delivered: make(map[OverrideKey]struct{}),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("cannot read override state: %w", err)
	}

	var f overrideFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("cannot decode override state: %w", err)
	}

	for _, k := range f.ReadyItems {
		s.ready[k] = struct{}{}
	}
	for _, k := range f.DeliveredItems {
		s.delivered[k] = struct{}{}
	}

	return s, nil
}

// MarkReady records a local ready override. Re-marking is a no-op.
func (s *OverrideStore) MarkReady(k OverrideKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ready[k]; ok {
		return nil
	}
	s.ready[k] = struct{}{}
	return s.persistLocked()
}

// MarkDelivered records a local delivered override. Re-marking is a no-op.
func (s *OverrideStore) MarkDelivered(k OverrideKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.delivered[k]; ok {
		return nil
	}
	s.delivered[k] = struct{}{}
	return s.persistLocked()
}

// StatusFor returns the override status for an item, if any.
// Delivered wins over ready when both sets contain the key.
func (s *OverrideStore) StatusFor(k OverrideKey) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.delivered[k]; ok {
		return order.StatusDelivered, true
	}
	if _, ok := s.ready[k]; ok {
		return order.StatusReady, true
	}
	return "", false
}

// Prune drops overrides the server has caught up with: an entry is
// removed once the server-reported status equals or passes it. This
// keeps the override sets from growing without bound.
func (s *OverrideStore) Prune(k OverrideKey, serverStatus string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rank := order.StatusRank(serverStatus)
	changed := false

	if _, ok := s.delivered[k]; ok && rank >= order.StatusRank(order.StatusDelivered) {
		delete(s.delivered, k)
		changed = true
	}
	if _, ok := s.ready[k]; ok && rank >= order.StatusRank(order.StatusReady) {
		delete(s.ready, k)
		changed = true
	}

	if !changed {
		return nil
	}
	return s.persistLocked()
}

// Reset clears both override sets. Calling it on an empty store is a
// no-op with the same result; staff use it to recover from local/server
// disagreement.
func (s *OverrideStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ready = make(map[OverrideKey]struct{})
	s.delivered = make(map[OverrideKey]struct{})
	return s.persistLocked()
}

// Len returns the number of recorded overrides across both sets.
func (s *OverrideStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ready) + len(s.delivered)
}

func (s *OverrideStore) persistLocked() error {
	f := overrideFile{
		ReadyItems:     make([]OverrideKey, 0, len(s.ready)),
		DeliveredItems: make([]OverrideKey, 0, len(s.delivered)),
	}
	for k := range s.ready {
		f.ReadyItems = append(f.ReadyItems, k)
	}
	for k := range s.delivered {
		f.DeliveredItems = append(f.DeliveredItems, k)
	}

	raw, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("cannot encode override state: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("cannot persist override state: %w", err)
	}
	return nil
}
