package board

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/order"
)

func TestNewPollerDefaultsInterval(t *testing.T) {
	p := NewPoller(newTestBoard(t, NewMockSource(), nil), 0, nil)
	if p.interval != DefaultPollInterval {
		t.Errorf("interval = %v, want %v", p.interval, DefaultPollInterval)
	}
}

func TestPollerRunPollsOnInterval(t *testing.T) {
	source := NewMockSource(singleItemOrder(order.StatusPending))
	b := newTestBoard(t, source, nil)
	p := NewPoller(b, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for {
		source.mu.Lock()
		calls := source.Calls
		source.mu.Unlock()
		if calls >= 3 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("poller made %d calls, want at least 3", calls)
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestPollerWakeTriggersImmediateRefresh(t *testing.T) {
	source := NewMockSource(singleItemOrder(order.StatusPending))
	b := newTestBoard(t, source, nil)
	p := NewPoller(b, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	// Wait for the initial refresh so the wake is unambiguous.
	waitForCalls(t, source, 1)

	p.Wake()
	waitForCalls(t, source, 2)

	cancel()
	<-done
}

func TestPollerWakesCoalesce(t *testing.T) {
	block := make(chan struct{})
	var mu sync.Mutex
	calls := 0

	source := NewMockSource()
	source.OrdersFunc = func(ctx context.Context) ([]order.Order, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-block
		}
		return nil, nil
	}

	b := newTestBoard(t, source, nil)
	p := NewPoller(b, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	// The initial refresh is blocked; every wake issued meanwhile must
	// collapse into a single follow-up refresh.
	time.Sleep(10 * time.Millisecond)
	for i := 0; i < 5; i++ {
		p.Wake()
	}
	close(block)

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		n := calls
		mu.Unlock()
		if n >= 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("follow-up refresh never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}

	// Give any extra coalesced wakes a chance to (incorrectly) fire.
	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	n := calls
	mu.Unlock()
	if n != 2 {
		t.Errorf("refresh calls = %d, want 2 (wakes must coalesce)", n)
	}

	cancel()
	<-done
}

func TestPollerFailedRefreshKeepsLoopAlive(t *testing.T) {
	source := NewMockSource()
	source.SetError(errors.New("service unavailable"))
	b := newTestBoard(t, source, nil)
	p := NewPoller(b, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	waitForCalls(t, source, 3)

	cancel()
	<-done
}

func waitForCalls(t *testing.T, source *MockSource, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		source.mu.Lock()
		calls := source.Calls
		source.mu.Unlock()
		if calls >= want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("source calls = %d, want at least %d", calls, want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}
