package board

import (
	"context"
	"time"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/logger"
)

// DefaultPollInterval is the fixed re-fetch cadence shared by all views.
const DefaultPollInterval = 4 * time.Second

// Poller drives a board's refresh loop: an initial fetch, a fixed
// interval, and on-demand wakes for focus regain or manual retry.
// Refreshes run one at a time on the loop goroutine, so overlapping
// polls cannot happen; wakes arriving mid-refresh coalesce into at most
// one follow-up. Cancelling the context stops the loop and discards any
// in-flight result.
type Poller struct {
	board    *Board
	interval time.Duration
	logger   logger.Logger
	wake     chan struct{}
}

func NewPoller(b *Board, interval time.Duration, log logger.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Poller{
		board:    b,
		interval: interval,
		logger:   log,
		wake:     make(chan struct{}, 1),
	}
}

// Wake requests an immediate refresh, superseding the pending interval
// tick. Multiple wakes before the loop gets to them collapse into one.
func (p *Poller) Wake() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Run polls until ctx is cancelled. A failed refresh leaves the error
// on the board snapshot and the loop alive; the next tick still fires.
func (p *Poller) Run(ctx context.Context) error {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.refresh(ctx)
		case <-p.wake:
			ticker.Reset(p.interval)
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := p.board.Refresh(ctx); err != nil {
		p.logger.Debug("refresh failed, will retry on next tick", "error", err)
	}
}
