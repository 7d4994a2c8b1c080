package board

import (
	"context"
	"fmt"

	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/event"
	"github.com/MuammarRizal/Restaurant-web-app-v2/internal/logger"
)

// StatusSubscriber feeds pushed item status changes into a board, so
// other terminals' actions show up without waiting for the next poll.
type StatusSubscriber struct {
	subscriber event.Subscriber
	board      *Board
	logger     logger.Logger
}

func NewStatusSubscriber(sub event.Subscriber, b *Board, log logger.Logger) *StatusSubscriber {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &StatusSubscriber{
		subscriber: sub,
		board:      b,
		logger:     log,
	}
}

func (s *StatusSubscriber) Start(ctx context.Context) error {
	if err := s.subscriber.Subscribe(ctx, event.OrderItemsTopic, s.board.HandleEvent); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", event.OrderItemsTopic, err)
	}

	s.logger.Info("subscribed to order item events", "topic", event.OrderItemsTopic)
	return nil
}
