package audit

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Sink persists or forwards audit events.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Publisher buffers events on a channel and drains them on a background
// worker so audit delivery never back-pressures routing. Emit drops events
// when the buffer is full; drops are counted, not retried.
type Publisher struct {
	sink    Sink
	logger  *slog.Logger
	inbox   chan Event
	dropped atomic.Int64
}

const defaultBufferSize = 1024

func NewPublisher(sink Sink, logger *slog.Logger) *Publisher {
	return &Publisher{
		sink:   sink,
		logger: logger,
		inbox:  make(chan Event, defaultBufferSize),
	}
}

// Emit enqueues an event without blocking. A zero timestamp is stamped here.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	default:
		p.dropped.Add(1)
	}
	return nil
}

// Dropped reports how many events were discarded due to a full buffer.
func (p *Publisher) Dropped() int64 {
	return p.dropped.Load()
}

// Run drains the inbox into the sink until ctx is cancelled. Sink failures
// are logged and the event discarded.
func (p *Publisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-p.inbox:
			if err := p.sink.Append(ctx, event); err != nil {
				p.logger.Warn("failed to append audit event",
					"payment_id", event.PaymentID,
					"error", err.Error(),
				)
			}
		}
	}
}
