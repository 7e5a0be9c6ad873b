package service

import (
	"context"
	"sync"

	"fundtrack/internal/domain"

	"go.uber.org/zap"
)

type EventPublisher interface {
	Publish(e domain.AllocationUpdated)
}

type EventHandler func(ctx context.Context, e domain.AllocationUpdated) error

// AsyncPublisher delivers AllocationUpdated events to every subscribed
// handler on a single background goroutine, in publish order. Handlers run
// after the publishing transaction committed and must be idempotent.
type AsyncPublisher struct {
	events   chan domain.AllocationUpdated
	done     chan struct{}
	stopped  chan struct{}
	handlers []EventHandler
	logger   *zap.SugaredLogger
	once     sync.Once
	mu       sync.RWMutex
}

func NewAsyncPublisher(buffer int, logger *zap.SugaredLogger) *AsyncPublisher {
	if buffer < 0 {
		buffer = 0
	}
	return &AsyncPublisher{
		events:  make(chan domain.AllocationUpdated, buffer),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		logger:  logger,
	}
}

func (p *AsyncPublisher) Subscribe(h EventHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers = append(p.handlers, h)
}

// Publish blocks while the buffer is full. Events published after Close are dropped.
func (p *AsyncPublisher) Publish(e domain.AllocationUpdated) {
	select {
	case <-p.done:
		p.logger.Warnw("dropping event on closed publisher", "allocationID", e.AllocationID, "reason", e.Reason)
		return
	default:
	}
	select {
	case p.events <- e:
	case <-p.done:
	}
}

// Run consumes events until Close is called, then drains what is buffered.
func (p *AsyncPublisher) Run(ctx context.Context) {
	defer close(p.stopped)
	for {
		select {
		case e := <-p.events:
			p.dispatch(ctx, e)
		case <-p.done:
			for {
				select {
				case e := <-p.events:
					p.dispatch(ctx, e)
				default:
					return
				}
			}
		}
	}
}

func (p *AsyncPublisher) dispatch(ctx context.Context, e domain.AllocationUpdated) {
	p.mu.RLock()
	handlers := append([]EventHandler{}, p.handlers...)
	p.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, e); err != nil {
			p.logger.Errorw(
				"allocation event handler failed",
				"allocationID", e.AllocationID,
				"fundID", e.FundID,
				"reason", e.Reason,
				"error", err,
			)
		}
	}
}

// Close stops accepting events and waits for Run to drain the buffer. Run
// must have been started.
func (p *AsyncPublisher) Close() {
	p.once.Do(func() { close(p.done) })
	<-p.stopped
}

// SyncPublisher dispatches inline. Used by one-shot CLI runs.
type SyncPublisher struct {
	Handlers []EventHandler
	Logger   *zap.SugaredLogger
}

func (p SyncPublisher) Publish(e domain.AllocationUpdated) {
	for _, h := range p.Handlers {
		if err := h(context.Background(), e); err != nil && p.Logger != nil {
			p.Logger.Errorw("allocation event handler failed", "allocationID", e.AllocationID, "error", err)
		}
	}
}

type noopPublisher struct{}

func (noopPublisher) Publish(domain.AllocationUpdated) {}

// NoopPublisher discards every event.
var NoopPublisher EventPublisher = noopPublisher{}
