// Package poller watches a server-side training job by re-fetching the model
// status on a fixed interval. Polling is an explicit task: Start returns a
// handle the owner must Stop on teardown, so no timer outlives its view.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/smartsales365/console/pkg/models"
)

// DefaultInterval is how often the status is re-fetched while a job runs.
const DefaultInterval = 3 * time.Second

// StatusFetcher fetches the current model status.
type StatusFetcher interface {
	ModelStatus(ctx context.Context) (*models.ModelStatus, error)
}

// Poller drives the Idle -> Polling -> Idle cycle for one training job.
// Zero backoff and no retry cap: a failed fetch is reported and retried on
// the next tick.
type Poller struct {
	fetch    StatusFetcher
	interval time.Duration
	onStatus func(*models.ModelStatus)
	onError  func(error)
	logger   *slog.Logger
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval overrides the polling interval.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) { p.interval = d }
}

// WithOnStatus registers a callback invoked with every fetched status,
// including the terminal one.
func WithOnStatus(fn func(*models.ModelStatus)) Option {
	return func(p *Poller) { p.onStatus = fn }
}

// WithOnError registers a callback for failed fetches. The poll loop keeps
// running after a failure.
func WithOnError(fn func(error)) Option {
	return func(p *Poller) { p.onError = fn }
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Poller) { p.logger = l }
}

// New creates a Poller around fetch.
func New(fetch StatusFetcher, opts ...Option) *Poller {
	p := &Poller{
		fetch:    fetch,
		interval: DefaultInterval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handle controls one running poll loop. Stop is idempotent and safe to call
// from any goroutine; Done closes once the loop has fully exited.
type Handle struct {
	id     uuid.UUID
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop tears the poll loop down. The owning view must call it on teardown so
// no further callbacks fire.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
}

// Done is closed when the loop has exited, whether by Stop, context
// cancellation or a terminal status.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// ID identifies this poll task in logs.
func (h *Handle) ID() uuid.UUID {
	return h.id
}

// Start transitions to Polling and returns the task handle. The loop exits
// when the fetched status reports no active job, when the model state comes
// back activo, or when ctx is cancelled.
func (p *Poller) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		id:     uuid.New(),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go p.run(ctx, h)
	return h
}

func (p *Poller) run(ctx context.Context, h *Handle) {
	defer close(h.done)
	defer h.cancel()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("poll loop cancelled", "poll_id", h.id)
			return
		case <-ticker.C:
		}

		status, err := p.fetch.ModelStatus(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Warn("status fetch failed, retrying next tick", "poll_id", h.id, "error", err)
			if p.onError != nil {
				p.onError(err)
			}
			continue
		}

		if p.onStatus != nil {
			p.onStatus(status)
		}

		if !status.TrainingInProgress() || status.Active() {
			p.logger.Info("training finished, polling stopped", "poll_id", h.id)
			return
		}
	}
}
