package console

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/smartsales365/console/internal/api"
	"github.com/smartsales365/console/internal/poller"
	"github.com/smartsales365/console/internal/predictions"
	"github.com/smartsales365/console/pkg/models"
)

// listLimit caps how much persisted history is pulled into the working set.
const listLimit = 100

// Controller owns the predictions screen: it performs the API calls, feeds
// the resulting events through the reducer, and manages the status poll task
// tied to the screen's lifetime. Safe for concurrent use.
type Controller struct {
	api          api.Client
	exporter     *predictions.Exporter
	logger       *slog.Logger
	pollInterval time.Duration

	gen atomic.Uint64

	mu     sync.Mutex
	state  PredictionsState
	handle *poller.Handle
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithPollInterval overrides the training-status poll interval.
func WithPollInterval(d time.Duration) ControllerOption {
	return func(c *Controller) { c.pollInterval = d }
}

// WithControllerLogger overrides the default logger.
func WithControllerLogger(l *slog.Logger) ControllerOption {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a predictions screen controller.
func NewController(client api.Client, exporter *predictions.Exporter, opts ...ControllerOption) *Controller {
	c := &Controller{
		api:          client,
		exporter:     exporter,
		logger:       slog.Default(),
		pollInterval: poller.DefaultInterval,
		state:        NewPredictionsState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current screen state.
func (c *Controller) State() PredictionsState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) dispatch(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = ReducePredictions(c.state, e)
}

// RefreshStatus fetches the model status once.
func (c *Controller) RefreshStatus(ctx context.Context) error {
	status, err := c.api.ModelStatus(ctx)
	if err != nil {
		c.logger.Warn("model status fetch failed", "error", err)
		return err
	}
	c.dispatch(StatusLoaded{Status: status})
	return nil
}

// Train asks the backend to start a training run and begins polling for its
// completion. The poll task is torn down by Close, a newer Train call, or
// the job reaching a terminal state.
func (c *Controller) Train(ctx context.Context) error {
	c.dispatch(TrainRequested{})
	if err := c.api.TrainModel(ctx); err != nil {
		c.dispatch(TrainFailed{Err: err})
		return err
	}
	c.startPolling(ctx)
	return nil
}

func (c *Controller) startPolling(ctx context.Context) {
	p := poller.New(c.api,
		poller.WithInterval(c.pollInterval),
		poller.WithLogger(c.logger),
		poller.WithOnStatus(func(st *models.ModelStatus) {
			c.dispatch(StatusLoaded{Status: st})
		}),
	)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle != nil {
		c.handle.Stop()
	}
	c.handle = p.Start(ctx)
}

// PollDone exposes the running poll task's completion channel, or nil when
// no poll is active.
func (c *Controller) PollDone() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle == nil {
		return nil
	}
	return c.handle.Done()
}

// Generate requests a fresh prediction batch. Overlapping calls are safe:
// each request carries a generation tag and the reducer drops responses that
// were superseded by a newer request.
func (c *Controller) Generate(ctx context.Context, params GenerationParams) error {
	gen := c.gen.Add(1)
	c.dispatch(GenerateRequested{Generation: gen, Params: params})

	result, err := c.api.GeneratePredictions(ctx, api.GeneratePredictionsRequest{
		Periodo:     params.Periodo,
		MonthsAhead: params.MonthsAhead,
		CategoryID:  params.CategoryID,
		Save:        true,
	})
	if err != nil {
		c.dispatch(GenerateFailed{Generation: gen, Err: err})
		return err
	}
	c.dispatch(GenerateSucceeded{Generation: gen, Result: *result})

	// Pull the persisted history back in so the working set is complete.
	if err := c.LoadExisting(ctx); err != nil {
		c.logger.Warn("reloading persisted predictions failed", "error", err)
	}
	return nil
}

// LoadExisting fetches the persisted prediction list and merges it with the
// recent batch.
func (c *Controller) LoadExisting(ctx context.Context) error {
	list, err := c.api.ListPredictions(ctx, listLimit)
	if err != nil {
		return err
	}
	c.dispatch(PredictionsLoaded{Predictions: list})
	return nil
}

// LoadHistory fetches the aggregated monthly sales history for the chart.
func (c *Controller) LoadHistory(ctx context.Context) error {
	points, err := c.api.SalesHistory(ctx, "mes", 12)
	if err != nil {
		c.logger.Warn("sales history fetch failed", "error", err)
		c.dispatch(HistoryLoaded{Points: nil})
		return err
	}
	c.dispatch(HistoryLoaded{Points: points})
	return nil
}

// LoadCategories fetches the category filter options.
func (c *Controller) LoadCategories(ctx context.Context) error {
	cats, err := c.api.ListCategories(ctx)
	if err != nil {
		c.logger.Warn("categories fetch failed", "error", err)
		return err
	}
	c.dispatch(CategoriesLoaded{Categories: cats})
	return nil
}

// Export downloads a prediction report for the current working set and
// returns the saved path.
func (c *Controller) Export(ctx context.Context, format, scope string) (string, error) {
	c.mu.Lock()
	req := predictions.ExportRequest{
		Format:     format,
		Scope:      scope,
		Recent:     c.state.Recent,
		All:        c.state.Predictions,
		CategoryID: c.state.Params.CategoryID,
	}
	c.mu.Unlock()

	c.dispatch(ExportStarted{})
	path, err := c.exporter.Export(ctx, req)
	c.dispatch(ExportFinished{Err: err})
	return path, err
}

// Close stops the poll task, if any. Must be called when the screen goes
// away so no timer keeps firing against discarded state.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle != nil {
		c.handle.Stop()
		c.handle = nil
	}
}
