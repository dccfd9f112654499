// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/ports"
)

// ControllerOption configures a CatalogController.
type ControllerOption func(*CatalogController)

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *CatalogController) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers fn to receive every state transition, in order.
// Observers run outside the state lock, one transition at a time.
func WithObserver(fn func(State)) ControllerOption {
	return func(c *CatalogController) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// CatalogController owns the catalog view state. It starts a fetch on creation
// and on every Retry. When fetches overlap, the most recently dispatched one
// wins: starting a fetch cancels the previous one and stale results are dropped.
type CatalogController struct {
	repo      ports.RecordRepository
	logger    *slog.Logger
	observers []func(State)

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	state       State
	generation  uint64
	cancelFetch context.CancelFunc
	busy        bool
	idle        chan struct{}
	closed      bool

	// pending transitions not yet delivered; notifying is set while one
	// goroutine drains them so observers see transitions in order.
	pending   []State
	notifying bool
}

// NewCatalogController creates a controller in the Loading state and dispatches
// the first fetch. Cancelling ctx has the same effect as Close.
func NewCatalogController(ctx context.Context, repo ports.RecordRepository, opts ...ControllerOption) *CatalogController {
	ctx, cancel := context.WithCancel(ctx)

	c := &CatalogController{
		repo:   repo,
		logger: slog.Default(),
		ctx:    ctx,
		cancel: cancel,
		state:  LoadingState(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.dispatch()
	return c
}

// State returns the current snapshot.
func (c *CatalogController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Retry moves to Loading and dispatches a new fetch. It is valid from any
// state and is a no-op once the controller is closed.
func (c *CatalogController) Retry() {
	c.dispatch()
}

// Wait blocks until no fetch is in flight and returns the resulting state.
func (c *CatalogController) Wait(ctx context.Context) (State, error) {
	c.mu.Lock()
	idle := c.idle
	c.mu.Unlock()

	if idle != nil {
		select {
		case <-idle:
		case <-ctx.Done():
			return c.State(), ctx.Err()
		}
	}
	return c.State(), nil
}

// Close cancels any in-flight fetch and drops its result. Safe to call more than once.
func (c *CatalogController) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.cancelFetch != nil {
		c.cancelFetch()
		c.cancelFetch = nil
	}
	if c.busy {
		c.busy = false
		close(c.idle)
	}
	c.mu.Unlock()

	c.cancel()
}

func (c *CatalogController) dispatch() {
	c.mu.Lock()
	if c.closed || c.ctx.Err() != nil {
		c.mu.Unlock()
		return
	}

	if c.cancelFetch != nil {
		c.cancelFetch()
	}
	c.generation++
	gen := c.generation

	fetchCtx, cancel := context.WithCancel(c.ctx)
	c.cancelFetch = cancel

	// A superseded fetch keeps the same idle channel so Wait follows the latest one.
	if !c.busy {
		c.busy = true
		c.idle = make(chan struct{})
	}

	fetchID := uuid.NewString()
	c.logger.Debug("Dispatching fetch", "fetch_id", fetchID, "generation", gen)

	c.transitionLocked(LoadingState())

	go c.fetch(fetchCtx, gen, fetchID)
}

func (c *CatalogController) fetch(ctx context.Context, gen uint64, fetchID string) {
	records, err := c.repo.GetRecords(ctx)

	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		c.logger.Debug("Dropping superseded fetch result", "fetch_id", fetchID, "generation", gen)
		return
	}
	if c.ctx.Err() != nil {
		// Torn down through the parent context: release waiters, keep the state.
		c.busy = false
		close(c.idle)
		c.mu.Unlock()
		c.logger.Debug("Dropping fetch result after teardown", "fetch_id", fetchID, "generation", gen)
		return
	}

	c.cancelFetch()
	c.cancelFetch = nil
	c.busy = false
	close(c.idle)

	var next State
	if err != nil {
		c.logger.Warn("Fetch failed", "fetch_id", fetchID, "kind", ports.ErrorKind(err), "error", err)
		next = ErrorState()
	} else {
		c.logger.Info("Catalog loaded", "fetch_id", fetchID, "count", len(records))
		next = SuccessState(entities.CloneRecords(records))
	}

	c.transitionLocked(next)
}

// transitionLocked replaces the state and notifies observers. It must be called
// with c.mu held and releases it.
func (c *CatalogController) transitionLocked(next State) {
	c.state = next
	if len(c.observers) == 0 {
		c.mu.Unlock()
		return
	}

	c.pending = append(c.pending, next)
	if c.notifying {
		c.mu.Unlock()
		return
	}

	c.notifying = true
	for len(c.pending) > 0 {
		batch := c.pending
		c.pending = nil
		c.mu.Unlock()

		for _, s := range batch {
			for _, fn := range c.observers {
				fn(s)
			}
		}

		c.mu.Lock()
	}
	c.notifying = false
	c.mu.Unlock()
}
