package weather

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

// WithClock overrides the wall clock used to compute the current hour.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		c.now = now
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.SugaredLogger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithContext sets the context handed to the client on every fetch.
func WithContext(ctx context.Context) ControllerOption {
	return func(c *Controller) {
		c.ctx = ctx
	}
}

// Controller drives the request lifecycle (Loading -> Success|Error) and owns
// the latest published ViewState.
//
// Concurrent requests are neither cancelled nor coalesced: each runs to
// completion and publishes, so the visible state is whichever finished last.
type Controller struct {
	client Client
	store  StateStore
	now    func() time.Time
	logger *zap.SugaredLogger
	ctx    context.Context

	// publishMu serializes store writes with observer notification.
	publishMu sync.Mutex

	mu        sync.Mutex
	observers map[int]func(ViewState)
	nextObsID int
	lastQuery string

	inflight sync.WaitGroup
}

// NewController creates a Controller that has not published anything yet.
func NewController(client Client, store StateStore, opts ...ControllerOption) *Controller {
	c := &Controller{
		client:    client,
		store:     store,
		now:       time.Now,
		logger:    zap.NewNop().Sugar(),
		ctx:       context.Background(),
		observers: make(map[int]func(ViewState)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestWeather publishes Loading and fetches weather for query in the
// background. An empty query is a caller error: nothing is published and the
// client is not called.
func (c *Controller) RequestWeather(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrEmptyQuery
	}

	c.mu.Lock()
	c.lastQuery = query
	c.mu.Unlock()

	id := uuid.NewString()
	c.logger.Infow("weather request started", "request_id", id, "query", query)

	c.publish(Loading{})

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		c.fetch(id, query)
	}()
	return nil
}

// Refresh re-requests the most recent query.
func (c *Controller) Refresh() error {
	c.mu.Lock()
	query := c.lastQuery
	c.mu.Unlock()

	return c.RequestWeather(query)
}

// LastQuery returns the most recently requested location query.
func (c *Controller) LastQuery() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastQuery
}

// State returns the latest published state, or nil before the first request.
func (c *Controller) State() ViewState {
	state, err := c.store.Latest()
	if err != nil {
		return nil
	}
	return state
}

// Observe registers fn to be called with every published state, in publish
// order. fn must not call RequestWeather synchronously. The returned func
// unregisters it.
func (c *Controller) Observe(fn func(ViewState)) (cancel func()) {
	c.mu.Lock()
	id := c.nextObsID
	c.nextObsID++
	c.observers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

// Wait blocks until every in-flight request has published its final state.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

func (c *Controller) fetch(id, query string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Errorw("weather request panicked", "request_id", id, "panic", r)
			c.publish(ErrorState{Message: fmt.Sprintf("Failed to fetch weather details: %v", r)})
		}
	}()

	start := c.now()
	snapshot, err := c.client.Fetch(c.ctx, query)
	if err != nil {
		c.fail(id, err)
		return
	}

	upcoming, err := UpcomingHours(snapshot.Days, c.now().Hour())
	if err != nil {
		c.fail(id, err)
		return
	}

	c.logger.Infow("weather request succeeded",
		"request_id", id,
		"location", snapshot.Location.Name,
		"upcoming_hours", len(upcoming),
		"days", len(snapshot.Days),
		"elapsed", c.now().Sub(start),
	)
	c.publish(Success{
		Location:      snapshot.Location,
		Current:       snapshot.Current,
		UpcomingHours: upcoming,
		Days:          snapshot.Days,
	})
}

func (c *Controller) fail(id string, err error) {
	c.logger.Warnw("weather request failed", "request_id", id, "error", err)
	c.publish(ErrorState{Message: "Failed to fetch weather details: " + err.Error()})
}

func (c *Controller) publish(state ViewState) {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	c.store.Save(state)

	c.mu.Lock()
	observers := make([]func(ViewState), 0, len(c.observers))
	for _, fn := range c.observers {
		observers = append(observers, fn)
	}
	c.mu.Unlock()

	for _, fn := range observers {
		fn(state)
	}
}
