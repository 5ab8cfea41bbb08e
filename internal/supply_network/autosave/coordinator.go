// Package autosave keeps a session's network in sync with the remote store
// using a trailing-edge debounce.
package autosave

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/logging"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

const (
	DefaultDebounce   = 3 * time.Second
	DefaultErrorReset = 3 * time.Second
	DefaultTimeout    = 10 * time.Second
)

// Saver is the persistence side of a session, already scoped to its owner.
type Saver interface {
	Create(ctx context.Context, n domain.Network) (string, error)
	Update(ctx context.Context, id string, n domain.Network) error
}

// Source returns the network as it should be stored right now.
type Source func() domain.Network

// Listener observes status changes. It runs with the coordinator locked and
// must not call back into it.
type Listener func(from, to domain.SaveStatus)

type Option func(*Coordinator)

func WithClock(c Clock) Option { return func(co *Coordinator) { co.clock = c } }

func WithDebounce(d time.Duration) Option { return func(co *Coordinator) { co.debounce = d } }

func WithErrorReset(d time.Duration) Option { return func(co *Coordinator) { co.errorReset = d } }

func WithTimeout(d time.Duration) Option { return func(co *Coordinator) { co.timeout = d } }

func WithListener(l Listener) Option { return func(co *Coordinator) { co.listener = l } }

// WithExecutor replaces the goroutine a save runs on. Tests pass a function
// that runs the save inline.
func WithExecutor(run func(func())) Option { return func(co *Coordinator) { co.exec = run } }

type Coordinator struct {
	saver  Saver
	source Source

	clock      Clock
	debounce   time.Duration
	errorReset time.Duration
	timeout    time.Duration
	listener   Listener
	exec       func(func())
	log        *logging.Logger

	mu         sync.Mutex
	status     domain.SaveStatus
	id         string
	gen        uint64
	debounceT  Timer
	resetT     Timer
	inFlight   bool
	flightDone chan struct{}
	dirty      bool
	redispatch bool
	pending    bool
	closed     bool
}

func New(saver Saver, source Source, opts ...Option) *Coordinator {
	c := &Coordinator{
		saver:      saver,
		source:     source,
		clock:      RealClock(),
		debounce:   DefaultDebounce,
		errorReset: DefaultErrorReset,
		timeout:    DefaultTimeout,
		exec:       func(f func()) { go f() },
		log:        logging.Named("autosave"),
		status:     domain.StatusUnsaved,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) Status() domain.SaveStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// ID is the remote identity, empty until the first successful create.
func (c *Coordinator) ID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

func (c *Coordinator) setStatus(to domain.SaveStatus) {
	from := c.status
	if from == to {
		return
	}
	c.status = to
	if c.listener != nil {
		c.listener(from, to)
	}
}

// Changed records a mutation: the status drops to unsaved and the debounce
// window restarts. A save already in flight is left to finish.
func (c *Coordinator) Changed() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.changedLocked()
}

// Discard cancels a scheduled save when there is nothing worth storing. A
// save already running is treated as in Changed so its record catches up.
func (c *Coordinator) Discard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.inFlight {
		c.changedLocked()
		return
	}
	if c.debounceT != nil {
		c.debounceT.Stop()
		c.debounceT = nil
	}
	if c.resetT != nil {
		c.resetT.Stop()
		c.resetT = nil
	}
	c.pending = false
	c.setStatus(domain.StatusUnsaved)
}

func (c *Coordinator) changedLocked() {
	if c.resetT != nil {
		c.resetT.Stop()
		c.resetT = nil
	}
	c.pending = true
	if c.inFlight {
		c.dirty = true
	} else {
		c.setStatus(domain.StatusUnsaved)
	}
	c.armLocked()
}

func (c *Coordinator) armLocked() {
	if c.debounceT != nil {
		c.debounceT.Stop()
	}
	gen := c.gen
	var t Timer
	t = c.clock.AfterFunc(c.debounce, func() { c.fire(gen, t) })
	c.debounceT = t
}

func (c *Coordinator) fire(gen uint64, t Timer) {
	c.mu.Lock()
	if c.gen != gen || c.closed || c.debounceT != t {
		c.mu.Unlock()
		return
	}
	c.debounceT = nil
	if c.inFlight {
		c.redispatch = true
		c.mu.Unlock()
		return
	}
	run := c.dispatchLocked()
	c.mu.Unlock()

	c.exec(func() { _ = run() })
}

// dispatchLocked moves to saving and returns the save to run off the lock.
func (c *Coordinator) dispatchLocked() func() error {
	gen := c.gen
	id := c.id
	snapshot := c.source()
	done := make(chan struct{})

	c.inFlight = true
	c.flightDone = done
	c.dirty = false
	c.redispatch = false
	c.pending = false
	c.setStatus(domain.StatusSaving)

	return func() error {
		defer close(done)

		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		newID, err := c.save(ctx, id, snapshot)
		c.complete(gen, id, newID, err)
		return err
	}
}

func (c *Coordinator) save(ctx context.Context, id string, n domain.Network) (string, error) {
	if id == "" {
		newID, err := c.saver.Create(ctx, n)
		if err != nil {
			return "", fmt.Errorf("create network: %w", err)
		}
		return newID, nil
	}
	if err := c.saver.Update(ctx, id, n); err != nil {
		return id, fmt.Errorf("update network %s: %w", id, err)
	}
	return id, nil
}

func (c *Coordinator) complete(gen uint64, oldID, newID string, err error) {
	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		c.log.Infof("autosave.complete", "discarding result for superseded network id=%q", oldID)
		return
	}
	c.inFlight = false

	if err != nil {
		c.pending = true
		c.log.Error("autosave.save", err)
	} else if oldID == "" {
		c.id = newID
		c.log.Infof("autosave.save", "created network id=%s", newID)
	}

	var run func() error
	switch {
	case c.closed:
	case c.dirty:
		// A mutation arrived mid-save; its unsaved state wins.
		c.dirty = false
		c.setStatus(domain.StatusUnsaved)
		if c.redispatch {
			run = c.dispatchLocked()
		}
	case err != nil:
		c.setStatus(domain.StatusError)
		c.scheduleResetLocked()
	default:
		c.setStatus(domain.StatusSaved)
	}
	c.mu.Unlock()

	if run != nil {
		c.exec(func() { _ = run() })
	}
}

func (c *Coordinator) scheduleResetLocked() {
	gen := c.gen
	var t Timer
	t = c.clock.AfterFunc(c.errorReset, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.gen != gen || c.resetT != t || c.status != domain.StatusError {
			return
		}
		c.resetT = nil
		c.setStatus(domain.StatusUnsaved)
	})
	c.resetT = t
}

// ErrClosed is returned by Flush after Close.
var ErrClosed = errors.New("autosave: coordinator closed")

// Flush saves now if anything is unsaved, waiting for an in-flight save
// first. It is used before a session is dropped.
func (c *Coordinator) Flush(ctx context.Context) error {
	for {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return ErrClosed
		}
		if !c.inFlight {
			break
		}
		done := c.flightDone
		c.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	defer c.mu.Unlock()

	if !c.pending {
		return nil
	}
	if c.debounceT != nil {
		c.debounceT.Stop()
		c.debounceT = nil
	}
	if c.resetT != nil {
		c.resetT.Stop()
		c.resetT = nil
	}

	run := c.dispatchLocked()
	c.mu.Unlock()
	err := run()
	c.mu.Lock()
	return err
}

// Reset points the coordinator at another network, e.g. after a load, and
// drops any pending work for the previous one.
func (c *Coordinator) Reset(id string, status domain.SaveStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.id = id
	c.setStatus(status)
}

func (c *Coordinator) stopLocked() {
	c.gen++
	if c.debounceT != nil {
		c.debounceT.Stop()
		c.debounceT = nil
	}
	if c.resetT != nil {
		c.resetT.Stop()
		c.resetT = nil
	}
	c.inFlight = false
	c.dirty = false
	c.redispatch = false
	c.pending = false
}

// Close stops all timers. A save already running completes but its result
// is discarded.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.closed = true
}
