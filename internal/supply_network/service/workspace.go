// Package service runs one editing workspace per user: the graph being
// edited, its autosave state, simulation results and saved scenarios.
package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/logging"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/autosave"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/factory"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/graph"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/metrics"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/repository"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/simulation"
)

// Simulator runs a graph through the simulation engine.
type Simulator interface {
	Run(ctx context.Context, g domain.Graph, horizonDays int) (*simulation.Result, error)
}

// Options tune a workspace. Zero values take the autosave defaults.
type Options struct {
	Debounce    time.Duration
	ErrorReset  time.Duration
	SaveTimeout time.Duration
	Clock       autosave.Clock
	Executor    func(func())
	Metrics     *metrics.Registry
	Now         func() time.Time
}

// View is the client-facing state of a workspace.
type View struct {
	NetworkID   string             `json:"network_id,omitempty"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	SaveStatus  domain.SaveStatus  `json:"save_status"`
	Graph       domain.Graph       `json:"graph"`
	Result      *simulation.Result `json:"result,omitempty"`
	Scenarios   int                `json:"scenarios"`
}

// Workspace serialises every operation of one user under its mutex.
// Network I/O for saves and simulations runs off that lock.
type Workspace struct {
	owner   string
	repo    ownerRepo
	engine  Simulator
	metrics *metrics.Registry
	now     func() time.Time

	mu          sync.Mutex
	store       *graph.Store
	saver       *autosave.Coordinator
	name        string
	description string
	lastResult  *simulation.Result
	scenarios   []Scenario
	scenarioSeq int
	lastUsed    time.Time

	// current is what autosave reads; it is replaced after every change so
	// the coordinator never needs the workspace lock.
	current atomic.Pointer[domain.Network]
}

func NewWorkspace(owner string, repo repository.Repository, engine Simulator, opts Options) *Workspace {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	w := &Workspace{
		owner:   owner,
		repo:    ownerRepo{repo: repo, owner: owner, metrics: opts.Metrics},
		engine:  engine,
		metrics: opts.Metrics,
		now:     opts.Now,
		store:   graph.NewStore(factory.New(nil)),
		name:    domain.DefaultNetworkName,
	}
	w.lastUsed = w.now()

	var coordOpts []autosave.Option
	if opts.Clock != nil {
		coordOpts = append(coordOpts, autosave.WithClock(opts.Clock))
	}
	if opts.Debounce > 0 {
		coordOpts = append(coordOpts, autosave.WithDebounce(opts.Debounce))
	}
	if opts.ErrorReset > 0 {
		coordOpts = append(coordOpts, autosave.WithErrorReset(opts.ErrorReset))
	}
	if opts.SaveTimeout > 0 {
		coordOpts = append(coordOpts, autosave.WithTimeout(opts.SaveTimeout))
	}
	if opts.Executor != nil {
		coordOpts = append(coordOpts, autosave.WithExecutor(opts.Executor))
	}
	if w.metrics != nil {
		coordOpts = append(coordOpts, autosave.WithListener(func(from, to domain.SaveStatus) {
			w.metrics.RecordSaveTransition(string(from), string(to))
		}))
	}
	w.saver = autosave.New(w.repo, w.source, coordOpts...)

	w.publishLocked()
	w.store.OnMutation(func(graph.Command) { w.changedLocked() })
	return w
}

func (w *Workspace) Owner() string { return w.owner }

// LastUsed is the time of the most recent operation.
func (w *Workspace) LastUsed() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastUsed
}

func (w *Workspace) lock() {
	w.mu.Lock()
	w.lastUsed = w.now()
}

func (w *Workspace) source() domain.Network {
	if n := w.current.Load(); n != nil {
		return *n
	}
	return domain.Network{Name: domain.DefaultNetworkName}
}

func (w *Workspace) publishLocked() {
	n := domain.Network{
		ID:          w.saver.ID(),
		OwnerID:     w.owner,
		Name:        w.name,
		Description: w.description,
		Graph:       w.store.Snapshot(),
	}
	w.current.Store(&n)
}

// changedLocked publishes the new state and schedules an autosave. An empty
// graph that was never stored is not worth creating a record for, so a save
// scheduled by an earlier mutation is cancelled.
func (w *Workspace) changedLocked() {
	w.publishLocked()
	if w.saver.ID() == "" && w.store.Snapshot().IsEmpty() {
		w.saver.Discard()
		return
	}
	w.saver.Changed()
}

func (w *Workspace) viewLocked() View {
	return View{
		NetworkID:   w.saver.ID(),
		Name:        w.name,
		Description: w.description,
		SaveStatus:  w.saver.Status(),
		Graph:       w.store.Snapshot(),
		Result:      w.lastResult,
		Scenarios:   len(w.scenarios),
	}
}

func (w *Workspace) View() View {
	w.lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

func (w *Workspace) SaveStatus() domain.SaveStatus {
	return w.saver.Status()
}

func (w *Workspace) record(op string, err error) {
	if w.metrics != nil {
		w.metrics.RecordMutation(op, err)
	}
}

func (w *Workspace) AddNode(role domain.Role) (domain.Node, error) {
	w.lock()
	defer w.mu.Unlock()
	n, err := w.store.AddNode(role)
	w.record("add_node", err)
	return n, err
}

func (w *Workspace) UpdateNode(id string, patch domain.NodePatch) (domain.Node, error) {
	w.lock()
	defer w.mu.Unlock()
	n, err := w.store.UpdateNode(id, patch)
	w.record("update_node", err)
	return n, err
}

// CascadeImpact reports what DeleteNode would remove, for confirmation.
func (w *Workspace) CascadeImpact(id string) (graph.Impact, error) {
	w.lock()
	defer w.mu.Unlock()
	return w.store.CascadeImpactOf(id)
}

func (w *Workspace) DeleteNode(id string) (graph.Impact, error) {
	w.lock()
	defer w.mu.Unlock()
	imp, err := w.store.DeleteNode(id)
	w.record("delete_node", err)
	return imp, err
}

func (w *Workspace) AddEdge(c domain.EdgeCandidate) (domain.Edge, error) {
	w.lock()
	defer w.mu.Unlock()
	e, err := w.store.AddEdge(c)
	w.record("add_edge", err)
	return e, err
}

func (w *Workspace) UpdateEdge(id string, patch domain.EdgePatch) (domain.Edge, error) {
	w.lock()
	defer w.mu.Unlock()
	e, err := w.store.UpdateEdge(id, patch)
	w.record("update_edge", err)
	return e, err
}

func (w *Workspace) DeleteEdge(id string) error {
	w.lock()
	defer w.mu.Unlock()
	err := w.store.DeleteEdge(id)
	w.record("delete_edge", err)
	return err
}

func (w *Workspace) AddDemand(in domain.DemandInput) (domain.Demand, error) {
	w.lock()
	defer w.mu.Unlock()
	d, err := w.store.AddDemand(in)
	w.record("add_demand", err)
	return d, err
}

func (w *Workspace) UpdateDemand(id string, patch domain.DemandPatch) (domain.Demand, error) {
	w.lock()
	defer w.mu.Unlock()
	d, err := w.store.UpdateDemand(id, patch)
	w.record("update_demand", err)
	return d, err
}

func (w *Workspace) DeleteDemand(id string) error {
	w.lock()
	defer w.mu.Unlock()
	err := w.store.DeleteDemand(id)
	w.record("delete_demand", err)
	return err
}

// SetDescription edits the description of the open network.
func (w *Workspace) SetDescription(desc string) View {
	w.lock()
	defer w.mu.Unlock()
	w.description = desc
	w.changedLocked()
	return w.viewLocked()
}

// Flush stores pending changes now.
func (w *Workspace) Flush(ctx context.Context) error {
	w.lock()
	defer w.mu.Unlock()
	return w.saver.Flush(ctx)
}

// Close flushes pending work and stops the autosave timers.
func (w *Workspace) Close(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	err := w.saver.Flush(ctx)
	w.saver.Close()
	if errors.Is(err, autosave.ErrClosed) {
		return nil
	}
	if err != nil {
		logging.New(ctx).Error("workspace.close", err)
	}
	return err
}
