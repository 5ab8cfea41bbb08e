package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/logging"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/metrics"
)

// DefaultSweepSpec runs the idle sweep every minute.
const DefaultSweepSpec = "0 * * * * *"

// Registry holds one workspace per owner, created on first use.
type Registry struct {
	newWorkspace func(owner string) *Workspace
	idleTTL      time.Duration
	metrics      *metrics.Registry
	now          func() time.Time

	mu         sync.Mutex
	workspaces map[string]*Workspace
	cron       *cron.Cron
}

func NewRegistry(newWorkspace func(owner string) *Workspace, idleTTL time.Duration, m *metrics.Registry) *Registry {
	return &Registry{
		newWorkspace: newWorkspace,
		idleTTL:      idleTTL,
		metrics:      m,
		now:          time.Now,
		workspaces:   make(map[string]*Workspace),
	}
}

// Get returns the owner's workspace, opening a fresh one if needed.
func (r *Registry) Get(owner string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.workspaces[owner]; ok {
		return w
	}
	w := r.newWorkspace(owner)
	r.workspaces[owner] = w
	r.gaugeLocked()
	return w
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

func (r *Registry) gaugeLocked() {
	if r.metrics != nil {
		r.metrics.WorkspacesActive.Set(float64(len(r.workspaces)))
	}
}

// Sweep closes workspaces idle for longer than the TTL, saving their pending
// changes first. It returns the owners that were evicted.
func (r *Registry) Sweep(ctx context.Context) []string {
	if r.idleTTL <= 0 {
		return nil
	}
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	var idle []*Workspace
	for owner, w := range r.workspaces {
		if w.LastUsed().Before(cutoff) {
			idle = append(idle, w)
			delete(r.workspaces, owner)
		}
	}
	r.gaugeLocked()
	r.mu.Unlock()

	log := logging.New(ctx)
	owners := make([]string, 0, len(idle))
	for _, w := range idle {
		if err := w.Close(ctx); err != nil {
			log.Errorf("registry.sweep", "owner=%s flush failed: %v", w.Owner(), err)
		}
		owners = append(owners, w.Owner())
		if r.metrics != nil {
			r.metrics.WorkspacesEvicted.Inc()
		}
	}
	sort.Strings(owners)
	if len(owners) > 0 {
		log.Infof("registry.sweep", "evicted=%d", len(owners))
	}
	return owners
}

// Start schedules Sweep with a seconds-resolution cron spec.
func (r *Registry) Start(spec string) error {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		r.Sweep(logging.WithRequestID(ctx, "session-sweeper"))
	}); err != nil {
		return err
	}

	r.mu.Lock()
	r.cron = c
	r.mu.Unlock()
	c.Start()
	logging.Named("session-sweeper").Infof("registry.start", "spec=%q idle_ttl=%s", spec, r.idleTTL)
	return nil
}

// Shutdown stops the sweeper and closes every workspace.
func (r *Registry) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	c := r.cron
	r.cron = nil
	all := make([]*Workspace, 0, len(r.workspaces))
	for _, w := range r.workspaces {
		all = append(all, w)
	}
	r.workspaces = make(map[string]*Workspace)
	r.gaugeLocked()
	r.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
	var firstErr error
	for _, w := range all {
		if err := w.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
