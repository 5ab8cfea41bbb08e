// Package factory builds new nodes with role-specific defaults.
package factory

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

type Factory struct {
	ids *Sequence

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Factory)

// WithRand fixes the placement source, mostly for tests.
func WithRand(r *rand.Rand) Option {
	return func(f *Factory) { f.rnd = r }
}

func New(ids *Sequence, opts ...Option) *Factory {
	if ids == nil {
		ids = NewSequence()
	}
	seed := uint64(time.Now().UnixNano())
	f := &Factory{
		ids: ids,
		rnd: rand.New(rand.NewPCG(seed, seed>>1)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Factory) IDs() *Sequence { return f.ids }

// CreateNode returns a node of the given role. The label ordinal counts the
// same-role nodes that exist right now, so ordinals freed by deletion are
// handed out again.
func (f *Factory) CreateNode(role domain.Role, existing []domain.Node) (domain.Node, error) {
	params, err := DefaultParameters(role)
	if err != nil {
		return domain.Node{}, fmt.Errorf("create %q node: %w", role, err)
	}

	ordinal := 1
	for _, n := range existing {
		if n.Role == role {
			ordinal++
		}
	}

	return domain.Node{
		ID:         f.ids.Next(string(role)),
		Role:       role,
		Label:      fmt.Sprintf("%s %d", role.Title(), ordinal),
		Position:   f.position(),
		Parameters: params,
	}, nil
}

func (f *Factory) position() domain.Position {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.Position{
		X: originX + f.rnd.Float64()*spreadSize,
		Y: originY + f.rnd.Float64()*spreadSize,
	}
}
