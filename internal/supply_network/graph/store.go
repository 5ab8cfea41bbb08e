// Package graph holds the editable supply network of one session and the
// transitions that mutate it.
package graph

import (
	"fmt"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/factory"
)

// Listener is called after every successful mutation.
type Listener func(cmd Command)

// Impact lists what a node deletion would take with it.
type Impact struct {
	EdgeIDs   []string `json:"edge_ids"`
	DemandIDs []string `json:"demand_ids"`
}

// Store is not safe for concurrent use; callers serialise access.
type Store struct {
	graph    domain.Graph
	factory  *factory.Factory
	listener Listener
}

func NewStore(f *factory.Factory) *Store {
	if f == nil {
		f = factory.New(nil)
	}
	return &Store{factory: f}
}

func (s *Store) OnMutation(fn Listener) {
	s.listener = fn
}

func (s *Store) Snapshot() domain.Graph {
	return s.graph.Clone()
}

func (s *Store) apply(cmd Command) error {
	next, err := Apply(s.graph, cmd)
	if err != nil {
		return err
	}
	s.graph = next
	if s.listener != nil {
		s.listener(cmd)
	}
	return nil
}

func (s *Store) AddNode(role domain.Role) (domain.Node, error) {
	n, err := s.factory.CreateNode(role, s.graph.Nodes)
	if err != nil {
		return domain.Node{}, err
	}
	if err := s.apply(AddNode{Node: n}); err != nil {
		return domain.Node{}, err
	}
	return n, nil
}

func (s *Store) UpdateNode(id string, patch domain.NodePatch) (domain.Node, error) {
	if err := s.apply(UpdateNode{ID: id, Patch: patch}); err != nil {
		return domain.Node{}, err
	}
	n, _ := s.graph.Node(id)
	return n.Clone(), nil
}

func (s *Store) CascadeImpactOf(id string) (Impact, error) {
	if indexNode(s.graph, id) < 0 {
		return Impact{}, ErrNodeNotFound
	}
	imp := Impact{EdgeIDs: []string{}, DemandIDs: []string{}}
	for _, e := range s.graph.Edges {
		if e.Source == id || e.Target == id {
			imp.EdgeIDs = append(imp.EdgeIDs, e.ID)
		}
	}
	for _, d := range s.graph.Demands {
		if d.TargetNode == id {
			imp.DemandIDs = append(imp.DemandIDs, d.ID)
		}
	}
	return imp, nil
}

// DeleteNode removes the node and its cascade, returning what was removed.
func (s *Store) DeleteNode(id string) (Impact, error) {
	imp, err := s.CascadeImpactOf(id)
	if err != nil {
		return Impact{}, err
	}
	if err := s.apply(DeleteNode{ID: id}); err != nil {
		return Impact{}, err
	}
	return imp, nil
}

func (s *Store) AddEdge(c domain.EdgeCandidate) (domain.Edge, error) {
	params := factory.DefaultEdgeParams
	if c.Parameters != nil {
		params = *c.Parameters
	}
	// Validate before taking an id so rejected candidates do not consume one.
	if _, err := Apply(s.graph, AddEdge{Edge: domain.Edge{Source: c.Source, Target: c.Target, Parameters: params}}); err != nil {
		return domain.Edge{}, err
	}
	e := domain.Edge{
		ID:         s.factory.IDs().Next(factory.LinkPrefix),
		Source:     c.Source,
		Target:     c.Target,
		Parameters: params,
	}
	if err := s.apply(AddEdge{Edge: e}); err != nil {
		return domain.Edge{}, err
	}
	return e, nil
}

func (s *Store) UpdateEdge(id string, patch domain.EdgePatch) (domain.Edge, error) {
	if err := s.apply(UpdateEdge{ID: id, Patch: patch}); err != nil {
		return domain.Edge{}, err
	}
	return s.graph.Edges[indexEdge(s.graph, id)], nil
}

func (s *Store) DeleteEdge(id string) error {
	return s.apply(DeleteEdge{ID: id})
}

// AddDemand fills unset fields with defaults. Without a target the demand goes
// to the first distributor, or to the first node when there is none.
func (s *Store) AddDemand(in domain.DemandInput) (domain.Demand, error) {
	if len(s.graph.Nodes) == 0 {
		return domain.Demand{}, ErrNoNodes
	}

	target := in.TargetNode
	if target == "" {
		target = s.graph.Nodes[0].ID
		for _, n := range s.graph.Nodes {
			if n.Role == domain.RoleDistributor {
				target = n.ID
				break
			}
		}
	}

	d := domain.Demand{
		Name:            in.Name,
		TargetNode:      target,
		ArrivalInterval: factory.DefaultArrivalInterval,
		OrderQuantity:   factory.DefaultOrderQuantity,
		DeliveryCost:    factory.DefaultDeliveryCost,
		LeadTime:        factory.DefaultDemandLeadTime,
	}
	if d.Name == "" {
		d.Name = fmt.Sprintf("Demand %d", len(s.graph.Demands)+1)
	}
	if in.ArrivalInterval != nil {
		d.ArrivalInterval = *in.ArrivalInterval
	}
	if in.OrderQuantity != nil {
		d.OrderQuantity = *in.OrderQuantity
	}
	if in.DeliveryCost != nil {
		d.DeliveryCost = *in.DeliveryCost
	}
	if in.LeadTime != nil {
		d.LeadTime = *in.LeadTime
	}

	if _, err := Apply(s.graph, AddDemand{Demand: d}); err != nil {
		return domain.Demand{}, err
	}
	d.ID = s.factory.IDs().Next(factory.DemandPrefix)
	if err := s.apply(AddDemand{Demand: d}); err != nil {
		return domain.Demand{}, err
	}
	return d, nil
}

func (s *Store) UpdateDemand(id string, patch domain.DemandPatch) (domain.Demand, error) {
	if err := s.apply(UpdateDemand{ID: id, Patch: patch}); err != nil {
		return domain.Demand{}, err
	}
	return s.graph.Demands[indexDemand(s.graph, id)], nil
}

func (s *Store) DeleteDemand(id string) error {
	return s.apply(DeleteDemand{ID: id})
}

// Replace installs g as the current graph and notifies the listener, as an
// import does.
func (s *Store) Replace(g domain.Graph) {
	s.observe(g)
	_ = s.apply(Replace{Graph: g})
}

// Reset installs g without notifying, as loading a stored network does.
func (s *Store) Reset(g domain.Graph) {
	s.observe(g)
	s.graph, _ = Apply(s.graph, Replace{Graph: g})
}

func (s *Store) observe(g domain.Graph) {
	ids := s.factory.IDs()
	for _, n := range g.Nodes {
		ids.Observe(n.ID)
	}
	for _, e := range g.Edges {
		ids.Observe(e.ID)
	}
	for _, d := range g.Demands {
		ids.Observe(d.ID)
	}
}
