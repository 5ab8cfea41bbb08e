package graph

import (
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/connection"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

// Command is one mutation of a graph. Apply never modifies its input.
type Command interface {
	Apply(g domain.Graph) (domain.Graph, error)
}

// Apply runs cmd against g and returns the next graph. On error the returned
// graph is g unchanged.
func Apply(g domain.Graph, cmd Command) (domain.Graph, error) {
	next, err := cmd.Apply(g)
	if err != nil {
		return g, err
	}
	return next, nil
}

type AddNode struct {
	Node domain.Node
}

func (c AddNode) Apply(g domain.Graph) (domain.Graph, error) {
	if !c.Node.Role.Valid() {
		return g, domain.ErrInvalidRole
	}
	next := g.Clone()
	next.Nodes = append(next.Nodes, c.Node.Clone())
	return next, nil
}

type UpdateNode struct {
	ID    string
	Patch domain.NodePatch
}

func (c UpdateNode) Apply(g domain.Graph) (domain.Graph, error) {
	i := indexNode(g, c.ID)
	if i < 0 {
		return g, ErrNodeNotFound
	}
	next := g.Clone()
	if err := applyNodePatch(&next.Nodes[i], c.Patch); err != nil {
		return g, err
	}
	return next, nil
}

// DeleteNode removes the node together with every link touching it and every
// demand targeting it.
type DeleteNode struct {
	ID string
}

func (c DeleteNode) Apply(g domain.Graph) (domain.Graph, error) {
	if indexNode(g, c.ID) < 0 {
		return g, ErrNodeNotFound
	}
	next := domain.Graph{
		Nodes:   make([]domain.Node, 0, len(g.Nodes)),
		Edges:   make([]domain.Edge, 0, len(g.Edges)),
		Demands: make([]domain.Demand, 0, len(g.Demands)),
	}
	for _, n := range g.Nodes {
		if n.ID != c.ID {
			next.Nodes = append(next.Nodes, n.Clone())
		}
	}
	for _, e := range g.Edges {
		if e.Source != c.ID && e.Target != c.ID {
			next.Edges = append(next.Edges, e)
		}
	}
	for _, d := range g.Demands {
		if d.TargetNode != c.ID {
			next.Demands = append(next.Demands, d)
		}
	}
	return next, nil
}

type AddEdge struct {
	Edge domain.Edge
}

func (c AddEdge) Apply(g domain.Graph) (domain.Graph, error) {
	if err := connection.Validate(c.Edge.Source, c.Edge.Target, g.Nodes); err != nil {
		return g, err
	}
	if err := checkBounds(c.Edge.Parameters); err != nil {
		return g, err
	}
	next := g.Clone()
	next.Edges = append(next.Edges, c.Edge)
	return next, nil
}

type UpdateEdge struct {
	ID    string
	Patch domain.EdgePatch
}

func (c UpdateEdge) Apply(g domain.Graph) (domain.Graph, error) {
	i := indexEdge(g, c.ID)
	if i < 0 {
		return g, ErrEdgeNotFound
	}
	params := g.Edges[i].Parameters
	if c.Patch.Cost != nil {
		params.Cost = *c.Patch.Cost
	}
	if c.Patch.LeadTime != nil {
		params.LeadTime = *c.Patch.LeadTime
	}
	if err := checkBounds(params); err != nil {
		return g, err
	}
	next := g.Clone()
	next.Edges[i].Parameters = params
	return next, nil
}

type DeleteEdge struct {
	ID string
}

func (c DeleteEdge) Apply(g domain.Graph) (domain.Graph, error) {
	i := indexEdge(g, c.ID)
	if i < 0 {
		return g, ErrEdgeNotFound
	}
	next := g.Clone()
	next.Edges = append(next.Edges[:i], next.Edges[i+1:]...)
	return next, nil
}

type AddDemand struct {
	Demand domain.Demand
}

func (c AddDemand) Apply(g domain.Graph) (domain.Graph, error) {
	if indexNode(g, c.Demand.TargetNode) < 0 {
		return g, ErrNodeNotFound
	}
	if err := checkBounds(c.Demand); err != nil {
		return g, err
	}
	next := g.Clone()
	next.Demands = append(next.Demands, c.Demand)
	return next, nil
}

type UpdateDemand struct {
	ID    string
	Patch domain.DemandPatch
}

func (c UpdateDemand) Apply(g domain.Graph) (domain.Graph, error) {
	i := indexDemand(g, c.ID)
	if i < 0 {
		return g, ErrDemandNotFound
	}
	d := g.Demands[i]
	p := c.Patch
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.TargetNode != nil {
		if indexNode(g, *p.TargetNode) < 0 {
			return g, ErrNodeNotFound
		}
		d.TargetNode = *p.TargetNode
	}
	if p.ArrivalInterval != nil {
		d.ArrivalInterval = *p.ArrivalInterval
	}
	if p.OrderQuantity != nil {
		d.OrderQuantity = *p.OrderQuantity
	}
	if p.DeliveryCost != nil {
		d.DeliveryCost = *p.DeliveryCost
	}
	if p.LeadTime != nil {
		d.LeadTime = *p.LeadTime
	}
	if err := checkBounds(d); err != nil {
		return g, err
	}
	next := g.Clone()
	next.Demands[i] = d
	return next, nil
}

type DeleteDemand struct {
	ID string
}

func (c DeleteDemand) Apply(g domain.Graph) (domain.Graph, error) {
	i := indexDemand(g, c.ID)
	if i < 0 {
		return g, ErrDemandNotFound
	}
	next := g.Clone()
	next.Demands = append(next.Demands[:i], next.Demands[i+1:]...)
	return next, nil
}

// Replace swaps the whole graph, as import and load do. The new content is
// taken as-is; the network validator reports anything inconsistent in it.
type Replace struct {
	Graph domain.Graph
}

func (c Replace) Apply(domain.Graph) (domain.Graph, error) {
	return c.Graph.Clone(), nil
}

func indexNode(g domain.Graph, id string) int {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return i
		}
	}
	return -1
}

func indexEdge(g domain.Graph, id string) int {
	for i := range g.Edges {
		if g.Edges[i].ID == id {
			return i
		}
	}
	return -1
}

func indexDemand(g domain.Graph, id string) int {
	for i := range g.Demands {
		if g.Demands[i].ID == id {
			return i
		}
	}
	return -1
}
