package domain

import "time"

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Inventory is carried by every role.
type Inventory struct {
	Capacity     int     `json:"capacity"`
	InitialLevel int     `json:"initial_level"`
	HoldingCost  float64 `json:"holding_cost"`
}

type Replenishment struct {
	Policy     Policy `json:"replenishment_policy"`
	PolicyS    int    `json:"policy_s"`
	PolicyBigS int    `json:"policy_S"`
	PolicyR    int    `json:"policy_R"`
	PolicyQ    int    `json:"policy_Q"`
}

type Pricing struct {
	BuyPrice  float64 `json:"buy_price,omitempty"`
	SellPrice float64 `json:"sell_price"`
}

type Supply struct {
	SupplierType SupplierType `json:"supplier_type"`
}

type Manufacturing struct {
	ManufacturingCost float64 `json:"manufacturing_cost"`
	ManufacturingTime float64 `json:"manufacturing_time"`
	BatchSize         int     `json:"batch_size"`
}

// Parameters is a variant over Role. Inventory is always present; each optional
// group is nil for roles that do not carry it and is flattened into the
// parameter object on the wire.
type Parameters struct {
	Inventory
	*Replenishment
	*Pricing
	*Supply
	*Manufacturing
}

func (p Parameters) Clone() Parameters {
	out := Parameters{Inventory: p.Inventory}
	if p.Replenishment != nil {
		r := *p.Replenishment
		out.Replenishment = &r
	}
	if p.Pricing != nil {
		v := *p.Pricing
		out.Pricing = &v
	}
	if p.Supply != nil {
		v := *p.Supply
		out.Supply = &v
	}
	if p.Manufacturing != nil {
		v := *p.Manufacturing
		out.Manufacturing = &v
	}
	return out
}

type Node struct {
	ID         string     `json:"id"`
	Role       Role       `json:"role"`
	Label      string     `json:"label"`
	Position   Position   `json:"position"`
	Parameters Parameters `json:"parameters"`
}

func (n Node) Clone() Node {
	n.Parameters = n.Parameters.Clone()
	return n
}

type EdgeParams struct {
	Cost     float64 `json:"cost" validate:"gte=0"`
	LeadTime float64 `json:"lead_time" validate:"gte=0"`
}

type Edge struct {
	ID         string     `json:"id"`
	Source     string     `json:"source"`
	Target     string     `json:"target"`
	Parameters EdgeParams `json:"parameters"`
}

type Demand struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	TargetNode      string  `json:"target_node"`
	ArrivalInterval float64 `json:"arrival_interval" validate:"gt=0"`
	OrderQuantity   int     `json:"order_quantity" validate:"gte=0"`
	DeliveryCost    float64 `json:"delivery_cost" validate:"gte=0"`
	LeadTime        float64 `json:"lead_time" validate:"gte=0"`
}

// Graph is the editable content of a network and the export document shape.
type Graph struct {
	Nodes   []Node   `json:"nodes"`
	Edges   []Edge   `json:"edges"`
	Demands []Demand `json:"demands"`
}

func (g Graph) Clone() Graph {
	out := Graph{
		Nodes:   make([]Node, len(g.Nodes)),
		Edges:   make([]Edge, len(g.Edges)),
		Demands: make([]Demand, len(g.Demands)),
	}
	for i, n := range g.Nodes {
		out.Nodes[i] = n.Clone()
	}
	copy(out.Edges, g.Edges)
	copy(out.Demands, g.Demands)
	return out
}

func (g Graph) IsEmpty() bool {
	return len(g.Nodes) == 0 && len(g.Edges) == 0 && len(g.Demands) == 0
}

func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

func (g Graph) CountRole(role Role) int {
	cnt := 0
	for _, n := range g.Nodes {
		if n.Role == role {
			cnt++
		}
	}
	return cnt
}

// Network is a named graph owned by one user. ID is empty until the first save.
type Network struct {
	ID          string `json:"id,omitempty"`
	OwnerID     string `json:"owner_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Graph
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is the listing view of a stored network.
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	NodeCount   int       `json:"node_count"`
	EdgeCount   int       `json:"edge_count"`
	DemandCount int       `json:"demand_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (n Network) Summary() Summary {
	return Summary{
		ID:          n.ID,
		Name:        n.Name,
		NodeCount:   len(n.Nodes),
		EdgeCount:   len(n.Edges),
		DemandCount: len(n.Demands),
		UpdatedAt:   n.UpdatedAt,
	}
}

const DefaultNetworkName = "Untitled Network"
