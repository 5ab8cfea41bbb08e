package domain

// NodePatch is a partial node update. Nil fields are left untouched.
type NodePatch struct {
	Label    *string   `json:"label,omitempty"`
	Position *Position `json:"position,omitempty"`

	Capacity     *int     `json:"capacity,omitempty"`
	InitialLevel *int     `json:"initial_level,omitempty"`
	HoldingCost  *float64 `json:"holding_cost,omitempty"`

	Policy     *Policy `json:"replenishment_policy,omitempty"`
	PolicyS    *int    `json:"policy_s,omitempty"`
	PolicyBigS *int    `json:"policy_S,omitempty"`
	PolicyR    *int    `json:"policy_R,omitempty"`
	PolicyQ    *int    `json:"policy_Q,omitempty"`

	BuyPrice  *float64 `json:"buy_price,omitempty"`
	SellPrice *float64 `json:"sell_price,omitempty"`

	SupplierType *SupplierType `json:"supplier_type,omitempty"`

	ManufacturingCost *float64 `json:"manufacturing_cost,omitempty"`
	ManufacturingTime *float64 `json:"manufacturing_time,omitempty"`
	BatchSize         *int     `json:"batch_size,omitempty"`
}

type EdgePatch struct {
	Cost     *float64 `json:"cost,omitempty"`
	LeadTime *float64 `json:"lead_time,omitempty"`
}

type DemandPatch struct {
	Name            *string  `json:"name,omitempty"`
	TargetNode      *string  `json:"target_node,omitempty"`
	ArrivalInterval *float64 `json:"arrival_interval,omitempty"`
	OrderQuantity   *int     `json:"order_quantity,omitempty"`
	DeliveryCost    *float64 `json:"delivery_cost,omitempty"`
	LeadTime        *float64 `json:"lead_time,omitempty"`
}

// EdgeCandidate is a connection request. Nil Parameters means defaults.
type EdgeCandidate struct {
	Source     string      `json:"source"`
	Target     string      `json:"target"`
	Parameters *EdgeParams `json:"parameters,omitempty"`
}

// DemandInput creates a demand. Zero fields take defaults; an empty
// TargetNode picks the first distributor, else the first node.
type DemandInput struct {
	Name            string   `json:"name,omitempty"`
	TargetNode      string   `json:"target_node,omitempty"`
	ArrivalInterval *float64 `json:"arrival_interval,omitempty"`
	OrderQuantity   *int     `json:"order_quantity,omitempty"`
	DeliveryCost    *float64 `json:"delivery_cost,omitempty"`
	LeadTime        *float64 `json:"lead_time,omitempty"`
}
