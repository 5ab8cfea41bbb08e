package simulation

import (
	"encoding/json"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

// DefaultHorizonDays is used when a run asks for no horizon.
const DefaultHorizonDays = 30

// RunRequest is the engine's request body.
type RunRequest struct {
	Nodes   []WireNode      `json:"nodes"`
	Links   []WireLink      `json:"links"`
	Demands []domain.Demand `json:"demands"`
	SimTime int             `json:"sim_time"`
}

type WireNode struct {
	ID   string       `json:"id"`
	Data WireNodeData `json:"data"`
}

// WireNodeData flattens the node's parameters next to its label and role.
type WireNodeData struct {
	Label    string `json:"label"`
	NodeType string `json:"nodeType"`
	domain.Parameters
}

type WireLink struct {
	ID     string            `json:"id"`
	Source string            `json:"source"`
	Target string            `json:"target"`
	Data   domain.EdgeParams `json:"data"`
}

// Metrics holds the engine figures used by CSV export and scenario
// comparison. Pair-valued fields are [orders, units].
type Metrics struct {
	Profit             float64   `json:"profit"`
	Revenue            float64   `json:"revenue"`
	TotalCost          float64   `json:"total_cost"`
	InventoryCarryCost float64   `json:"inventory_carry_cost"`
	InventorySpendCost float64   `json:"inventory_spend_cost"`
	TransportationCost float64   `json:"transportation_cost"`
	AvailableInv       float64   `json:"available_inv"`
	AvgAvailableInv    float64   `json:"avg_available_inv"`
	TotalDemand        []float64 `json:"total_demand,omitempty"`
	Shortage           []float64 `json:"shortage,omitempty"`
	Backorders         []float64 `json:"backorders,omitempty"`
	AvgCostPerOrder    float64   `json:"avg_cost_per_order"`
	AvgCostPerItem     float64   `json:"avg_cost_per_item"`
}

// ShortageOrders and ShortageUnits read the shortage pair, zero when absent.
func (m Metrics) ShortageOrders() float64 { return pairAt(m.Shortage, 0) }
func (m Metrics) ShortageUnits() float64  { return pairAt(m.Shortage, 1) }

func pairAt(p []float64, i int) float64 {
	if i < len(p) {
		return p[i]
	}
	return 0
}

type Series struct {
	Time  []float64 `json:"time"`
	Level []float64 `json:"level"`
}

// Result is a successful run. Raw is the engine's body exactly as received;
// Metrics and InventoryData are the parts this service reads from it.
type Result struct {
	HorizonDays   int               `json:"horizon_days"`
	Metrics       Metrics           `json:"metrics"`
	InventoryData map[string]Series `json:"inventory_data"`
	Raw           json.RawMessage   `json:"-"`
}

// MarshalJSON writes the engine's object as received with horizon_days
// added. Results built without a raw body fall back to the typed fields.
func (r Result) MarshalJSON() ([]byte, error) {
	type typed Result
	if len(r.Raw) == 0 {
		return json.Marshal(typed(r))
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r.Raw, &fields); err != nil || fields == nil {
		return json.Marshal(typed(r))
	}
	horizon, err := json.Marshal(r.HorizonDays)
	if err != nil {
		return nil, err
	}
	fields["horizon_days"] = horizon
	return json.Marshal(fields)
}

type runResponse struct {
	Success       bool              `json:"success"`
	Metrics       *Metrics          `json:"metrics"`
	InventoryData map[string]Series `json:"inventory_data"`
	Error         string            `json:"error"`
	Detail        json.RawMessage   `json:"detail"`
}
