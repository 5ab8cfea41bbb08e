package graph

import (
	"fmt"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

func notApplicable(field string, role domain.Role) error {
	return &ParamError{Field: field, Reason: fmt.Sprintf("not applicable to %s nodes", role)}
}

// applyNodePatch writes the set fields of p into n. A field belonging to a
// parameter group the node's role does not carry is rejected, and n is left
// as it was.
func applyNodePatch(n *domain.Node, p domain.NodePatch) error {
	params := n.Parameters.Clone()

	if p.Capacity != nil {
		params.Capacity = *p.Capacity
	}
	if p.InitialLevel != nil {
		params.InitialLevel = *p.InitialLevel
	}
	if p.HoldingCost != nil {
		params.HoldingCost = *p.HoldingCost
	}

	if p.Policy != nil || p.PolicyS != nil || p.PolicyBigS != nil || p.PolicyR != nil || p.PolicyQ != nil {
		r := params.Replenishment
		if r == nil {
			return notApplicable("replenishment_policy", n.Role)
		}
		if p.Policy != nil {
			r.Policy = *p.Policy
		}
		if p.PolicyS != nil {
			r.PolicyS = *p.PolicyS
		}
		if p.PolicyBigS != nil {
			r.PolicyBigS = *p.PolicyBigS
		}
		if p.PolicyR != nil {
			r.PolicyR = *p.PolicyR
		}
		if p.PolicyQ != nil {
			r.PolicyQ = *p.PolicyQ
		}
	}

	if p.BuyPrice != nil || p.SellPrice != nil {
		if params.Pricing == nil {
			field := "sell_price"
			if p.BuyPrice != nil {
				field = "buy_price"
			}
			return notApplicable(field, n.Role)
		}
		if p.BuyPrice != nil {
			params.BuyPrice = *p.BuyPrice
		}
		if p.SellPrice != nil {
			params.SellPrice = *p.SellPrice
		}
	}

	if p.SupplierType != nil {
		if params.Supply == nil {
			return notApplicable("supplier_type", n.Role)
		}
		switch *p.SupplierType {
		case domain.SupplierInfinite, domain.SupplierFinite:
		default:
			return &ParamError{Field: "supplier_type", Reason: fmt.Sprintf("unknown supplier type %q", *p.SupplierType)}
		}
		params.SupplierType = *p.SupplierType
	}

	if p.ManufacturingCost != nil || p.ManufacturingTime != nil || p.BatchSize != nil {
		m := params.Manufacturing
		if m == nil {
			return notApplicable("manufacturing_cost", n.Role)
		}
		if p.ManufacturingCost != nil {
			m.ManufacturingCost = *p.ManufacturingCost
		}
		if p.ManufacturingTime != nil {
			m.ManufacturingTime = *p.ManufacturingTime
		}
		if p.BatchSize != nil {
			m.BatchSize = *p.BatchSize
		}
	}

	if p.Label != nil {
		n.Label = *p.Label
	}
	if p.Position != nil {
		n.Position = *p.Position
	}
	n.Parameters = params
	return nil
}
