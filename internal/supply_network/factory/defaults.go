package factory

import "github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"

// defaults holds one parameter table per role. Adding a role without an entry
// here makes DefaultParameters return ErrInvalidRole.
var defaults = map[domain.Role]func() domain.Parameters{
	domain.RoleSupplier: func() domain.Parameters {
		return domain.Parameters{
			Inventory: domain.Inventory{Capacity: 10000, InitialLevel: 10000, HoldingCost: 0.01},
			Supply:    &domain.Supply{SupplierType: domain.SupplierInfinite},
		}
	},
	domain.RoleFactory: func() domain.Parameters {
		return domain.Parameters{
			Inventory: domain.Inventory{Capacity: 2500, InitialLevel: 2500, HoldingCost: 0.02},
			Replenishment: &domain.Replenishment{
				Policy: domain.PolicySS, PolicyS: 1000, PolicyBigS: 2500, PolicyR: 7, PolicyQ: 1500,
			},
			Pricing: &domain.Pricing{SellPrice: 30},
			Manufacturing: &domain.Manufacturing{
				ManufacturingCost: 20, ManufacturingTime: 1, BatchSize: 1000,
			},
		}
	},
	domain.RoleDistributor: func() domain.Parameters {
		return domain.Parameters{
			Inventory: domain.Inventory{Capacity: 1000, InitialLevel: 1000, HoldingCost: 0.22},
			Replenishment: &domain.Replenishment{
				Policy: domain.PolicySS, PolicyS: 400, PolicyBigS: 1000, PolicyR: 7, PolicyQ: 500,
			},
			Pricing: &domain.Pricing{BuyPrice: 150, SellPrice: 300},
		}
	},
	domain.RoleRetailer: func() domain.Parameters {
		return domain.Parameters{
			Inventory: domain.Inventory{Capacity: 500, InitialLevel: 500, HoldingCost: 0.25},
			Replenishment: &domain.Replenishment{
				Policy: domain.PolicySS, PolicyS: 200, PolicyBigS: 500, PolicyR: 5, PolicyQ: 300,
			},
			Pricing: &domain.Pricing{BuyPrice: 300, SellPrice: 400},
		}
	},
}

// DefaultParameters returns a fresh copy of the default table for role.
func DefaultParameters(role domain.Role) (domain.Parameters, error) {
	fn, ok := defaults[role]
	if !ok {
		return domain.Parameters{}, domain.ErrInvalidRole
	}
	return fn(), nil
}

// Link and demand defaults applied when the caller leaves fields unset.
var (
	DefaultEdgeParams = domain.EdgeParams{Cost: 10, LeadTime: 5}

	DefaultArrivalInterval = 1.0
	DefaultOrderQuantity   = 400
	DefaultDeliveryCost    = 10.0
	DefaultDemandLeadTime  = 5.0
)

const (
	originX    = 250.0
	originY    = 250.0
	spreadSize = 100.0
)
