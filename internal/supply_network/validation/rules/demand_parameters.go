package rules

import (
	"fmt"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation"
)

type demandParameters struct{}

func (demandParameters) Name() string { return "demand_parameters" }
func (demandParameters) Rank() int    { return 70 }

func (demandParameters) Check(g domain.Graph) []validation.Finding {
	var out []validation.Finding
	for _, d := range g.Demands {
		var problem string
		switch {
		case d.ArrivalInterval <= 0:
			problem = fmt.Sprintf("arrival_interval must be positive, got %g", d.ArrivalInterval)
		case d.OrderQuantity < 0:
			problem = fmt.Sprintf("order_quantity must not be negative, got %d", d.OrderQuantity)
		case d.DeliveryCost < 0:
			problem = fmt.Sprintf("delivery_cost must not be negative, got %g", d.DeliveryCost)
		case d.LeadTime < 0:
			problem = fmt.Sprintf("lead_time must not be negative, got %g", d.LeadTime)
		default:
			continue
		}
		out = append(out, validation.Finding{
			Severity:   validation.SeverityError,
			Message:    "invalid demand parameters",
			Detail:     fmt.Sprintf("%s: %s", d.Name, problem),
			RelatedIDs: []string{d.ID},
		})
	}
	return out
}

func init() { validation.Register(demandParameters{}) }
