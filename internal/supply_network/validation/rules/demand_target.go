package rules

import (
	"fmt"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation"
)

type demandTarget struct{}

func (demandTarget) Name() string { return "demand_target" }
func (demandTarget) Rank() int    { return 10 }

func (demandTarget) Check(g domain.Graph) []validation.Finding {
	nodes := nodeSet(g)
	var out []validation.Finding
	for _, d := range g.Demands {
		if _, ok := nodes[d.TargetNode]; ok {
			continue
		}
		out = append(out, validation.Finding{
			Severity:   validation.SeverityError,
			Message:    "demand target does not exist",
			Detail:     fmt.Sprintf("demand %q targets unknown node %q", d.Name, d.TargetNode),
			RelatedIDs: []string{d.ID},
		})
	}
	return out
}

func init() { validation.Register(demandTarget{}) }
