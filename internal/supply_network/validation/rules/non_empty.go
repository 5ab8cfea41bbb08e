package rules

import (
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation"
)

type nonEmpty struct{}

func (nonEmpty) Name() string { return "non_empty" }
func (nonEmpty) Rank() int    { return 50 }

func (nonEmpty) Check(g domain.Graph) []validation.Finding {
	var out []validation.Finding
	if len(g.Nodes) == 0 {
		out = append(out, validation.Finding{
			Severity: validation.SeverityError,
			Message:  "network requires at least one node",
		})
	}
	if len(g.Demands) == 0 {
		out = append(out, validation.Finding{
			Severity: validation.SeverityError,
			Message:  "network requires at least one demand",
		})
	}
	return out
}

func init() { validation.Register(nonEmpty{}) }
