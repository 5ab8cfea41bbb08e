package rules

import (
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation"
)

type isolated struct{}

func (isolated) Name() string { return "isolated" }
func (isolated) Rank() int    { return 30 }

func (isolated) Check(g domain.Graph) []validation.Finding {
	degree := map[string]int{}
	for _, e := range g.Edges {
		degree[e.Source]++
		degree[e.Target]++
	}

	var out []validation.Finding
	for _, n := range g.Nodes {
		if degree[n.ID] > 0 {
			continue
		}
		out = append(out, validation.Finding{
			Severity:   validation.SeverityWarning,
			Message:    "isolated node",
			Detail:     n.Label,
			RelatedIDs: []string{n.ID},
		})
	}
	return out
}

func init() { validation.Register(isolated{}) }
