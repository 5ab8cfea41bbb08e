package rules

import (
	"fmt"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation"
)

// danglingLink catches links whose endpoints are gone. The store cannot
// produce these; imported documents can.
type danglingLink struct{}

func (danglingLink) Name() string { return "dangling_link" }
func (danglingLink) Rank() int    { return 60 }

func (danglingLink) Check(g domain.Graph) []validation.Finding {
	nodes := nodeSet(g)
	var out []validation.Finding
	for _, e := range g.Edges {
		var missing []string
		for _, id := range []string{e.Source, e.Target} {
			if _, ok := nodes[id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) == 0 {
			continue
		}
		out = append(out, validation.Finding{
			Severity:   validation.SeverityError,
			Message:    "link references unknown node",
			Detail:     fmt.Sprintf("link %s: missing %v", e.ID, missing),
			RelatedIDs: []string{e.ID},
		})
	}
	return out
}

func init() { validation.Register(danglingLink{}) }
