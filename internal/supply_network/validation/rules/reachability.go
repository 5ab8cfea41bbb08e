package rules

import (
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation"
)

type reachability struct{}

func (reachability) Name() string { return "reachability" }
func (reachability) Rank() int    { return 20 }

// Check walks links forward from every supplier at once and flags each
// non-supplier node the walk never reaches. An inbound link alone does not
// satisfy it: nodes fed only from a cycle with no supplier upstream, such as
// two retailers linked to each other, are still flagged. Nodes with no links
// at all are reported by isolated as well.
func (reachability) Check(g domain.Graph) []validation.Finding {
	nodes := nodeSet(g)
	next := successors(g, nodes)

	seen := map[string]bool{}
	var queue []string
	for _, n := range g.Nodes {
		if n.Role == domain.RoleSupplier {
			seen[n.ID] = true
			queue = append(queue, n.ID)
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, to := range next[id] {
			if !seen[to] {
				seen[to] = true
				queue = append(queue, to)
			}
		}
	}

	var out []validation.Finding
	for _, n := range g.Nodes {
		if n.Role == domain.RoleSupplier || seen[n.ID] {
			continue
		}
		out = append(out, validation.Finding{
			Severity:   validation.SeverityWarning,
			Message:    "unreachable from any supplier",
			Detail:     n.Label,
			RelatedIDs: []string{n.ID},
		})
	}
	return out
}

func init() { validation.Register(reachability{}) }
