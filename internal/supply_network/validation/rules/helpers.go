package rules

import "github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"

func nodeSet(g domain.Graph) map[string]domain.Node {
	out := make(map[string]domain.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		out[n.ID] = n
	}
	return out
}

// successors maps each node id to the targets of its outgoing links. Links
// with a missing endpoint are left out.
func successors(g domain.Graph, nodes map[string]domain.Node) map[string][]string {
	out := map[string][]string{}
	for _, e := range g.Edges {
		if _, ok := nodes[e.Source]; !ok {
			continue
		}
		if _, ok := nodes[e.Target]; !ok {
			continue
		}
		out[e.Source] = append(out[e.Source], e.Target)
	}
	return out
}
