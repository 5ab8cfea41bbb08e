package graph

import (
	"testing"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildStore grows a store from generated choices: one node per role index,
// then links between node indexes (rejected candidates are skipped), then
// demands on node indexes.
func buildStore(roles []int, links []int, demands []int) *Store {
	all := domain.Roles()
	s := NewStore(nil)
	var ids []string
	for _, r := range roles {
		n, err := s.AddNode(all[r%len(all)])
		if err == nil {
			ids = append(ids, n.ID)
		}
	}
	if len(ids) == 0 {
		return s
	}
	for i := 0; i+1 < len(links); i += 2 {
		_, _ = s.AddEdge(domain.EdgeCandidate{
			Source: ids[links[i]%len(ids)],
			Target: ids[links[i+1]%len(ids)],
		})
	}
	for _, d := range demands {
		_, _ = s.AddDemand(domain.DemandInput{TargetNode: ids[d%len(ids)]})
	}
	return s
}

func TestGraphProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	roles := gen.SliceOfN(8, gen.IntRange(0, 3))
	links := gen.SliceOfN(16, gen.IntRange(0, 7))
	demands := gen.SliceOf(gen.IntRange(0, 7))

	properties.Property("deleting a node removes exactly its cascade", prop.ForAll(
		func(roles, links, demands []int, pick int) bool {
			s := buildStore(roles, links, demands)
			before := s.Snapshot()
			if len(before.Nodes) == 0 {
				return true
			}
			victim := before.Nodes[pick%len(before.Nodes)].ID

			imp, err := s.DeleteNode(victim)
			if err != nil {
				return false
			}
			after := s.Snapshot()

			if len(after.Nodes) != len(before.Nodes)-1 {
				return false
			}
			if len(after.Edges) != len(before.Edges)-len(imp.EdgeIDs) {
				return false
			}
			if len(after.Demands) != len(before.Demands)-len(imp.DemandIDs) {
				return false
			}
			for _, e := range after.Edges {
				if e.Source == victim || e.Target == victim {
					return false
				}
			}
			for _, d := range after.Demands {
				if d.TargetNode == victim {
					return false
				}
			}
			return true
		},
		roles, links, demands, gen.IntRange(0, 100),
	))

	properties.Property("links into suppliers are always rejected", prop.ForAll(
		func(roles, links []int, from int) bool {
			withSupplier := append(append([]int{}, roles...), 0)
			s := buildStore(withSupplier, links, nil)
			g := s.Snapshot()
			src := g.Nodes[from%len(g.Nodes)].ID
			for _, n := range g.Nodes {
				if n.Role != domain.RoleSupplier {
					continue
				}
				if _, err := s.AddEdge(domain.EdgeCandidate{Source: src, Target: n.ID}); err == nil {
					return false
				}
			}
			return len(s.Snapshot().Edges) == len(g.Edges)
		},
		roles, links, gen.IntRange(0, 100),
	))

	properties.Property("no stored link violates the connection rules", prop.ForAll(
		func(roles, links []int) bool {
			g := buildStore(roles, links, nil).Snapshot()
			for _, e := range g.Edges {
				if e.Source == e.Target {
					return false
				}
				dst, ok := g.Node(e.Target)
				if !ok || dst.Role == domain.RoleSupplier {
					return false
				}
			}
			return true
		},
		roles, links,
	))

	properties.Property("ids stay unique across deletions", prop.ForAll(
		func(roles, links, demands []int, pick int) bool {
			s := buildStore(roles, links, demands)
			g := s.Snapshot()
			if len(g.Nodes) > 0 {
				_, _ = s.DeleteNode(g.Nodes[pick%len(g.Nodes)].ID)
			}

			seen := map[string]bool{}
			for _, n := range g.Nodes {
				seen[n.ID] = true
			}
			for _, e := range g.Edges {
				seen[e.ID] = true
			}
			for _, d := range g.Demands {
				seen[d.ID] = true
			}

			for _, role := range domain.Roles() {
				n, err := s.AddNode(role)
				if err != nil || seen[n.ID] {
					return false
				}
				seen[n.ID] = true
			}
			return true
		},
		roles, links, demands, gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
