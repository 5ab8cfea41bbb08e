package exchange

import (
	"errors"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/graph"
)

func TestImportJSON_MissingArraysAreEmpty(t *testing.T) {
	g, err := ImportJSON([]byte(`{"nodes":[{"id":"supplier_1","role":"supplier","label":"Supplier 1","parameters":{"capacity":1,"supplier_type":"finite"}}]}`))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 1)
	require.NotNil(t, g.Nodes[0].Parameters.Supply)
	assert.Equal(t, domain.SupplierFinite, g.Nodes[0].Parameters.SupplierType)
	assert.Nil(t, g.Nodes[0].Parameters.Replenishment)
	assert.NotNil(t, g.Edges)
	assert.NotNil(t, g.Demands)
}

func TestImportJSON_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "  ",
		"truncated":      `{"nodes":[`,
		"not an object":  `[1,2]`,
		"null":           `null`,
		"wrong type":     `{"nodes":"x"}`,
		"trailing":       `{} {}`,
		"unknown role":   `{"nodes":[{"id":"a","role":"warehouse"}]}`,
		"missing id":     `{"nodes":[{"role":"supplier"}]}`,
		"duplicate id":   `{"nodes":[{"id":"a","role":"supplier"}],"edges":[{"id":"a","source":"a","target":"a"}]}`,
		"demand with no": `{"demands":[{"name":"x"}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := ImportJSON([]byte(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))
			assert.True(t, g.IsEmpty())
		})
	}
}

func TestImportYAML(t *testing.T) {
	doc := `
nodes:
  - id: supplier_1
    role: supplier
    label: Supplier 1
    position: {x: 10, y: 20}
    parameters:
      capacity: 10000
      initial_level: 10000
      holding_cost: 0.01
      supplier_type: infinite
  - id: retailer_1
    role: retailer
    label: Retailer 1
    parameters:
      capacity: 500
      replenishment_policy: SS
      policy_s: 200
      policy_S: 500
      sell_price: 400
edges:
  - id: link_1
    source: supplier_1
    target: retailer_1
    parameters: {cost: 10, lead_time: 5}
demands:
  - id: demand_1
    name: Demand 1
    target_node: retailer_1
    arrival_interval: 1
    order_quantity: 400
`
	g, err := Import("network.yml", []byte(doc))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 2)
	assert.Equal(t, domain.Position{X: 10, Y: 20}, g.Nodes[0].Position)
	r := g.Nodes[1].Parameters
	require.NotNil(t, r.Replenishment)
	assert.Equal(t, 200, r.PolicyS)
	assert.Equal(t, 500, r.PolicyBigS)
	assert.Equal(t, 400.0, r.SellPrice)
	assert.Equal(t, domain.EdgeParams{Cost: 10, LeadTime: 5}, g.Edges[0].Parameters)
	assert.Equal(t, 400, g.Demands[0].OrderQuantity)

	_, err = ImportYAML([]byte("nodes: [\n"))
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = ImportYAML([]byte(""))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestExportJSON_EmptyGraph(t *testing.T) {
	out, err := ExportJSON(domain.Graph{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes":[],"edges":[],"demands":[]}`, string(out))
}

func TestExportImport_RoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("import(export(g)) == g", prop.ForAll(
		func(roles, links, demands []int, holding float64) bool {
			g := reachable(roles, links, demands, holding)
			data, err := ExportJSON(g)
			if err != nil {
				return false
			}
			back, err := ImportJSON(data)
			if err != nil {
				return false
			}
			return reflect.DeepEqual(g, back)
		},
		gen.SliceOfN(6, gen.IntRange(0, 3)),
		gen.SliceOfN(12, gen.IntRange(0, 5)),
		gen.SliceOf(gen.IntRange(0, 5)),
		gen.Float64Range(0, 5),
	))

	properties.TestingRun(t)
}

// reachable builds a graph through the public store operations only.
func reachable(roles, links, demands []int, holding float64) domain.Graph {
	all := domain.Roles()
	s := graph.NewStore(nil)
	var ids []string
	for _, r := range roles {
		n, err := s.AddNode(all[r%len(all)])
		if err == nil {
			ids = append(ids, n.ID)
		}
	}
	if len(ids) == 0 {
		return s.Snapshot()
	}
	label := "Renamed"
	_, _ = s.UpdateNode(ids[0], domain.NodePatch{Label: &label, HoldingCost: &holding})
	for i := 0; i+1 < len(links); i += 2 {
		_, _ = s.AddEdge(domain.EdgeCandidate{Source: ids[links[i]%len(ids)], Target: ids[links[i+1]%len(ids)]})
	}
	for _, d := range demands {
		_, _ = s.AddDemand(domain.DemandInput{TargetNode: ids[d%len(ids)]})
	}
	return s.Snapshot()
}
