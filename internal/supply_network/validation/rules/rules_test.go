package rules

import (
	"testing"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/factory"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(t *testing.T, id string, role domain.Role) domain.Node {
	t.Helper()
	p, err := factory.DefaultParameters(role)
	require.NoError(t, err)
	return domain.Node{ID: id, Role: role, Label: id, Parameters: p}
}

func link(id, src, dst string) domain.Edge {
	return domain.Edge{ID: id, Source: src, Target: dst, Parameters: factory.DefaultEdgeParams}
}

func demand(id, target string) domain.Demand {
	return domain.Demand{ID: id, Name: id, TargetNode: target, ArrivalInterval: 1, OrderQuantity: 400, DeliveryCost: 10, LeadTime: 5}
}

func messages(r validation.Report) []string {
	out := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		out = append(out, f.Message)
	}
	return out
}

func TestRegisteredChecks(t *testing.T) {
	var names []string
	for _, c := range validation.All() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{
		"demand_target",
		"reachability",
		"isolated",
		"replenishment_policy",
		"non_empty",
		"dangling_link",
		"demand_parameters",
	}, names)
}

func TestValidate_EmptyGraph(t *testing.T) {
	r := validation.Validate(domain.Graph{})
	assert.Equal(t, []string{
		"network requires at least one node",
		"network requires at least one demand",
	}, messages(r))
	assert.Equal(t, 2, r.Errors)
	assert.Zero(t, r.Warnings)
}

func TestValidate_MinimalNetwork(t *testing.T) {
	g := domain.Graph{
		Nodes:   []domain.Node{node(t, "supplier_1", domain.RoleSupplier), node(t, "retailer_1", domain.RoleRetailer)},
		Edges:   []domain.Edge{link("link_1", "supplier_1", "retailer_1")},
		Demands: []domain.Demand{demand("demand_1", "retailer_1")},
	}
	r := validation.Validate(g)
	assert.Zero(t, r.Errors)
	assert.True(t, r.Valid)
	assert.Empty(t, r.Findings)
}

func TestValidate_Idempotent(t *testing.T) {
	g := domain.Graph{
		Nodes: []domain.Node{
			node(t, "retailer_2", domain.RoleRetailer),
			node(t, "retailer_1", domain.RoleRetailer),
			node(t, "supplier_1", domain.RoleSupplier),
		},
		Edges:   []domain.Edge{link("link_1", "ghost", "retailer_1")},
		Demands: []domain.Demand{demand("demand_1", "nowhere")},
	}
	before := g.Clone()

	a := validation.Validate(g)
	b := validation.Validate(g)
	assert.Equal(t, a, b)
	assert.Equal(t, before, g)
}

func TestValidate_Ordering(t *testing.T) {
	bad := node(t, "distributor_1", domain.RoleDistributor)
	bad.Parameters.PolicyS = 2000

	g := domain.Graph{
		Nodes: []domain.Node{
			node(t, "retailer_2", domain.RoleRetailer),
			node(t, "retailer_1", domain.RoleRetailer),
			bad,
		},
		Demands: []domain.Demand{demand("demand_1", "ghost")},
	}
	r := validation.Validate(g)

	var got []string
	for _, f := range r.Findings {
		got = append(got, f.Check+":"+f.RelatedIDs[0])
	}
	assert.Equal(t, []string{
		"demand_target:demand_1",
		"replenishment_policy:distributor_1",
		"reachability:distributor_1",
		"reachability:retailer_1",
		"reachability:retailer_2",
		"isolated:distributor_1",
		"isolated:retailer_1",
		"isolated:retailer_2",
	}, got)
}

func TestReachability(t *testing.T) {
	g := domain.Graph{
		Nodes: []domain.Node{
			node(t, "supplier_1", domain.RoleSupplier),
			node(t, "factory_1", domain.RoleFactory),
			node(t, "distributor_1", domain.RoleDistributor),
			node(t, "retailer_1", domain.RoleRetailer),
			node(t, "retailer_2", domain.RoleRetailer),
		},
		Edges: []domain.Edge{
			link("link_1", "supplier_1", "factory_1"),
			link("link_2", "factory_1", "distributor_1"),
			// inbound link but no path from a supplier
			link("link_3", "retailer_2", "retailer_1"),
		},
	}
	fs := reachability{}.Check(g)
	var ids []string
	for _, f := range fs {
		assert.Equal(t, "unreachable from any supplier", f.Message)
		assert.Equal(t, validation.SeverityWarning, f.Severity)
		ids = append(ids, f.RelatedIDs[0])
	}
	assert.Equal(t, []string{"retailer_1", "retailer_2"}, ids)
}

func TestReachability_CycleWithoutSupplier(t *testing.T) {
	g := domain.Graph{
		Nodes: []domain.Node{
			node(t, "supplier_1", domain.RoleSupplier),
			node(t, "retailer_1", domain.RoleRetailer),
			node(t, "retailer_2", domain.RoleRetailer),
		},
		Edges: []domain.Edge{
			link("link_1", "retailer_1", "retailer_2"),
			link("link_2", "retailer_2", "retailer_1"),
		},
	}
	fs := reachability{}.Check(g)
	require.Len(t, fs, 2, "both retailers have an inbound link yet no supplier feeds them")
	assert.Equal(t, "retailer_1", fs[0].RelatedIDs[0])
	assert.Equal(t, "retailer_2", fs[1].RelatedIDs[0])
	iso := isolated{}.Check(g)
	require.Len(t, iso, 1)
	assert.Equal(t, "supplier_1", iso[0].RelatedIDs[0])
}

func TestIsolated(t *testing.T) {
	g := domain.Graph{
		Nodes: []domain.Node{
			node(t, "supplier_1", domain.RoleSupplier),
			node(t, "retailer_1", domain.RoleRetailer),
			node(t, "supplier_2", domain.RoleSupplier),
		},
		Edges: []domain.Edge{link("link_1", "supplier_1", "retailer_1")},
	}
	fs := isolated{}.Check(g)
	require.Len(t, fs, 1)
	assert.Equal(t, "isolated node", fs[0].Message)
	assert.Equal(t, []string{"supplier_2"}, fs[0].RelatedIDs)
}

func TestReplenishmentPolicy(t *testing.T) {
	ok := node(t, "retailer_1", domain.RoleRetailer)

	ssBad := node(t, "retailer_2", domain.RoleRetailer)
	ssBad.Parameters.PolicyS = ssBad.Parameters.PolicyBigS

	rqOK := node(t, "distributor_1", domain.RoleDistributor)
	rqOK.Parameters.Policy = domain.PolicyRQ
	rqOK.Parameters.PolicyS = 5000

	rqBad := node(t, "distributor_2", domain.RoleDistributor)
	rqBad.Parameters.Policy = domain.PolicyRQ
	rqBad.Parameters.PolicyQ = 0

	unknown := node(t, "factory_1", domain.RoleFactory)
	unknown.Parameters.Policy = domain.Policy("JIT")

	g := domain.Graph{Nodes: []domain.Node{ok, ssBad, rqOK, rqBad, unknown, node(t, "supplier_1", domain.RoleSupplier)}}
	fs := replenishmentPolicy{}.Check(g)

	var ids []string
	for _, f := range fs {
		assert.Equal(t, "invalid replenishment policy", f.Message)
		assert.Equal(t, validation.SeverityError, f.Severity)
		ids = append(ids, f.RelatedIDs[0])
	}
	assert.Equal(t, []string{"retailer_2", "distributor_2", "factory_1"}, ids)
}

func TestNonEmpty(t *testing.T) {
	g := domain.Graph{Nodes: []domain.Node{node(t, "retailer_1", domain.RoleRetailer)}}
	fs := nonEmpty{}.Check(g)
	require.Len(t, fs, 1)
	assert.Equal(t, "network requires at least one demand", fs[0].Message)
}

func TestDemandTarget(t *testing.T) {
	g := domain.Graph{
		Nodes:   []domain.Node{node(t, "retailer_1", domain.RoleRetailer)},
		Demands: []domain.Demand{demand("demand_1", "retailer_1"), demand("demand_2", "retailer_9")},
	}
	fs := demandTarget{}.Check(g)
	require.Len(t, fs, 1)
	assert.Equal(t, []string{"demand_2"}, fs[0].RelatedIDs)
	assert.Contains(t, fs[0].Detail, "retailer_9")
}

func TestDanglingLink(t *testing.T) {
	g := domain.Graph{
		Nodes: []domain.Node{node(t, "supplier_1", domain.RoleSupplier), node(t, "retailer_1", domain.RoleRetailer)},
		Edges: []domain.Edge{
			link("link_1", "supplier_1", "retailer_1"),
			link("link_2", "supplier_1", "retailer_5"),
		},
	}
	fs := danglingLink{}.Check(g)
	require.Len(t, fs, 1)
	assert.Equal(t, "link references unknown node", fs[0].Message)
	assert.Equal(t, []string{"link_2"}, fs[0].RelatedIDs)
}

func TestDemandParameters(t *testing.T) {
	zero := demand("demand_2", "r")
	zero.ArrivalInterval = 0
	neg := demand("demand_3", "r")
	neg.DeliveryCost = -1

	g := domain.Graph{Demands: []domain.Demand{demand("demand_1", "r"), zero, neg}}
	fs := demandParameters{}.Check(g)
	require.Len(t, fs, 2)
	assert.Equal(t, []string{"demand_2"}, fs[0].RelatedIDs)
	assert.Contains(t, fs[1].Detail, "delivery_cost")
}
