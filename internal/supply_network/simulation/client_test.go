package simulation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph() domain.Graph {
	return domain.Graph{
		Nodes: []domain.Node{
			{
				ID: "supplier_1", Role: domain.RoleSupplier, Label: "Supplier 1",
				Parameters: domain.Parameters{
					Inventory: domain.Inventory{Capacity: 10000, InitialLevel: 10000, HoldingCost: 0.01},
					Supply:    &domain.Supply{SupplierType: domain.SupplierInfinite},
				},
			},
			{
				ID: "retailer_1", Role: domain.RoleRetailer, Label: "Retailer 1",
				Parameters: domain.Parameters{
					Inventory:     domain.Inventory{Capacity: 500, InitialLevel: 500, HoldingCost: 0.25},
					Replenishment: &domain.Replenishment{Policy: domain.PolicySS, PolicyS: 200, PolicyBigS: 500, PolicyR: 5, PolicyQ: 300},
					Pricing:       &domain.Pricing{BuyPrice: 300, SellPrice: 400},
				},
			},
		},
		Edges: []domain.Edge{{ID: "link_1", Source: "supplier_1", Target: "retailer_1", Parameters: domain.EdgeParams{Cost: 10, LeadTime: 5}}},
		Demands: []domain.Demand{{
			ID: "demand_1", Name: "Demand 1", TargetNode: "retailer_1",
			ArrivalInterval: 1, OrderQuantity: 400, DeliveryCost: 10, LeadTime: 5,
		}},
	}
}

const okBody = `{"success":true,"metrics":{"profit":1200.5,"revenue":5000,"total_cost":3799.5,"available_inv":42,"shortage":[3,120],"num_of_nodes":2},"inventory_data":{"retailer_1":{"time":[0,1],"level":[500,450]}}}`

func TestResult_MarshalKeepsEngineObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"metrics":{"profit":1,"demand_by_customers":[3,4],"num_of_nodes":2},"fulfillment_received_by_customers":{"retailer_1":[1]}}`))
	}))
	defer srv.Close()

	res, err := NewEngineClient(srv.URL, time.Second, 0).Run(context.Background(), sampleGraph(), 45)
	require.NoError(t, err)

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"horizon_days":45,"metrics":{"profit":1,"demand_by_customers":[3,4],"num_of_nodes":2},"fulfillment_received_by_customers":{"retailer_1":[1]}}`, string(out))

	typed, err := json.Marshal(Result{HorizonDays: 30, Metrics: Metrics{Profit: 5}})
	require.NoError(t, err)
	assert.Contains(t, string(typed), `"profit":5`)
}

func TestRun_Success(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/simulate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	c := NewEngineClient(srv.URL+"/", time.Second, 0)
	res, err := c.Run(context.Background(), sampleGraph(), 0)
	require.NoError(t, err)

	assert.JSONEq(t, okBody, string(res.Raw), "engine payload is kept unmodified")
	assert.Equal(t, 1200.5, res.Metrics.Profit)
	assert.Equal(t, 3.0, res.Metrics.ShortageOrders())
	assert.Equal(t, 120.0, res.Metrics.ShortageUnits())
	assert.Equal(t, []float64{500, 450}, res.InventoryData["retailer_1"].Level)
	assert.Equal(t, DefaultHorizonDays, res.HorizonDays)

	assert.EqualValues(t, 30, got["sim_time"])
	nodes := got["nodes"].([]any)
	require.Len(t, nodes, 2)
	data := nodes[1].(map[string]any)["data"].(map[string]any)
	assert.Equal(t, "retailer", data["nodeType"])
	assert.Equal(t, "Retailer 1", data["label"])
	assert.EqualValues(t, 200, data["policy_s"])
	assert.EqualValues(t, 500, data["policy_S"])
	assert.NotContains(t, data, "supplier_type")

	supplier := nodes[0].(map[string]any)["data"].(map[string]any)
	assert.Equal(t, "infinite", supplier["supplier_type"])
	assert.NotContains(t, supplier, "replenishment_policy")

	link := got["links"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"cost": 10.0, "lead_time": 5.0}, link["data"])
	demand := got["demands"].([]any)[0].(map[string]any)
	assert.Equal(t, "retailer_1", demand["target_node"])
}

func TestRun_Failures(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{
			name:    "engine exception",
			status:  http.StatusInternalServerError,
			body:    `{"detail":"Simulation failed: no demand"}`,
			message: "simulation engine reported failure: Simulation failed: no demand",
		},
		{
			name:    "explicit failure flag",
			status:  http.StatusOK,
			body:    `{"success":false,"error":"horizon too long"}`,
			message: "simulation engine reported failure: horizon too long",
		},
		{
			name:    "failure flag without message",
			status:  http.StatusOK,
			body:    `{"success":false}`,
			message: "simulation engine reported failure: unknown error",
		},
		{
			name:    "non json error page",
			status:  http.StatusBadGateway,
			body:    `bad gateway`,
			message: "simulation engine reported failure: status 502: bad gateway",
		},
		{
			name:    "malformed success",
			status:  http.StatusOK,
			body:    `{"success":`,
			message: "simulation engine reported failure: malformed response",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewEngineClient(srv.URL, time.Second, 0).Run(context.Background(), sampleGraph(), 10)
			var f *Failure
			require.ErrorAs(t, err, &f)
			assert.Equal(t, FailureEngine, f.Kind)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestRun_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewEngineClient(url, time.Second, 0).Run(context.Background(), sampleGraph(), 30)
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, FailureTransport, f.Kind)
	assert.Contains(t, err.Error(), "could not reach simulation engine: ")
}

func TestRun_CancelledWhileWaitingForLimiter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	c := NewEngineClient(srv.URL, time.Second, 0.001)
	_, err := c.Run(context.Background(), sampleGraph(), 30)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.Run(ctx, sampleGraph(), 30)
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, FailureTransport, f.Kind)
	assert.Contains(t, err.Error(), "rate limiter")
}
