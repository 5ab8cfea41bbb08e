package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/logging"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/exchange"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/simulation"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation"
	_ "github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation/rules"
)

// Scenario is a named snapshot of one run's metrics.
type Scenario struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Metrics   simulation.Metrics `json:"metrics"`
	CreatedAt time.Time          `json:"created_at"`
}

// ComparisonRow holds one metric across the compared scenarios, in
// scenario order.
type ComparisonRow struct {
	Metric string    `json:"metric"`
	Values []float64 `json:"values"`
}

type Comparison struct {
	Scenarios []Scenario      `json:"scenarios"`
	Rows      []ComparisonRow `json:"rows"`
	// BestProfit is the id of the most profitable scenario.
	BestProfit string `json:"best_profit"`
}

// Validate runs the network checks on the current graph.
func (w *Workspace) Validate(ctx context.Context) validation.Report {
	w.lock()
	g := w.store.Snapshot()
	w.mu.Unlock()

	report := validation.Validate(g)
	if w.metrics != nil {
		for _, f := range report.Findings {
			w.metrics.RecordFinding(f.Check, string(f.Severity))
		}
	}
	logging.New(ctx).Infof("workspace.validate", "owner=%s errors=%d warnings=%d", w.owner, report.Errors, report.Warnings)
	return report
}

// Simulate sends the current graph to the engine. The workspace stays
// editable while the run is in progress; a failed run keeps the previous
// result.
func (w *Workspace) Simulate(ctx context.Context, horizonDays int) (*simulation.Result, error) {
	w.lock()
	g := w.store.Snapshot()
	w.mu.Unlock()

	start := time.Now()
	res, err := w.engine.Run(ctx, g, horizonDays)
	if w.metrics != nil {
		w.metrics.RecordSimulation(simulationOutcome(err), time.Since(start))
	}
	if err != nil {
		logging.New(ctx).Error("workspace.simulate", err)
		return nil, err
	}

	w.lock()
	w.lastResult = res
	w.mu.Unlock()
	return res, nil
}

func simulationOutcome(err error) string {
	var f *simulation.Failure
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &f) && f.Kind == simulation.FailureTransport:
		return "transport_error"
	default:
		return "engine_error"
	}
}

// LastResult returns the most recent successful run.
func (w *Workspace) LastResult() (*simulation.Result, error) {
	w.lock()
	defer w.mu.Unlock()
	if w.lastResult == nil {
		return nil, ErrNoResult
	}
	return w.lastResult, nil
}

// ResultsCSV exports the headline metrics of the last run.
func (w *Workspace) ResultsCSV() ([]byte, error) {
	res, err := w.LastResult()
	if err != nil {
		return nil, err
	}
	return exchange.ResultsCSV(res.Metrics)
}

func (w *Workspace) SaveScenario(name string) (Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Scenario{}, ErrNameRequired
	}
	w.lock()
	defer w.mu.Unlock()
	if w.lastResult == nil {
		return Scenario{}, ErrNoResult
	}
	w.scenarioSeq++
	s := Scenario{
		ID:        fmt.Sprintf("scenario_%d", w.scenarioSeq),
		Name:      name,
		Metrics:   w.lastResult.Metrics,
		CreatedAt: w.now().UTC(),
	}
	w.scenarios = append(w.scenarios, s)
	return s, nil
}

func (w *Workspace) Scenarios() []Scenario {
	w.lock()
	defer w.mu.Unlock()
	return append([]Scenario{}, w.scenarios...)
}

func (w *Workspace) DeleteScenario(id string) error {
	w.lock()
	defer w.mu.Unlock()
	for i, s := range w.scenarios {
		if s.ID == id {
			w.scenarios = append(w.scenarios[:i:i], w.scenarios[i+1:]...)
			return nil
		}
	}
	return ErrScenarioNotFound
}

// CompareScenarios lines up the saved scenarios metric by metric.
func (w *Workspace) CompareScenarios() (Comparison, error) {
	scenarios := w.Scenarios()
	if len(scenarios) < 2 {
		return Comparison{}, ErrNotEnoughScenarios
	}

	metrics := []struct {
		name string
		get  func(simulation.Metrics) float64
	}{
		{"Profit", func(m simulation.Metrics) float64 { return m.Profit }},
		{"Revenue", func(m simulation.Metrics) float64 { return m.Revenue }},
		{"Total Cost", func(m simulation.Metrics) float64 { return m.TotalCost }},
		{"Available Inventory", func(m simulation.Metrics) float64 { return m.AvailableInv }},
		{"Shortage (Orders)", simulation.Metrics.ShortageOrders},
		{"Shortage (Units)", simulation.Metrics.ShortageUnits},
	}

	out := Comparison{Scenarios: scenarios, Rows: make([]ComparisonRow, 0, len(metrics))}
	for _, m := range metrics {
		row := ComparisonRow{Metric: m.name, Values: make([]float64, len(scenarios))}
		for i, s := range scenarios {
			row.Values[i] = m.get(s.Metrics)
		}
		out.Rows = append(out.Rows, row)
	}

	best := scenarios[0]
	for _, s := range scenarios[1:] {
		if s.Metrics.Profit > best.Metrics.Profit {
			best = s
		}
	}
	out.BestProfit = best.ID
	return out, nil
}

// Export renders the current graph as a JSON document.
func (w *Workspace) Export() ([]byte, error) {
	w.lock()
	defer w.mu.Unlock()
	return exchange.ExportJSON(w.store.Snapshot())
}

// Import replaces the current graph with a document. A malformed document
// leaves the workspace untouched.
func (w *Workspace) Import(ctx context.Context, filename string, data []byte) (View, error) {
	g, err := exchange.Import(filename, data)
	if err != nil {
		logging.New(ctx).Warnf("workspace.import", "owner=%s rejected document: %v", w.owner, err)
		return View{}, err
	}
	w.lock()
	defer w.mu.Unlock()
	w.store.Replace(g)
	w.record("import", nil)
	return w.viewLocked(), nil
}
