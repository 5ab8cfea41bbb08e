package exchange

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/simulation"
)

// ResultsCSV renders the headline metrics of a run as Metric,Value rows.
// Shortage cells are blank when the engine did not report the pair.
func ResultsCSV(m simulation.Metrics) ([]byte, error) {
	rows := [][]string{
		{"Metric", "Value"},
		{"Profit", formatFloat(m.Profit)},
		{"Revenue", formatFloat(m.Revenue)},
		{"Total Cost", formatFloat(m.TotalCost)},
		{"Available Inventory", formatFloat(m.AvailableInv)},
		{"Shortage (Orders)", pairCell(m.Shortage, 0)},
		{"Shortage (Units)", pairCell(m.Shortage, 1)},
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pairCell(p []float64, i int) string {
	if i >= len(p) {
		return ""
	}
	return formatFloat(p[i])
}
