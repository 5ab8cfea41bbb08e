package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/simulation"
)

func TestResultsCSV(t *testing.T) {
	out, err := ResultsCSV(simulation.Metrics{
		Profit:       1200.5,
		Revenue:      5000,
		TotalCost:    3799.5,
		AvailableInv: 42,
		Shortage:     []float64{3, 120},
	})
	require.NoError(t, err)
	assert.Equal(t, "Metric,Value\n"+
		"Profit,1200.5\n"+
		"Revenue,5000\n"+
		"Total Cost,3799.5\n"+
		"Available Inventory,42\n"+
		"Shortage (Orders),3\n"+
		"Shortage (Units),120\n", string(out))
}

func TestResultsCSV_NoShortageReported(t *testing.T) {
	out, err := ResultsCSV(simulation.Metrics{Profit: -10})
	require.NoError(t, err)
	assert.Contains(t, string(out), "Profit,-10\n")
	assert.Contains(t, string(out), "Shortage (Orders),\n")
	assert.Contains(t, string(out), "Shortage (Units),\n")
}
