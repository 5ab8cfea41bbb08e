package validation

import "github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Finding struct {
	Severity   Severity `json:"severity"`
	Check      string   `json:"check"`
	Message    string   `json:"message"`
	Detail     string   `json:"detail,omitempty"`
	RelatedIDs []string `json:"related_ids"`
}

// Check is one whole-graph rule. Rank fixes its place in the report order.
type Check interface {
	Name() string
	Rank() int
	Check(g domain.Graph) []Finding
}
