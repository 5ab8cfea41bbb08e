package rules

import (
	"fmt"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation"
)

type replenishmentPolicy struct{}

func (replenishmentPolicy) Name() string { return "replenishment_policy" }
func (replenishmentPolicy) Rank() int    { return 40 }

func (replenishmentPolicy) Check(g domain.Graph) []validation.Finding {
	var out []validation.Finding
	for _, n := range g.Nodes {
		r := n.Parameters.Replenishment
		if r == nil {
			continue
		}
		var detail string
		switch r.Policy {
		case domain.PolicySS:
			if r.PolicyS >= r.PolicyBigS {
				detail = fmt.Sprintf("SS policy needs s < S, got s=%d S=%d", r.PolicyS, r.PolicyBigS)
			}
		case domain.PolicyRQ:
			if r.PolicyR <= 0 || r.PolicyQ <= 0 {
				detail = fmt.Sprintf("RQ policy needs R > 0 and Q > 0, got R=%d Q=%d", r.PolicyR, r.PolicyQ)
			}
		default:
			detail = fmt.Sprintf("unknown policy %q", r.Policy)
		}
		if detail == "" {
			continue
		}
		out = append(out, validation.Finding{
			Severity:   validation.SeverityError,
			Message:    "invalid replenishment policy",
			Detail:     fmt.Sprintf("%s: %s", n.Label, detail),
			RelatedIDs: []string{n.ID},
		})
	}
	return out
}

func init() { validation.Register(replenishmentPolicy{}) }
