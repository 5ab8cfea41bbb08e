// Package validation runs whole-graph static analysis over a supply network.
// Checks live in the rules subpackage and register themselves on import.
package validation

import (
	"sort"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

type Report struct {
	Valid    bool      `json:"valid"`
	Errors   int       `json:"errors"`
	Warnings int       `json:"warnings"`
	Findings []Finding `json:"findings"`
}

// Validate runs every registered check against g. It does not modify g.
func Validate(g domain.Graph) Report {
	return Run(All(), g)
}

// Run applies the given checks in order and returns their findings with
// errors first, then by check order, then by the first related id.
func Run(checks []Check, g domain.Graph) Report {
	type ranked struct {
		f    Finding
		rank int
	}
	var all []ranked
	for i, c := range checks {
		for _, f := range c.Check(g) {
			if f.Check == "" {
				f.Check = c.Name()
			}
			if f.RelatedIDs == nil {
				f.RelatedIDs = []string{}
			}
			all = append(all, ranked{f: f, rank: i})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if sa, sb := severityOrder(a.f.Severity), severityOrder(b.f.Severity); sa != sb {
			return sa < sb
		}
		if a.rank != b.rank {
			return a.rank < b.rank
		}
		return firstID(a.f) < firstID(b.f)
	})

	r := Report{Findings: make([]Finding, 0, len(all))}
	for _, x := range all {
		r.Findings = append(r.Findings, x.f)
		if x.f.Severity == SeverityError {
			r.Errors++
		} else {
			r.Warnings++
		}
	}
	r.Valid = r.Errors == 0
	return r
}

func severityOrder(s Severity) int {
	if s == SeverityError {
		return 0
	}
	return 1
}

func firstID(f Finding) string {
	if len(f.RelatedIDs) == 0 {
		return ""
	}
	return f.RelatedIDs[0]
}
