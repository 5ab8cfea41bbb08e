// Package connection decides whether a link may be drawn between two nodes.
package connection

import (
	"errors"
	"fmt"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
)

type Reason string

const (
	ReasonSelfLoop           Reason = "self-loop"
	ReasonSupplierTarget     Reason = "supplier cannot be a target"
	ReasonSupplierToSupplier Reason = "supplier-to-supplier"
	ReasonUnknownNode        Reason = "unknown node"
)

// Rejection is returned for a topologically illegal link.
type Rejection struct {
	Reason Reason
	Source string
	Target string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("connection %s -> %s rejected: %s", r.Source, r.Target, r.Reason)
}

// Validate applies the connection rules in order; the first failing rule wins.
// Any source may feed any non-supplier target.
func Validate(source, target string, nodes []domain.Node) error {
	if source == target {
		return &Rejection{Reason: ReasonSelfLoop, Source: source, Target: target}
	}

	var src, dst *domain.Node
	for i := range nodes {
		switch nodes[i].ID {
		case source:
			src = &nodes[i]
		case target:
			dst = &nodes[i]
		}
	}
	if src == nil || dst == nil {
		return &Rejection{Reason: ReasonUnknownNode, Source: source, Target: target}
	}

	if dst.Role == domain.RoleSupplier {
		return &Rejection{Reason: ReasonSupplierTarget, Source: source, Target: target}
	}
	// Implied by the target rule.
	if src.Role == domain.RoleSupplier && dst.Role == domain.RoleSupplier {
		return &Rejection{Reason: ReasonSupplierToSupplier, Source: source, Target: target}
	}
	return nil
}

// ReasonOf extracts the rejection reason from err, or "" when err is not a rejection.
func ReasonOf(err error) Reason {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Reason
	}
	return ""
}
