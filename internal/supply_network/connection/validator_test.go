package connection

import (
	"fmt"
	"testing"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/stretchr/testify/assert"
)

func nodes() []domain.Node {
	return []domain.Node{
		{ID: "s1", Role: domain.RoleSupplier},
		{ID: "s2", Role: domain.RoleSupplier},
		{ID: "f1", Role: domain.RoleFactory},
		{ID: "d1", Role: domain.RoleDistributor},
		{ID: "r1", Role: domain.RoleRetailer},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		source string
		target string
		reason Reason
	}{
		{"supplier to factory", "s1", "f1", ""},
		{"supplier to retailer", "s1", "r1", ""},
		{"retailer to factory is structurally legal", "r1", "f1", ""},
		{"distributor to distributor loop", "d1", "d1", ReasonSelfLoop},
		{"supplier self loop", "s1", "s1", ReasonSelfLoop},
		{"retailer to supplier", "r1", "s1", ReasonSupplierTarget},
		{"supplier to supplier", "s1", "s2", ReasonSupplierTarget},
		{"unknown source", "x", "r1", ReasonUnknownNode},
		{"unknown target", "s1", "x", ReasonUnknownNode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.source, tc.target, nodes())
			if tc.reason == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tc.reason, ReasonOf(err))
		})
	}
}

func TestReasonOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("add edge: %w", &Rejection{Reason: ReasonSelfLoop})
	assert.Equal(t, ReasonSelfLoop, ReasonOf(err))
	assert.Equal(t, Reason(""), ReasonOf(fmt.Errorf("other")))
}
