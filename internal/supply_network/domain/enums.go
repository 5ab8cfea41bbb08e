package domain

import "strings"

type Role string

const (
	RoleSupplier    Role = "supplier"
	RoleFactory     Role = "factory"
	RoleDistributor Role = "distributor"
	RoleRetailer    Role = "retailer"
)

// Roles lists every node role in palette order.
func Roles() []Role {
	return []Role{RoleSupplier, RoleFactory, RoleDistributor, RoleRetailer}
}

func (r Role) Valid() bool {
	switch r {
	case RoleSupplier, RoleFactory, RoleDistributor, RoleRetailer:
		return true
	}
	return false
}

// Title is the capitalised role name used in node labels.
func (r Role) Title() string {
	s := string(r)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type Policy string

const (
	PolicySS Policy = "SS"
	PolicyRQ Policy = "RQ"
)

type SupplierType string

const (
	SupplierInfinite SupplierType = "infinite"
	SupplierFinite   SupplierType = "finite"
)

type SaveStatus string

const (
	StatusUnsaved SaveStatus = "unsaved"
	StatusSaving  SaveStatus = "saving"
	StatusSaved   SaveStatus = "saved"
	StatusError   SaveStatus = "error"
)
