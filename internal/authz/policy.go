// Package authz implements the role-based scoping engine. Every data
// operation first asks the engine for a decision; the answer is either a
// denial, unrestricted access, or an ownership filter the data-access layer
// must apply before returning rows.
package authz

import (
	authDomain "github.com/cargoconnect/api/internal/auth/domain"
)

// Resource identifies a protected resource type.
type Resource string

const (
	ResourceClients         Resource = "clients"
	ResourceDrivers         Resource = "drivers"
	ResourceVehicles        Resource = "vehicles"
	ResourceCargos          Resource = "cargos"
	ResourceOrders          Resource = "orders"
	ResourceTransportations Resource = "transportations"
	ResourceCompanies       Resource = "companies"
)

// Operation identifies what the caller wants to do with a resource.
type Operation string

const (
	OpRead        Operation = "read"
	OpList        Operation = "list"
	OpListDeleted Operation = "list_deleted"
	OpCreate      Operation = "create"
	OpUpdate      Operation = "update"
	OpDelete      Operation = "delete"
	OpRestore     Operation = "restore"
)

// Scope is the breadth of access a rule grants.
type Scope int

const (
	// ScopeNone denies the operation outright.
	ScopeNone Scope = iota

	// ScopeOwned allows the operation only on rows reachable from the
	// principal's linked client or driver.
	ScopeOwned

	// ScopeAny allows the operation on every row.
	ScopeAny
)

// ruleKey addresses one cell of the policy table.
type ruleKey struct {
	Role      authDomain.Role
	Resource  Resource
	Operation Operation
}

var allResources = []Resource{
	ResourceClients,
	ResourceDrivers,
	ResourceVehicles,
	ResourceCargos,
	ResourceOrders,
	ResourceTransportations,
	ResourceCompanies,
}

var allOperations = []Operation{
	OpRead,
	OpList,
	OpListDeleted,
	OpCreate,
	OpUpdate,
	OpDelete,
	OpRestore,
}

// masterData lists the resources only an Admin may soft-delete. Moderators
// manage operational data (orders, cargos, transportations) but must not
// remove the records everything else hangs off.
var masterData = map[Resource]bool{
	ResourceClients:   true,
	ResourceDrivers:   true,
	ResourceVehicles:  true,
	ResourceCompanies: true,
}

// defaultRules builds the policy table. Absent keys mean ScopeNone, so the
// table only records grants.
func defaultRules() map[ruleKey]Scope {
	rules := make(map[ruleKey]Scope)

	grant := func(role authDomain.Role, resource Resource, op Operation, scope Scope) {
		rules[ruleKey{Role: role, Resource: resource, Operation: op}] = scope
	}

	// Admin: everything, everywhere.
	for _, resource := range allResources {
		for _, op := range allOperations {
			grant(authDomain.RoleAdmin, resource, op, ScopeAny)
		}
	}

	// Moderator: everything except restore, and no soft-delete of master
	// data.
	for _, resource := range allResources {
		for _, op := range allOperations {
			if op == OpRestore {
				continue
			}
			if op == OpDelete && masterData[resource] {
				continue
			}
			grant(authDomain.RoleModerator, resource, op, ScopeAny)
		}
	}

	// User: linked to a client. Sees and creates only rows reachable from
	// that client, and may update its own client profile.
	grant(authDomain.RoleUser, ResourceOrders, OpRead, ScopeOwned)
	grant(authDomain.RoleUser, ResourceOrders, OpList, ScopeOwned)
	grant(authDomain.RoleUser, ResourceOrders, OpCreate, ScopeOwned)
	grant(authDomain.RoleUser, ResourceCargos, OpRead, ScopeOwned)
	grant(authDomain.RoleUser, ResourceCargos, OpList, ScopeOwned)
	grant(authDomain.RoleUser, ResourceCargos, OpCreate, ScopeOwned)
	grant(authDomain.RoleUser, ResourceClients, OpRead, ScopeOwned)
	grant(authDomain.RoleUser, ResourceClients, OpUpdate, ScopeOwned)

	// Driver: linked to a driver record. Sees assigned vehicles and
	// transportations, and may update its own driver profile.
	grant(authDomain.RoleDriver, ResourceVehicles, OpRead, ScopeOwned)
	grant(authDomain.RoleDriver, ResourceVehicles, OpList, ScopeOwned)
	grant(authDomain.RoleDriver, ResourceTransportations, OpRead, ScopeOwned)
	grant(authDomain.RoleDriver, ResourceTransportations, OpList, ScopeOwned)
	grant(authDomain.RoleDriver, ResourceDrivers, OpRead, ScopeOwned)
	grant(authDomain.RoleDriver, ResourceDrivers, OpUpdate, ScopeOwned)

	return rules
}

// ownedThroughClient reports whether ownership of the resource resolves
// through the principal's client link. The remaining scoped resources
// resolve through the driver link.
func ownedThroughClient(resource Resource) bool {
	switch resource {
	case ResourceOrders, ResourceCargos, ResourceClients:
		return true
	default:
		return false
	}
}
