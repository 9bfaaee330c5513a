package helpers

import "restaurant-pos/models"

// Operation names every role-gated mutation in the system.
type Operation string

const (
	OpMenuWrite        Operation = "menu.write"
	OpTableWrite       Operation = "table.write"
	OpTableStatusWrite Operation = "table.status_write"
	OpOrderStatusWrite Operation = "order.status_write"
	OpOrderCreate      Operation = "order.create"
)

var allowedRoles = map[Operation]map[models.Role]bool{
	OpMenuWrite: {
		models.RoleAdmin: true,
	},
	OpTableWrite: {
		models.RoleAdmin: true,
	},
	OpTableStatusWrite: {
		models.RoleAdmin:  true,
		models.RoleWaiter: true,
	},
	OpOrderStatusWrite: {
		models.RoleAdmin:   true,
		models.RoleKitchen: true,
	},
	OpOrderCreate: {
		models.RoleAdmin:    true,
		models.RoleWaiter:   true,
		models.RoleKitchen:  true,
		models.RoleCustomer: true,
	},
}

// Authorize is the single permission check consulted before every mutating
// call. It is deterministic and performs no I/O.
func Authorize(role models.Role, op Operation) bool {
	return allowedRoles[op][role]
}
