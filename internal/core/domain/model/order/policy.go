package order

import "marketplace/internal/core/domain/model/kernel"

// getAdvancePermissions is the single role permission table for advancing an order.
// Admins are not listed: they may advance any non-terminal order.
func getAdvancePermissions() map[kernel.Role]map[Status]bool {
	//nolint:exhaustive // customers never advance orders
	return map[kernel.Role]map[Status]bool{
		kernel.RoleStore: {
			Pending:   true,
			Confirmed: true,
			Preparing: true,
		},
		kernel.RoleDriver: {
			ReadyForPickup: true,
			PickedUp:       true,
			InDelivery:     true,
		},
	}
}

// CanAdvance reports whether the role may move an order out of the given status.
func CanAdvance(role kernel.Role, status Status) bool {
	if status.IsTerminal() {
		return false
	}
	if role == kernel.RoleAdmin {
		return true
	}
	return getAdvancePermissions()[role][status]
}
