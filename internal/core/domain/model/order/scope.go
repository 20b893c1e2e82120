package order

import "marketplace/internal/core/domain/model/kernel"

// Scope is the set of orders an actor may see.
//
//	customer → orders they placed
//	store    → orders placed at the store
//	driver   → orders assigned to them plus the claim pool
//	           (ready_for_pickup and no driver yet)
//	admin    → everything
type Scope struct {
	CustomerID *kernel.UUID
	StoreID    *kernel.UUID
	DriverID   *kernel.UUID
}

// ScopeFor derives the visibility scope of an actor.
func ScopeFor(actor kernel.Actor) Scope {
	id := actor.ID()
	switch actor.Role() {
	case kernel.RoleCustomer:
		return Scope{CustomerID: &id}
	case kernel.RoleStore:
		return Scope{StoreID: &id}
	case kernel.RoleDriver:
		return Scope{DriverID: &id}
	case kernel.RoleAdmin:
		return Scope{}
	default:
		// unknown roles see nothing
		nobody := kernel.UUID{}
		return Scope{CustomerID: &nobody}
	}
}

// IsUnrestricted is true for the admin scope.
func (s Scope) IsUnrestricted() bool {
	return s.CustomerID == nil && s.StoreID == nil && s.DriverID == nil
}

// Matches is the in-memory form of the scope predicate.
func (s Scope) Matches(o *Order) bool {
	switch {
	case s.CustomerID != nil:
		return o.customerID.IsEqual(*s.CustomerID)
	case s.StoreID != nil:
		return o.storeID.IsEqual(*s.StoreID)
	case s.DriverID != nil:
		if o.driverID != nil {
			return o.driverID.IsEqual(*s.DriverID)
		}
		return o.status == ReadyForPickup
	default:
		return true
	}
}

// Filter narrows a scoped listing to one exact status when Status is set.
type Filter struct {
	Scope  Scope
	Status *Status
}

func (f Filter) Matches(o *Order) bool {
	if f.Status != nil && o.status != *f.Status {
		return false
	}
	return f.Scope.Matches(o)
}
