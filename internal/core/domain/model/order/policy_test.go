package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestCanAdvance(t *testing.T) {
	allowed := map[kernel.Role][]order.Status{
		kernel.RoleStore:    {order.Pending, order.Confirmed, order.Preparing},
		kernel.RoleDriver:   {order.ReadyForPickup, order.PickedUp, order.InDelivery},
		kernel.RoleAdmin:    {order.Pending, order.Confirmed, order.Preparing, order.ReadyForPickup, order.PickedUp, order.InDelivery, order.Delivered},
		kernel.RoleCustomer: {},
	}

	for role, statuses := range allowed {
		permitted := make(map[order.Status]bool)
		for _, s := range statuses {
			permitted[s] = true
		}

		for _, s := range order.AllStatuses() {
			assert.Equal(t, permitted[s], order.CanAdvance(role, s), "%s advancing %s", role, s)
		}
	}
}
