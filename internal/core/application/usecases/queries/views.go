// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read through repository ports without opening a transaction and
// return read models detached from the aggregates.
package queries

import (
	"time"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"

	"github.com/shopspring/decimal"
)

type OrderItemView struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Name      string
	Quantity  int
	Price     kernel.Money
	Subtotal  kernel.Money
}

// OrderView is the read model of an order. Exactly one of DeliveryAddress and
// PickupPointID is meaningful, as told by IsPickup.
type OrderView struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	StoreID           kernel.UUID
	DriverID          *kernel.UUID
	Items             []OrderItemView
	Status            order.Status
	CreatedAt         time.Time
	UpdatedAt         time.Time
	IsPickup          bool
	PickupPointID     *kernel.UUID
	DeliveryAddress   string
	DeliveryLocation  *kernel.GeoPoint
	PaymentMethod     order.PaymentMethod
	PaymentStatus     order.PaymentStatus
	Total             kernel.Money
	DeliveryFee       kernel.Money
	DriverCommission  kernel.Money
	CustomerValidated bool
	DriverValidated   bool
	Notes             string
}

func newOrderView(o *order.Order) OrderView {
	items := o.Items()
	view := OrderView{
		ID:                o.ID(),
		CustomerID:        o.CustomerID(),
		StoreID:           o.StoreID(),
		DriverID:          o.Driver(),
		Items:             make([]OrderItemView, 0, len(items)),
		Status:            o.Status(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
		IsPickup:          o.Fulfillment().IsPickup(),
		PickupPointID:     o.Fulfillment().PickupPointID(),
		DeliveryAddress:   o.Fulfillment().Address(),
		PaymentMethod:     o.PaymentMethod(),
		PaymentStatus:     o.PaymentStatus(),
		Total:             o.Total(),
		DeliveryFee:       o.DeliveryFee(),
		DriverCommission:  o.DriverCommission(),
		CustomerValidated: o.CustomerValidated(),
		DriverValidated:   o.DriverValidated(),
		Notes:             o.Notes(),
	}
	if !view.IsPickup {
		location := o.Fulfillment().Location()
		view.DeliveryLocation = &location
	}
	for _, item := range items {
		view.Items = append(view.Items, OrderItemView{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Subtotal:  item.Subtotal(),
		})
	}
	return view
}

type PackView struct {
	ID              kernel.UUID
	Name            string
	DeliveriesCount int
	Price           kernel.Money
	CommissionRate  decimal.Decimal
	ValidityDays    int
	Description     string
}

func newPackView(p store.Pack) PackView {
	return PackView{
		ID:              p.ID(),
		Name:            p.Name(),
		DeliveriesCount: p.DeliveriesCount(),
		Price:           p.Price(),
		CommissionRate:  p.CommissionRate(),
		ValidityDays:    p.ValidityDays(),
		Description:     p.Description(),
	}
}

// StoreView is a store with its quota. Usage is only filled by GetStoreQuery.
type StoreView struct {
	ID                  kernel.UUID
	Profile             store.Profile
	CurrentPack         *PackView
	PackPurchasedAt     *time.Time
	PackExpiresAt       *time.Time
	RemainingDeliveries int
	TotalDeliveries     int
	Usage               *store.Usage
}

func newStoreView(s *store.Store) StoreView {
	view := StoreView{
		ID:                  s.ID(),
		Profile:             s.Profile(),
		PackPurchasedAt:     s.PackPurchasedAt(),
		PackExpiresAt:       s.PackExpiresAt(),
		RemainingDeliveries: s.RemainingDeliveries(),
		TotalDeliveries:     s.TotalDeliveries(),
	}
	if p := s.CurrentPack(); p != nil {
		pv := newPackView(*p)
		view.CurrentPack = &pv
	}
	return view
}

type ProductView struct {
	ID          kernel.UUID
	StoreID     kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Image       string
	Available   bool
}

func newProductView(p catalog.Product) ProductView {
	return ProductView{
		ID:          p.ID(),
		StoreID:     p.StoreID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Image:       p.Image(),
		Available:   p.Available(),
	}
}

type PickupPointView struct {
	ID            kernel.UUID
	Name          string
	Address       string
	Location      kernel.GeoPoint
	ContactPerson string
	Contact       catalog.Contact
	Active        bool
}

func newPickupPointView(p catalog.PickupPoint) PickupPointView {
	return PickupPointView{
		ID:            p.ID(),
		Name:          p.Name(),
		Address:       p.Address(),
		Location:      p.Location(),
		ContactPerson: p.ContactPerson(),
		Contact:       p.Contact(),
		Active:        p.IsActive(),
	}
}

type UserView struct {
	ID      kernel.UUID
	Name    string
	Role    kernel.Role
	Contact catalog.Contact
}

func newUserView(u catalog.User) UserView {
	return UserView{ID: u.ID(), Name: u.Name(), Role: u.Role(), Contact: u.Contact()}
}

type NotificationView struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	Title     string
	Message   string
	Type      notification.Type
	Read      bool
	CreatedAt time.Time
}

func newNotificationView(n *notification.Notification) NotificationView {
	return NotificationView{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Title:     n.Title(),
		Message:   n.Message(),
		Type:      n.Type(),
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

// StatsView holds the admin dashboard counters.
type StatsView struct {
	TotalOrders      int
	CompletedOrders  int
	ActiveOrders     int
	InDeliveryOrders int

	TotalStores       int
	HighlyRatedStores int

	TotalUsers int
	Customers  int
	StoreUsers int
	Drivers    int
}
