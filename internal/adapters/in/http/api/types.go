package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ListOrdersParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

type NewOrderItem struct {
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
}

// NewOrder names exactly one of a delivery address (with its location) or a pickup point.
type NewOrder struct {
	StoreId          openapi_types.UUID  `json:"storeId"`
	Items            []NewOrderItem      `json:"items"`
	DeliveryAddress  *string             `json:"deliveryAddress,omitempty"`
	DeliveryLocation *Location           `json:"deliveryLocation,omitempty"`
	PickupPointId    *openapi_types.UUID `json:"pickupPointId,omitempty"`
	PaymentMethod    string              `json:"paymentMethod"`
	Notes            *string             `json:"notes,omitempty"`
}

type OrderItem struct {
	Id        openapi_types.UUID `json:"id"`
	ProductId openapi_types.UUID `json:"productId"`
	Name      string             `json:"name"`
	Quantity  int                `json:"quantity"`
	Price     string             `json:"price"`
	Subtotal  string             `json:"subtotal"`
}

type Order struct {
	Id                openapi_types.UUID  `json:"id"`
	CustomerId        openapi_types.UUID  `json:"customerId"`
	StoreId           openapi_types.UUID  `json:"storeId"`
	DriverId          *openapi_types.UUID `json:"driverId,omitempty"`
	Items             []OrderItem         `json:"items"`
	Status            string              `json:"status"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
	IsPickup          bool                `json:"isPickup"`
	PickupPointId     *openapi_types.UUID `json:"pickupPointId,omitempty"`
	DeliveryAddress   *string             `json:"deliveryAddress,omitempty"`
	DeliveryLocation  *Location           `json:"deliveryLocation,omitempty"`
	PaymentMethod     string              `json:"paymentMethod"`
	PaymentStatus     string              `json:"paymentStatus"`
	Total             string              `json:"total"`
	DeliveryFee       string              `json:"deliveryFee"`
	DriverCommission  string              `json:"driverCommission"`
	CustomerValidated bool                `json:"customerValidated"`
	DriverValidated   bool                `json:"driverValidated"`
	Notes             *string             `json:"notes,omitempty"`
}

type DriverAssignment struct {
	DriverId openapi_types.UUID `json:"driverId"`
}

type DeliveryValidation struct {
	Party string `json:"party"`
}

type PaymentRecord struct {
	Status string `json:"status"`
}

type PackPurchase struct {
	PackId openapi_types.UUID `json:"packId"`
}

type Pack struct {
	Id                   openapi_types.UUID `json:"id"`
	Name                 string             `json:"name"`
	DeliveriesCount      int                `json:"deliveriesCount"`
	Price                string             `json:"price"`
	DriverCommissionRate string             `json:"driverCommissionRate"`
	ValidityDays         int                `json:"validityDays"`
	Description          *string            `json:"description,omitempty"`
}

type PackUsage struct {
	Used       int  `json:"used"`
	Remaining  int  `json:"remaining"`
	Total      int  `json:"total"`
	Percent    int  `json:"percent"`
	LowOnQuota bool `json:"lowOnQuota"`
}

type Store struct {
	Id                  openapi_types.UUID `json:"id"`
	Name                string             `json:"name"`
	Address             string             `json:"address,omitempty"`
	Phone               string             `json:"phone,omitempty"`
	Email               string             `json:"email,omitempty"`
	Description         string             `json:"description,omitempty"`
	Image               string             `json:"image,omitempty"`
	Rating              float64            `json:"rating"`
	Location            Location           `json:"location"`
	Categories          []string           `json:"categories"`
	CurrentPack         *Pack              `json:"currentPack,omitempty"`
	PackPurchasedAt     *time.Time         `json:"packPurchasedAt,omitempty"`
	PackExpiresAt       *time.Time         `json:"packExpiresAt,omitempty"`
	RemainingDeliveries int                `json:"remainingDeliveries"`
	TotalDeliveries     int                `json:"totalDeliveries"`
	Usage               *PackUsage         `json:"usage,omitempty"`
}

type Product struct {
	Id          openapi_types.UUID `json:"id"`
	StoreId     openapi_types.UUID `json:"storeId"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Price       string             `json:"price"`
	Image       string             `json:"image,omitempty"`
	Available   bool               `json:"available"`
}

type PickupPoint struct {
	Id            openapi_types.UUID `json:"id"`
	Name          string             `json:"name"`
	Address       string             `json:"address"`
	Location      Location           `json:"location"`
	ContactPerson string             `json:"contactPerson,omitempty"`
	Phone         string             `json:"phone,omitempty"`
	Email         string             `json:"email,omitempty"`
	IsActive      bool               `json:"isActive"`
}

type User struct {
	Id     openapi_types.UUID `json:"id"`
	Name   string             `json:"name"`
	Role   string             `json:"role"`
	Email  string             `json:"email,omitempty"`
	Phone  string             `json:"phone,omitempty"`
	Avatar string             `json:"avatar,omitempty"`
}

type Notification struct {
	Id        openapi_types.UUID `json:"id"`
	UserId    openapi_types.UUID `json:"userId"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Type      string             `json:"type"`
	Read      bool               `json:"read"`
	CreatedAt time.Time          `json:"createdAt"`
}

type Stats struct {
	TotalOrders       int `json:"totalOrders"`
	CompletedOrders   int `json:"completedOrders"`
	ActiveOrders      int `json:"activeOrders"`
	InDeliveryOrders  int `json:"inDeliveryOrders"`
	TotalStores       int `json:"totalStores"`
	HighlyRatedStores int `json:"highlyRatedStores"`
	TotalUsers        int `json:"totalUsers"`
	Customers         int `json:"customers"`
	StoreUsers        int `json:"storeUsers"`
	Drivers           int `json:"drivers"`
}
