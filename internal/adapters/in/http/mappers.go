package http

import (
	"marketplace/internal/adapters/in/http/api"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toLocation(p kernel.GeoPoint) api.Location {
	return api.Location{Latitude: p.Latitude(), Longitude: p.Longitude()}
}

func toOrder(v queries.OrderView) api.Order {
	items := make([]api.OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = api.OrderItem{
			Id:        item.ID.Bytes(),
			ProductId: item.ProductID.Bytes(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
			Subtotal:  item.Subtotal.String(),
		}
	}

	o := api.Order{
		Id:                v.ID.Bytes(),
		CustomerId:        v.CustomerID.Bytes(),
		StoreId:           v.StoreID.Bytes(),
		DriverId:          optionalID(v.DriverID),
		Items:             items,
		Status:            v.Status.String(),
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
		IsPickup:          v.IsPickup,
		PickupPointId:     optionalID(v.PickupPointID),
		DeliveryAddress:   optionalString(v.DeliveryAddress),
		PaymentMethod:     v.PaymentMethod.String(),
		PaymentStatus:     v.PaymentStatus.String(),
		Total:             v.Total.String(),
		DeliveryFee:       v.DeliveryFee.String(),
		DriverCommission:  v.DriverCommission.String(),
		CustomerValidated: v.CustomerValidated,
		DriverValidated:   v.DriverValidated,
		Notes:             optionalString(v.Notes),
	}
	if v.DeliveryLocation != nil {
		location := toLocation(*v.DeliveryLocation)
		o.DeliveryLocation = &location
	}
	return o
}

func toPack(v queries.PackView) api.Pack {
	return api.Pack{
		Id:                   v.ID.Bytes(),
		Name:                 v.Name,
		DeliveriesCount:      v.DeliveriesCount,
		Price:                v.Price.String(),
		DriverCommissionRate: v.CommissionRate.String(),
		ValidityDays:         v.ValidityDays,
		Description:          optionalString(v.Description),
	}
}

func toStore(v queries.StoreView) api.Store {
	categories := v.Profile.Categories
	if categories == nil {
		categories = []string{}
	}

	s := api.Store{
		Id:                  v.ID.Bytes(),
		Name:                v.Profile.Name,
		Address:             v.Profile.Address,
		Phone:               v.Profile.Phone,
		Email:               v.Profile.Email,
		Description:         v.Profile.Description,
		Image:               v.Profile.Image,
		Rating:              v.Profile.Rating,
		Location:            toLocation(v.Profile.Location),
		Categories:          categories,
		PackPurchasedAt:     v.PackPurchasedAt,
		PackExpiresAt:       v.PackExpiresAt,
		RemainingDeliveries: v.RemainingDeliveries,
		TotalDeliveries:     v.TotalDeliveries,
	}
	if v.CurrentPack != nil {
		pack := toPack(*v.CurrentPack)
		s.CurrentPack = &pack
	}
	if v.Usage != nil {
		s.Usage = &api.PackUsage{
			Used:       v.Usage.Used,
			Remaining:  v.Usage.Remaining,
			Total:      v.Usage.Total,
			Percent:    v.Usage.Percent,
			LowOnQuota: v.Usage.LowOnQuota,
		}
	}
	return s
}

func toProduct(v queries.ProductView) api.Product {
	return api.Product{
		Id:          v.ID.Bytes(),
		StoreId:     v.StoreID.Bytes(),
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price.String(),
		Image:       v.Image,
		Available:   v.Available,
	}
}

func toPickupPoint(v queries.PickupPointView) api.PickupPoint {
	return api.PickupPoint{
		Id:            v.ID.Bytes(),
		Name:          v.Name,
		Address:       v.Address,
		Location:      toLocation(v.Location),
		ContactPerson: v.ContactPerson,
		Phone:         v.Contact.Phone,
		Email:         v.Contact.Email,
		IsActive:      v.Active,
	}
}

func toUser(v queries.UserView) api.User {
	return api.User{
		Id:     v.ID.Bytes(),
		Name:   v.Name,
		Role:   v.Role.String(),
		Email:  v.Contact.Email,
		Phone:  v.Contact.Phone,
		Avatar: v.Contact.Avatar,
	}
}

func toNotification(v queries.NotificationView) api.Notification {
	return api.Notification{
		Id:        v.ID.Bytes(),
		UserId:    v.UserID.Bytes(),
		Title:     v.Title,
		Message:   v.Message,
		Type:      string(v.Type),
		Read:      v.Read,
		CreatedAt: v.CreatedAt,
	}
}

func toStats(v queries.StatsView) api.Stats {
	return api.Stats{
		TotalOrders:       v.TotalOrders,
		CompletedOrders:   v.CompletedOrders,
		ActiveOrders:      v.ActiveOrders,
		InDeliveryOrders:  v.InDeliveryOrders,
		TotalStores:       v.TotalStores,
		HighlyRatedStores: v.HighlyRatedStores,
		TotalUsers:        v.TotalUsers,
		Customers:         v.Customers,
		StoreUsers:        v.StoreUsers,
		Drivers:           v.Drivers,
	}
}

func mapAll[V, W any](views []V, fn func(V) W) []W {
	out := make([]W, len(views))
	for i, v := range views {
		out[i] = fn(v)
	}
	return out
}
