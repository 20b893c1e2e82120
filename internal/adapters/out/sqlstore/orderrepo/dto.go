// Package orderrepo maps the order aggregate to the orders and order_items tables.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Either PickupPointID or the delivery columns are set.
// Seq is assigned by the database on insert and gives List its insertion order.
type OrderDTO struct {
	Seq               int64      `gorm:"primaryKey;autoIncrement"`
	ID                uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex"`
	CustomerID        uuid.UUID  `gorm:"type:varchar(36);not null;index"`
	StoreID           uuid.UUID  `gorm:"type:varchar(36);not null;index"`
	DriverID          *uuid.UUID `gorm:"type:varchar(36);index"`
	Status            int        `gorm:"not null;index"`
	PickupPointID     *uuid.UUID `gorm:"type:varchar(36)"`
	DeliveryAddress   *string    `gorm:"type:varchar(512)"`
	DeliveryLatitude  *float64
	DeliveryLongitude *float64
	PaymentMethod     int             `gorm:"not null"`
	PaymentStatus     int             `gorm:"not null"`
	Total             decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DeliveryFee       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DriverCommission  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CustomerValidated bool            `gorm:"not null"`
	DriverValidated   bool            `gorm:"not null"`
	Notes             string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"not null;index"`
	UpdatedAt         time.Time       `gorm:"not null"`
	Version           int             `gorm:"not null"`
	Items             []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Position keeps the placement order.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:varchar(36);primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:varchar(36);not null;index"`
	Position  int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:varchar(36);not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	st := o.State()
	dto := OrderDTO{
		ID:                st.ID.Bytes(),
		CustomerID:        st.CustomerID.Bytes(),
		StoreID:           st.StoreID.Bytes(),
		Status:            int(st.Status),
		PaymentMethod:     int(st.PaymentMethod),
		PaymentStatus:     int(st.PaymentStatus),
		Total:             st.Total.Decimal(),
		DeliveryFee:       st.DeliveryFee.Decimal(),
		DriverCommission:  st.DriverCommission.Decimal(),
		CustomerValidated: st.CustomerValidated,
		DriverValidated:   st.DriverValidated,
		Notes:             st.Notes,
		CreatedAt:         st.CreatedAt,
		UpdatedAt:         st.UpdatedAt,
		Version:           st.Version,
		Items:             make([]OrderItemDTO, 0, len(st.Items)),
	}

	if st.DriverID != nil {
		raw := st.DriverID.Bytes()
		dto.DriverID = &raw
	}

	if pointID := st.Fulfillment.PickupPointID(); pointID != nil {
		raw := pointID.Bytes()
		dto.PickupPointID = &raw
	} else {
		address := st.Fulfillment.Address()
		latitude := st.Fulfillment.Location().Latitude()
		longitude := st.Fulfillment.Location().Longitude()
		dto.DeliveryAddress = &address
		dto.DeliveryLatitude = &latitude
		dto.DeliveryLongitude = &longitude
	}

	for i, item := range st.Items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   dto.ID,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Price:     item.Price().Decimal(),
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ids, err := uuidsFromBytes(dto.ID, dto.CustomerID, dto.StoreID)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		id, idErr := kernel.UUIDFromBytes(dto.DriverID[:])
		if idErr != nil {
			return nil, idErr
		}
		driverID = &id
	}

	fulfillment, err := fulfillmentToDomain(dto)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	commission, err := kernel.NewMoney(dto.DriverCommission)
	if err != nil {
		return nil, err
	}

	return order.Restore(order.State{
		ID:                ids[0],
		CustomerID:        ids[1],
		StoreID:           ids[2],
		DriverID:          driverID,
		Items:             items,
		Status:            order.Status(dto.Status),
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
		Fulfillment:       fulfillment,
		PaymentMethod:     order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus:     order.PaymentStatus(dto.PaymentStatus),
		Total:             total,
		DeliveryFee:       fee,
		DriverCommission:  commission,
		CustomerValidated: dto.CustomerValidated,
		DriverValidated:   dto.DriverValidated,
		Notes:             dto.Notes,
		Version:           dto.Version,
	})
}

func fulfillmentToDomain(dto OrderDTO) (order.Fulfillment, error) {
	if dto.PickupPointID != nil {
		pointID, err := kernel.UUIDFromBytes(dto.PickupPointID[:])
		if err != nil {
			return order.Fulfillment{}, err
		}
		return order.NewPickup(pointID)
	}

	if dto.DeliveryAddress == nil || dto.DeliveryLatitude == nil || dto.DeliveryLongitude == nil {
		return order.Fulfillment{}, errs.NewValueIsRequiredError("delivery address")
	}
	location, err := kernel.NewGeoPoint(*dto.DeliveryLatitude, *dto.DeliveryLongitude)
	if err != nil {
		return order.Fulfillment{}, err
	}
	return order.NewHomeDelivery(*dto.DeliveryAddress, location)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	ids, err := uuidsFromBytes(dto.ID, dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return order.Item{}, err
	}
	return order.RestoreItem(ids[0], ids[1], dto.Name, dto.Quantity, price)
}

func uuidsFromBytes(raw ...uuid.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
