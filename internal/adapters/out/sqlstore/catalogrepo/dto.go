// Package catalogrepo maps the reference data (users, products, pickup points
// and the pack catalog) to their tables.
package catalogrepo

import (
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserDTO struct {
	ID     uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Role   string    `gorm:"type:varchar(16);not null;index"`
	Email  string    `gorm:"type:varchar(255)"`
	Phone  string    `gorm:"type:varchar(64)"`
	Avatar string    `gorm:"type:varchar(1024)"`
}

func (UserDTO) TableName() string {
	return "users"
}

type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:varchar(36);primaryKey"`
	StoreID     uuid.UUID       `gorm:"type:varchar(36);not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Image       string          `gorm:"type:varchar(1024)"`
	Available   bool            `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type PickupPointDTO struct {
	ID            uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Address       string    `gorm:"type:varchar(512)"`
	Latitude      float64   `gorm:"not null"`
	Longitude     float64   `gorm:"not null"`
	ContactPerson string    `gorm:"type:varchar(255)"`
	Phone         string    `gorm:"type:varchar(64)"`
	Email         string    `gorm:"type:varchar(255)"`
	Active        bool      `gorm:"not null"`
}

func (PickupPointDTO) TableName() string {
	return "pickup_points"
}

type PackDTO struct {
	ID              uuid.UUID       `gorm:"type:varchar(36);primaryKey"`
	Name            string          `gorm:"type:varchar(255);not null"`
	DeliveriesCount int             `gorm:"not null"`
	Price           decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CommissionRate  decimal.Decimal `gorm:"type:decimal(5,4);not null"`
	ValidityDays    int             `gorm:"not null"`
	Description     string          `gorm:"type:text"`
}

func (PackDTO) TableName() string {
	return "delivery_packs"
}

func userFromDomain(u catalog.User) UserDTO {
	return UserDTO{
		ID:     u.ID().Bytes(),
		Name:   u.Name(),
		Role:   u.Role().String(),
		Email:  u.Contact().Email,
		Phone:  u.Contact().Phone,
		Avatar: u.Contact().Avatar,
	}
}

func userToDomain(dto UserDTO) (catalog.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.User{}, err
	}
	role, err := kernel.ParseRole(dto.Role)
	if err != nil {
		return catalog.User{}, err
	}
	return catalog.NewUser(id, dto.Name, role, catalog.Contact{Email: dto.Email, Phone: dto.Phone, Avatar: dto.Avatar})
}

func productFromDomain(p catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		StoreID:     p.StoreID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Decimal(),
		Image:       p.Image(),
		Available:   p.Available(),
	}
}

func productToDomain(dto ProductDTO) (catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Product{}, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return catalog.Product{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.NewProduct(id, storeID, dto.Name, dto.Description, price, dto.Image, dto.Available)
}

func pickupPointFromDomain(p catalog.PickupPoint) PickupPointDTO {
	return PickupPointDTO{
		ID:            p.ID().Bytes(),
		Name:          p.Name(),
		Address:       p.Address(),
		Latitude:      p.Location().Latitude(),
		Longitude:     p.Location().Longitude(),
		ContactPerson: p.ContactPerson(),
		Phone:         p.Contact().Phone,
		Email:         p.Contact().Email,
		Active:        p.IsActive(),
	}
}

func pickupPointToDomain(dto PickupPointDTO) (catalog.PickupPoint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.PickupPoint{}, err
	}
	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return catalog.PickupPoint{}, err
	}
	return catalog.NewPickupPoint(id, dto.Name, dto.Address, location, dto.ContactPerson,
		catalog.Contact{Email: dto.Email, Phone: dto.Phone}, dto.Active)
}

func packFromDomain(p store.Pack) PackDTO {
	return PackDTO{
		ID:              p.ID().Bytes(),
		Name:            p.Name(),
		DeliveriesCount: p.DeliveriesCount(),
		Price:           p.Price().Decimal(),
		CommissionRate:  p.CommissionRate(),
		ValidityDays:    p.ValidityDays(),
		Description:     p.Description(),
	}
}

func packToDomain(dto PackDTO) (store.Pack, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return store.Pack{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return store.Pack{}, err
	}
	return store.NewPack(id, dto.Name, dto.DeliveriesCount, price, dto.CommissionRate, dto.ValidityDays, dto.Description)
}
