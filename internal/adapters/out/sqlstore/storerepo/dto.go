// Package storerepo maps the store aggregate and its installed pack to the stores table.
package storerepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreDTO is the stores row. The installed pack is a copy of the catalog pack,
// so later catalog edits do not change a purchased quota.
type StoreDTO struct {
	ID                  uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	Name                string    `gorm:"type:varchar(255);not null;index"`
	Address             string    `gorm:"type:varchar(512)"`
	Phone               string    `gorm:"type:varchar(64)"`
	Email               string    `gorm:"type:varchar(255)"`
	Description         string    `gorm:"type:text"`
	Image               string    `gorm:"type:varchar(1024)"`
	Rating              float64   `gorm:"not null"`
	Latitude            float64   `gorm:"not null"`
	Longitude           float64   `gorm:"not null"`
	Categories          []string  `gorm:"type:text;serializer:json"`
	Pack                PackDTO   `gorm:"embedded;embeddedPrefix:pack_"`
	PackPurchasedAt     *time.Time
	RemainingDeliveries int  `gorm:"not null"`
	TotalDeliveries     int  `gorm:"not null"`
	LowQuotaAlerted     bool `gorm:"not null"`
	Version             int  `gorm:"not null"`
}

func (StoreDTO) TableName() string {
	return "stores"
}

// PackDTO holds the columns of the installed pack; all nil without one.
type PackDTO struct {
	ID              *uuid.UUID `gorm:"type:varchar(36)"`
	Name            *string    `gorm:"type:varchar(255)"`
	DeliveriesCount *int
	Price           *decimal.Decimal `gorm:"type:decimal(14,2)"`
	CommissionRate  *decimal.Decimal `gorm:"type:decimal(5,4)"`
	ValidityDays    *int
	Description     *string `gorm:"type:text"`
}

func fromDomain(s *store.Store) StoreDTO {
	st := s.State()
	dto := StoreDTO{
		ID:                  st.ID.Bytes(),
		Name:                st.Profile.Name,
		Address:             st.Profile.Address,
		Phone:               st.Profile.Phone,
		Email:               st.Profile.Email,
		Description:         st.Profile.Description,
		Image:               st.Profile.Image,
		Rating:              st.Profile.Rating,
		Latitude:            st.Profile.Location.Latitude(),
		Longitude:           st.Profile.Location.Longitude(),
		Categories:          st.Profile.Categories,
		PackPurchasedAt:     st.PackPurchasedAt,
		RemainingDeliveries: st.RemainingDeliveries,
		TotalDeliveries:     st.TotalDeliveries,
		LowQuotaAlerted:     st.LowQuotaAlerted,
		Version:             st.Version,
	}

	if p := st.CurrentPack; p != nil {
		id := p.ID().Bytes()
		name := p.Name()
		count := p.DeliveriesCount()
		price := p.Price().Decimal()
		rate := p.CommissionRate()
		days := p.ValidityDays()
		description := p.Description()
		dto.Pack = PackDTO{
			ID:              &id,
			Name:            &name,
			DeliveriesCount: &count,
			Price:           &price,
			CommissionRate:  &rate,
			ValidityDays:    &days,
			Description:     &description,
		}
	}

	return dto
}

func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	pack, err := packToDomain(dto.Pack)
	if err != nil {
		return nil, err
	}

	return store.Restore(store.State{
		ID: id,
		Profile: store.Profile{
			Name:        dto.Name,
			Address:     dto.Address,
			Phone:       dto.Phone,
			Email:       dto.Email,
			Description: dto.Description,
			Image:       dto.Image,
			Rating:      dto.Rating,
			Location:    location,
			Categories:  dto.Categories,
		},
		CurrentPack:         pack,
		PackPurchasedAt:     dto.PackPurchasedAt,
		RemainingDeliveries: dto.RemainingDeliveries,
		TotalDeliveries:     dto.TotalDeliveries,
		LowQuotaAlerted:     dto.LowQuotaAlerted,
		Version:             dto.Version,
	})
}

func packToDomain(dto PackDTO) (*store.Pack, error) {
	if dto.ID == nil {
		return nil, nil //nolint:nilnil // a store without a pack
	}
	if dto.Name == nil || dto.DeliveriesCount == nil || dto.Price == nil ||
		dto.CommissionRate == nil || dto.ValidityDays == nil {
		return nil, errs.NewValueIsRequiredError("pack columns")
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(*dto.Price)
	if err != nil {
		return nil, err
	}

	var description string
	if dto.Description != nil {
		description = *dto.Description
	}

	p, err := store.NewPack(id, *dto.Name, *dto.DeliveriesCount, price, *dto.CommissionRate, *dto.ValidityDays, description)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
