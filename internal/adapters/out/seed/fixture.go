// Package seed loads the reference catalog (packs, users, stores, products and
// pickup points) from an embedded YAML fixture into any storage backend.
package seed

import (
	_ "embed"
	"fmt"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultFixture []byte

type Fixture struct {
	Packs        []PackRecord        `yaml:"packs"`
	Users        []UserRecord        `yaml:"users"`
	Stores       []StoreRecord       `yaml:"stores"`
	Products     []ProductRecord     `yaml:"products"`
	PickupPoints []PickupPointRecord `yaml:"pickupPoints"`
}

type PackRecord struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Deliveries     int    `yaml:"deliveries"`
	Price          string `yaml:"price"`
	CommissionRate string `yaml:"commissionRate"`
	ValidityDays   int    `yaml:"validityDays"`
	Description    string `yaml:"description"`
}

type UserRecord struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Email  string `yaml:"email"`
	Phone  string `yaml:"phone"`
	Avatar string `yaml:"avatar"`
}

// StoreRecord optionally names a catalog pack installed when the store is seeded.
type StoreRecord struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Address     string   `yaml:"address"`
	Phone       string   `yaml:"phone"`
	Email       string   `yaml:"email"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Rating      float64  `yaml:"rating"`
	Latitude    float64  `yaml:"latitude"`
	Longitude   float64  `yaml:"longitude"`
	Categories  []string `yaml:"categories"`
	Pack        string   `yaml:"pack"`
}

type ProductRecord struct {
	ID          string `yaml:"id"`
	Store       string `yaml:"store"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Image       string `yaml:"image"`
	Available   bool   `yaml:"available"`
}

type PickupPointRecord struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Address       string  `yaml:"address"`
	Latitude      float64 `yaml:"latitude"`
	Longitude     float64 `yaml:"longitude"`
	ContactPerson string  `yaml:"contactPerson"`
	Phone         string  `yaml:"phone"`
	Email         string  `yaml:"email"`
	Active        bool    `yaml:"active"`
}

// Default returns the embedded marketplace catalog.
func Default() (Fixture, error) {
	return Parse(defaultFixture)
}

func Parse(data []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse seed fixture: %w", err)
	}
	return f, nil
}

func (r PackRecord) toDomain() (store.Pack, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return store.Pack{}, err
	}
	price, err := kernel.MoneyFromString(r.Price)
	if err != nil {
		return store.Pack{}, err
	}
	rate, err := decimal.NewFromString(r.CommissionRate)
	if err != nil {
		return store.Pack{}, fmt.Errorf("pack %s commission rate: %w", r.Name, err)
	}
	return store.NewPack(id, r.Name, r.Deliveries, price, rate, r.ValidityDays, r.Description)
}

func (r UserRecord) toDomain() (catalog.User, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return catalog.User{}, err
	}
	role, err := kernel.ParseRole(r.Role)
	if err != nil {
		return catalog.User{}, err
	}
	return catalog.NewUser(id, r.Name, role, catalog.Contact{Email: r.Email, Phone: r.Phone, Avatar: r.Avatar})
}

func (r StoreRecord) toDomain() (*store.Store, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewGeoPoint(r.Latitude, r.Longitude)
	if err != nil {
		return nil, err
	}
	return store.NewStore(id, store.Profile{
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		Email:       r.Email,
		Description: r.Description,
		Image:       r.Image,
		Rating:      r.Rating,
		Location:    location,
		Categories:  r.Categories,
	})
}

func (r ProductRecord) toDomain() (catalog.Product, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return catalog.Product{}, err
	}
	storeID, err := kernel.UUIDFromString(r.Store)
	if err != nil {
		return catalog.Product{}, err
	}
	price, err := kernel.MoneyFromString(r.Price)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.NewProduct(id, storeID, r.Name, r.Description, price, r.Image, r.Available)
}

func (r PickupPointRecord) toDomain() (catalog.PickupPoint, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return catalog.PickupPoint{}, err
	}
	location, err := kernel.NewGeoPoint(r.Latitude, r.Longitude)
	if err != nil {
		return catalog.PickupPoint{}, err
	}
	return catalog.NewPickupPoint(id, r.Name, r.Address, location, r.ContactPerson,
		catalog.Contact{Email: r.Email, Phone: r.Phone}, r.Active)
}
