package store

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

// Profile is the public, read-only part of a store.
type Profile struct {
	Name        string
	Address     string
	Phone       string
	Email       string
	Description string
	Image       string
	Rating      float64
	Location    kernel.GeoPoint
	Categories  []string
}

// Store is the aggregate that owns a delivery quota.
//
// Invariants:
//   - 0 ≤ remainingDeliveries ≤ totalDeliveries
//   - a store without a pack has no commission rate
//   - the quota changes only through pack purchase, pack expiry and order placement
type Store struct {
	id                  kernel.UUID
	profile             Profile
	currentPack         *Pack
	packPurchasedAt     *time.Time
	remainingDeliveries int
	totalDeliveries     int
	lowQuotaAlerted     bool
	version             int

	isConstructed bool
}

func NewStore(id kernel.UUID, profile Profile) (*Store, error) {
	s := &Store{isConstructed: true}

	if err := errors.Join(id.Validate(), s.setProfile(profile)); err != nil {
		return nil, err
	}

	s.id = id
	return s, nil
}

func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

func (s *Store) ID() kernel.UUID {
	return s.id
}

func (s *Store) Profile() Profile {
	p := s.profile
	p.Categories = append([]string(nil), s.profile.Categories...)
	return p
}

// CurrentPack returns a copy of the installed pack, or nil.
func (s *Store) CurrentPack() *Pack {
	if s.currentPack == nil {
		return nil
	}
	p := *s.currentPack
	return &p
}

func (s *Store) PackPurchasedAt() *time.Time {
	if s.packPurchasedAt == nil {
		return nil
	}
	t := *s.packPurchasedAt
	return &t
}

func (s *Store) RemainingDeliveries() int {
	return s.remainingDeliveries
}

func (s *Store) TotalDeliveries() int {
	return s.totalDeliveries
}

func (s *Store) Version() int {
	return s.version
}

// UsesPacks reports whether the store currently has a pack installed.
func (s *Store) UsesPacks() bool {
	return s.currentPack != nil
}

// CommissionRate is the driver commission rate of the installed pack; zero without one.
func (s *Store) CommissionRate() decimal.Decimal {
	if s.currentPack == nil {
		return decimal.Zero
	}
	return s.currentPack.CommissionRate()
}

// PackExpiresAt is nil when no pack is installed.
func (s *Store) PackExpiresAt() *time.Time {
	if s.currentPack == nil || s.packPurchasedAt == nil {
		return nil
	}
	t := s.currentPack.ExpiresAt(*s.packPurchasedAt)
	return &t
}

// HasActivePack is true while the installed pack has deliveries left and has not expired.
func (s *Store) HasActivePack(now time.Time) bool {
	if s.currentPack == nil || s.remainingDeliveries == 0 {
		return false
	}
	return now.Before(*s.PackExpiresAt())
}

// PurchasePack installs a copy of pack. The actor is an admin or the store itself.
// When a pack is still active the policy decides: reject fails with ErrAlreadyActive,
// replace drops the remainder, stack carries the remainder over.
func (s *Store) PurchasePack(actor kernel.Actor, pack Pack, policy PurchasePolicy, now time.Time) error {
	if err := errors.Join(actor.Validate(), pack.Validate()); err != nil {
		return err
	}
	if !actor.IsAdmin() && !(actor.Is(kernel.RoleStore) && actor.ID().IsEqual(s.id)) {
		return errs.NewForbiddenError("only the store or an admin purchases packs")
	}

	carried := 0
	if s.HasActivePack(now) {
		switch policy {
		case PolicyReject:
			return errs.NewAlreadyActiveError(s.id)
		case PolicyStack:
			carried = s.remainingDeliveries
		case PolicyReplace:
		}
	}

	installed := pack
	purchasedAt := now
	s.currentPack = &installed
	s.packPurchasedAt = &purchasedAt
	s.remainingDeliveries = carried + pack.DeliveriesCount()
	s.totalDeliveries = s.remainingDeliveries
	s.lowQuotaAlerted = false
	return nil
}

// ConsumeDelivery takes one delivery from the quota. An expired pack is dropped
// first, so an exhausted or expired quota both fail with ErrQuotaExhausted.
func (s *Store) ConsumeDelivery(now time.Time) error {
	s.ExpirePack(now)
	if s.remainingDeliveries == 0 {
		return errs.NewQuotaExhaustedError(s.id)
	}
	s.remainingDeliveries--
	return nil
}

// ExpirePack drops the pack once its validity has elapsed and reports whether it did.
func (s *Store) ExpirePack(now time.Time) bool {
	expiresAt := s.PackExpiresAt()
	if expiresAt == nil || now.Before(*expiresAt) {
		return false
	}
	s.currentPack = nil
	s.packPurchasedAt = nil
	s.remainingDeliveries = 0
	s.totalDeliveries = 0
	s.lowQuotaAlerted = false
	return true
}

// Usage summarizes consumption of the current pack.
type Usage struct {
	Used       int
	Remaining  int
	Total      int
	Percent    int
	LowOnQuota bool
}

// Usage reports consumption; LowOnQuota is set when a pack is installed and
// the remainder is at or below threshold.
func (s *Store) Usage(threshold int) Usage {
	u := Usage{
		Used:      s.totalDeliveries - s.remainingDeliveries,
		Remaining: s.remainingDeliveries,
		Total:     s.totalDeliveries,
	}
	if u.Total > 0 {
		u.Percent = u.Used * 100 / u.Total
	}
	u.LowOnQuota = s.currentPack != nil && s.remainingDeliveries <= threshold
	return u
}

// NeedsLowQuotaAlert is true once per installed pack, when usage turns low.
func (s *Store) NeedsLowQuotaAlert(threshold int) bool {
	return !s.lowQuotaAlerted && s.Usage(threshold).LowOnQuota
}

func (s *Store) MarkLowQuotaAlerted() {
	s.lowQuotaAlerted = true
}

func (s *Store) LowQuotaAlerted() bool {
	return s.lowQuotaAlerted
}

func (s *Store) setProfile(p Profile) error {
	if p.Name == "" {
		return errs.NewValueIsRequiredError("store name")
	}
	if err := p.Location.Validate(); err != nil {
		return err
	}
	if p.Rating < 0 || p.Rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", p.Rating, 0, 5)
	}
	p.Categories = append([]string(nil), p.Categories...)
	s.profile = p
	return nil
}

// State is the persisted shape of a Store.
type State struct {
	ID                  kernel.UUID
	Profile             Profile
	CurrentPack         *Pack
	PackPurchasedAt     *time.Time
	RemainingDeliveries int
	TotalDeliveries     int
	LowQuotaAlerted     bool
	Version             int
}

func (s *Store) State() State {
	return State{
		ID:                  s.id,
		Profile:             s.Profile(),
		CurrentPack:         s.CurrentPack(),
		PackPurchasedAt:     s.PackPurchasedAt(),
		RemainingDeliveries: s.remainingDeliveries,
		TotalDeliveries:     s.totalDeliveries,
		LowQuotaAlerted:     s.lowQuotaAlerted,
		Version:             s.version,
	}
}

// Restore rebuilds a Store from persistence and re-checks the quota invariants.
func Restore(st State) (*Store, error) {
	s, err := NewStore(st.ID, st.Profile)
	if err != nil {
		return nil, err
	}

	if st.RemainingDeliveries < 0 || st.RemainingDeliveries > st.TotalDeliveries {
		return nil, errs.NewValueIsOutOfRangeError("remaining deliveries", st.RemainingDeliveries, 0, st.TotalDeliveries)
	}
	if (st.CurrentPack == nil) != (st.PackPurchasedAt == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("pack", errors.New("pack and purchase date must be set together"))
	}
	if st.CurrentPack != nil {
		if err = st.CurrentPack.Validate(); err != nil {
			return nil, err
		}
		p := *st.CurrentPack
		t := *st.PackPurchasedAt
		s.currentPack = &p
		s.packPurchasedAt = &t
	}

	s.remainingDeliveries = st.RemainingDeliveries
	s.totalDeliveries = st.TotalDeliveries
	s.lowQuotaAlerted = st.LowQuotaAlerted
	s.version = st.Version
	return s, nil
}
