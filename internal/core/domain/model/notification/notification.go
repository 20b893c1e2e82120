package notification

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

type Type string

const (
	TypeOrder    Type = "order"
	TypePack     Type = "pack"
	TypePayment  Type = "payment"
	TypeDelivery Type = "delivery"
)

type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	title     string
	message   string
	kind      Type
	read      bool
	createdAt time.Time

	isConstructed bool
}

func NewNotification(id, userID kernel.UUID, kind Type, title, message string, now time.Time) (*Notification, error) {
	n := &Notification{
		message:       message,
		kind:          kind,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(id.Validate(), userID.Validate(), n.setTitle(title)); err != nil {
		return nil, err
	}

	n.id = id
	n.userID = userID
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Type() Type {
	return n.kind
}

func (n *Notification) IsRead() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flags the notification as read. Only its recipient may do so.
func (n *Notification) MarkRead(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.ID().IsEqual(n.userID) {
		return errs.NewForbiddenError("notification belongs to another user")
	}
	n.read = true
	return nil
}

func (n *Notification) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

// State is the persisted shape of a Notification.
type State struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	Title     string
	Message   string
	Type      Type
	Read      bool
	CreatedAt time.Time
}

func (n *Notification) State() State {
	return State{
		ID:        n.id,
		UserID:    n.userID,
		Title:     n.title,
		Message:   n.message,
		Type:      n.kind,
		Read:      n.read,
		CreatedAt: n.createdAt,
	}
}

func Restore(s State) (*Notification, error) {
	n, err := NewNotification(s.ID, s.UserID, s.Type, s.Title, s.Message, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	n.read = s.Read
	return n, nil
}
