package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	PaymentMethodOnline
	PaymentMethodCash
	PaymentMethodAirtel
)

func getPaymentMethodNames() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "unknown",
		PaymentMethodOnline:  "online",
		PaymentMethodCash:    "cash",
		PaymentMethodAirtel:  "airtel",
	}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodNames() {
		if method != PaymentMethodUnknown && name == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method", fmt.Errorf("%q is not a valid payment method", s))
}

func (m PaymentMethod) Validate() error {
	if m <= PaymentMethodUnknown || m > PaymentMethodAirtel {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

func (m PaymentMethod) String() string {
	if name, ok := getPaymentMethodNames()[m]; ok {
		return name
	}
	return "unknown"
}

type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusPending
	PaymentStatusPaid
	PaymentStatusFailed
)

func getPaymentStatusNames() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		PaymentStatusPending: "pending",
		PaymentStatusPaid:    "paid",
		PaymentStatusFailed:  "failed",
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusNames() {
		if status != PaymentStatusUnknown && name == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status", fmt.Errorf("%q is not a valid payment status", s))
}

func (s PaymentStatus) Validate() error {
	if s <= PaymentStatusUnknown || s > PaymentStatusFailed {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if name, ok := getPaymentStatusNames()[s]; ok {
		return name
	}
	return "unknown"
}
