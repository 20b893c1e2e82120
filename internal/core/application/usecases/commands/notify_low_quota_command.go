package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrNotifyLowQuotaCommandIsNotConstructed = errors.New(
	"NotifyLowQuotaCommand must be created via NewNotifyLowQuotaCommand constructor",
)

// NotifyLowQuotaCommand alerts stores whose remaining deliveries dropped to the threshold.
type NotifyLowQuotaCommand struct { //nolint:recvcheck //using for validation
	threshold int

	guard guard.ConstructorGuard
}

func NewNotifyLowQuotaCommand(threshold int) (NotifyLowQuotaCommand, error) {
	cmd := NotifyLowQuotaCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setThreshold(threshold); err != nil {
		return NotifyLowQuotaCommand{}, err
	}

	return cmd, nil
}

func (c NotifyLowQuotaCommand) Validate() error {
	return c.guard.Validate(ErrNotifyLowQuotaCommandIsNotConstructed)
}

func (c NotifyLowQuotaCommand) Threshold() int {
	return c.threshold
}

func (c *NotifyLowQuotaCommand) setThreshold(threshold int) error {
	if threshold < 0 {
		return errs.NewValueIsInvalidErrorWithCause("threshold", fmt.Errorf("%d is negative", threshold))
	}
	c.threshold = threshold
	return nil
}
