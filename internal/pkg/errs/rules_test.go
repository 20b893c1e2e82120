package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleViolationError(t *testing.T) {
	testCases := []struct {
		name     string
		err      *errs.RuleViolationError
		kind     error
		expected string
	}{
		{
			name:     "invalid transition",
			err:      errs.NewInvalidTransitionError("delivered", "advance"),
			kind:     errs.ErrInvalidTransition,
			expected: "invalid transition: cannot advance an order in status delivered",
		},
		{
			name:     "not assignable",
			err:      errs.NewNotAssignableError("status is pending"),
			kind:     errs.ErrNotAssignable,
			expected: "order is not assignable: status is pending",
		},
		{
			name:     "already claimed",
			err:      errs.NewAlreadyClaimedError("o1"),
			kind:     errs.ErrAlreadyClaimed,
			expected: "order is already claimed: order o1 has a driver",
		},
		{
			name:     "quota exhausted",
			err:      errs.NewQuotaExhaustedError("s1"),
			kind:     errs.ErrQuotaExhausted,
			expected: "delivery quota exhausted: store s1 has no remaining deliveries",
		},
		{
			name:     "already active",
			err:      errs.NewAlreadyActiveError("s1"),
			kind:     errs.ErrAlreadyActive,
			expected: "pack is already active: store s1 still has an active pack",
		},
		{
			name:     "forbidden",
			err:      errs.NewForbiddenError("not your order"),
			kind:     errs.ErrForbidden,
			expected: "action is forbidden: not your order",
		},
		{
			name:     "validation conflict without detail",
			err:      errs.NewValidationConflictError(""),
			kind:     errs.ErrValidationConflict,
			expected: "validation conflict",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.kind)
		})
	}
}

func TestRuleViolationError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("claim order: %w", errs.NewAlreadyClaimedError("o1"))

	require.ErrorIs(t, wrapped, errs.ErrAlreadyClaimed)
	assert.NotErrorIs(t, wrapped, errs.ErrNotAssignable)

	var ruleErr *errs.RuleViolationError
	require.True(t, errors.As(wrapped, &ruleErr))
	assert.Equal(t, errs.ErrAlreadyClaimed, ruleErr.Kind)
}
