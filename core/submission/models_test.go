package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusSupervisorReview, true},
		{StatusPending, StatusAdminReview, false},
		{StatusSupervisorReview, StatusSupervisorApproved, true},
		{StatusSupervisorReview, StatusSupervisorRejected, true},
		{StatusSupervisorReview, StatusAdminApproved, false},
		{StatusSupervisorApproved, StatusAdminReview, true},
		{StatusSupervisorRejected, StatusResubmitted, true},
		{StatusSupervisorRejected, StatusSupervisorReview, false},
		{StatusAdminReview, StatusAdminApproved, true},
		{StatusAdminReview, StatusAdminRejected, true},
		{StatusAdminApproved, StatusResubmitted, false},
		{StatusAdminRejected, StatusSupervisorReview, false},
		{StatusResubmitted, StatusSupervisorReview, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestStatusTransition(t *testing.T) {
	got, err := StatusPending.Transition(StatusSupervisorReview)
	assert.NoError(t, err)
	assert.Equal(t, StatusSupervisorReview, got)

	got, err = StatusAdminApproved.Transition(StatusSupervisorReview)
	assert.Error(t, err)
	assert.Equal(t, StatusAdminApproved, got, "failed transition keeps the current state")
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusAdminApproved, StatusAdminRejected} {
		assert.True(t, s.Terminal(), s)
	}
	for _, s := range []Status{
		StatusPending, StatusSupervisorReview, StatusSupervisorApproved,
		StatusSupervisorRejected, StatusAdminReview, StatusResubmitted,
	} {
		assert.False(t, s.Terminal(), s)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusResubmitted.Valid())
	assert.False(t, Status("graded").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatusApproved(t *testing.T) {
	assert.True(t, StatusAdminApproved.Approved())
	assert.False(t, StatusSupervisorApproved.Approved())
}
