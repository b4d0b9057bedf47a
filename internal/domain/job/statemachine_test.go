package job

import (
	"testing"

	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ValidEdges(t *testing.T) {
	valid := []struct {
		from types.JobStatus
		to   types.JobStatus
	}{
		{types.JobStatusLead, types.JobStatusEstimated},
		{types.JobStatusLead, types.JobStatusScheduled},
		{types.JobStatusLead, types.JobStatusCancelled},
		{types.JobStatusEstimated, types.JobStatusApproved},
		{types.JobStatusEstimated, types.JobStatusDeclined},
		{types.JobStatusApproved, types.JobStatusScheduled},
		{types.JobStatusScheduled, types.JobStatusEnRoute},
		{types.JobStatusScheduled, types.JobStatusInProgress},
		{types.JobStatusEnRoute, types.JobStatusInProgress},
		{types.JobStatusEnRoute, types.JobStatusScheduled},
		{types.JobStatusInProgress, types.JobStatusPaused},
		{types.JobStatusInProgress, types.JobStatusCompleted},
		{types.JobStatusPaused, types.JobStatusInProgress},
		{types.JobStatusPaused, types.JobStatusCancelled},
		{types.JobStatusCompleted, types.JobStatusInvoiced},
		{types.JobStatusInvoiced, types.JobStatusPaid},
		{types.JobStatusInvoiced, types.JobStatusCompleted},
		{types.JobStatusPaid, types.JobStatusClosed},
		{types.JobStatusClosed, types.JobStatusLead},
	}
	for _, tc := range valid {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be valid", tc.from, tc.to)
		assert.NoError(t, ValidateTransition(tc.from, tc.to))
	}
}

func TestCanTransition_InvalidEdges(t *testing.T) {
	invalid := []struct {
		from types.JobStatus
		to   types.JobStatus
	}{
		{types.JobStatusLead, types.JobStatusInProgress},
		{types.JobStatusLead, types.JobStatusPaid},
		{types.JobStatusEstimated, types.JobStatusScheduled},
		{types.JobStatusScheduled, types.JobStatusCompleted},
		{types.JobStatusInProgress, types.JobStatusCancelled},
		{types.JobStatusCompleted, types.JobStatusPaid},
		{types.JobStatusPaid, types.JobStatusLead},
		{types.JobStatusCancelled, types.JobStatusLead},
		{types.JobStatusClosed, types.JobStatusClosed},
		{types.JobStatusInProgress, types.JobStatusInProgress},
	}
	for _, tc := range invalid {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be invalid", tc.from, tc.to)
		err := ValidateTransition(tc.from, tc.to)
		assert.Error(t, err)
		assert.True(t, ierr.IsInvalidTransition(err))
	}
}

func TestAllowedTargets(t *testing.T) {
	assert.ElementsMatch(t,
		[]types.JobStatus{types.JobStatusEstimated, types.JobStatusScheduled, types.JobStatusCancelled},
		AllowedTargets(types.JobStatusLead),
	)
	assert.Empty(t, AllowedTargets(types.JobStatusCancelled))
	assert.Empty(t, AllowedTargets(types.JobStatusDeclined))
}

func TestTransitionEffects(t *testing.T) {
	assert.Equal(t,
		[]types.EffectTag{types.EffectNotifyCustomerConfirmed, types.EffectCalendarAdd},
		TransitionEffects(types.JobStatusApproved, types.JobStatusScheduled),
	)
	assert.Equal(t,
		[]types.EffectTag{types.EffectStopNavigation, types.EffectStartTimeTracking, types.EffectGeofenceCheckin},
		TransitionEffects(types.JobStatusEnRoute, types.JobStatusInProgress),
	)
	assert.Equal(t,
		[]types.EffectTag{types.EffectRecordPaymentConfirmation, types.EffectSendReceipt, types.EffectScheduleReviewRequest},
		TransitionEffects(types.JobStatusInvoiced, types.JobStatusPaid),
	)

	// edges without follow-up actions
	assert.Nil(t, TransitionEffects(types.JobStatusLead, types.JobStatusEstimated))
	assert.Nil(t, TransitionEffects(types.JobStatusPaid, types.JobStatusClosed))
	assert.Nil(t, TransitionEffects(types.JobStatusClosed, types.JobStatusLead))
}

func TestTransitionEffects_ReturnsCopy(t *testing.T) {
	tags := TransitionEffects(types.JobStatusCompleted, types.JobStatusInvoiced)
	tags[0] = types.EffectTag("mutated")

	again := TransitionEffects(types.JobStatusCompleted, types.JobStatusInvoiced)
	assert.Equal(t, types.EffectCreateInvoice, again[0])
}
