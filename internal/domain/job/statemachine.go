package job

import (
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/samber/lo"
)

// transitions is the directed edge set of the job lifecycle. Absence of
// an edge means the transition is invalid. closed -> lead models a
// callback that spawns a new linked job, not a re-open of the same row.
var transitions = map[types.JobStatus][]types.JobStatus{
	types.JobStatusLead:       {types.JobStatusEstimated, types.JobStatusScheduled, types.JobStatusCancelled},
	types.JobStatusEstimated:  {types.JobStatusApproved, types.JobStatusDeclined, types.JobStatusCancelled},
	types.JobStatusApproved:   {types.JobStatusScheduled, types.JobStatusCancelled},
	types.JobStatusScheduled:  {types.JobStatusEnRoute, types.JobStatusInProgress, types.JobStatusCancelled},
	types.JobStatusEnRoute:    {types.JobStatusInProgress, types.JobStatusScheduled},
	types.JobStatusInProgress: {types.JobStatusPaused, types.JobStatusCompleted},
	types.JobStatusPaused:     {types.JobStatusInProgress, types.JobStatusCancelled},
	types.JobStatusCompleted:  {types.JobStatusInvoiced},
	types.JobStatusInvoiced:   {types.JobStatusPaid, types.JobStatusCompleted},
	types.JobStatusPaid:       {types.JobStatusClosed},
	types.JobStatusClosed:     {types.JobStatusLead},
}

type edge struct {
	from types.JobStatus
	to   types.JobStatus
}

// transitionEffects maps an edge to the ordered follow-up actions the
// dispatcher publishes after the transition commits.
var transitionEffects = map[edge][]types.EffectTag{
	{types.JobStatusApproved, types.JobStatusScheduled}: {
		types.EffectNotifyCustomerConfirmed,
		types.EffectCalendarAdd,
	},
	{types.JobStatusScheduled, types.JobStatusEnRoute}: {
		types.EffectStartLocationTracking,
		types.EffectNotifyCustomerETA,
	},
	{types.JobStatusEnRoute, types.JobStatusInProgress}: {
		types.EffectStopNavigation,
		types.EffectStartTimeTracking,
		types.EffectGeofenceCheckin,
	},
	{types.JobStatusInProgress, types.JobStatusPaused}: {
		types.EffectPauseTimeTracking,
	},
	{types.JobStatusPaused, types.JobStatusInProgress}: {
		types.EffectResumeTimeTracking,
	},
	{types.JobStatusInProgress, types.JobStatusCompleted}: {
		types.EffectStopTimeTracking,
		types.EffectRequestCompletionPhotos,
		types.EffectDraftInvoice,
	},
	{types.JobStatusCompleted, types.JobStatusInvoiced}: {
		types.EffectCreateInvoice,
		types.EffectSendInvoice,
	},
	{types.JobStatusInvoiced, types.JobStatusPaid}: {
		types.EffectRecordPaymentConfirmation,
		types.EffectSendReceipt,
		types.EffectScheduleReviewRequest,
	},
}

// CanTransition reports whether the edge (from, to) exists
func CanTransition(from, to types.JobStatus) bool {
	return lo.Contains(transitions[from], to)
}

// ValidateTransition returns an invalid transition error carrying the
// legal targets when the edge (from, to) does not exist.
func ValidateTransition(from, to types.JobStatus) error {
	if CanTransition(from, to) {
		return nil
	}
	return ierr.NewErrorf("cannot transition job from %s to %s", from, to).
		WithHintf("A job in status %s cannot move to %s", from, to).
		WithReportableDetails(map[string]any{
			"from":    from,
			"to":      to,
			"allowed": AllowedTargets(from),
		}).
		Mark(ierr.ErrInvalidTransition)
}

// AllowedTargets returns the statuses reachable in one step from the
// given status. The returned slice is a copy.
func AllowedTargets(from types.JobStatus) []types.JobStatus {
	targets := transitions[from]
	out := make([]types.JobStatus, len(targets))
	copy(out, targets)
	return out
}

// TransitionEffects returns the ordered effect tags for the edge
// (from, to), or nil when the edge carries no follow-up actions.
func TransitionEffects(from, to types.JobStatus) []types.EffectTag {
	tags := transitionEffects[edge{from, to}]
	if len(tags) == 0 {
		return nil
	}
	out := make([]types.EffectTag, len(tags))
	copy(out, tags)
	return out
}
