package types

// EffectTag is an abstract follow-up action derived from a job status
// transition. Tags are handed to the effect dispatcher and executed by an
// external worker; they are never performed synchronously.
type EffectTag string

const (
	EffectNotifyCustomerConfirmed   EffectTag = "notify_customer_confirmed"
	EffectCalendarAdd               EffectTag = "calendar_add"
	EffectStartLocationTracking     EffectTag = "start_location_tracking"
	EffectNotifyCustomerETA         EffectTag = "notify_customer_eta"
	EffectStopNavigation            EffectTag = "stop_navigation"
	EffectStartTimeTracking         EffectTag = "start_time_tracking"
	EffectGeofenceCheckin           EffectTag = "geofence_checkin"
	EffectPauseTimeTracking         EffectTag = "pause_time_tracking"
	EffectResumeTimeTracking        EffectTag = "resume_time_tracking"
	EffectStopTimeTracking          EffectTag = "stop_time_tracking"
	EffectRequestCompletionPhotos   EffectTag = "request_completion_photos"
	EffectDraftInvoice              EffectTag = "draft_invoice"
	EffectCreateInvoice             EffectTag = "create_invoice"
	EffectSendInvoice               EffectTag = "send_invoice"
	EffectRecordPaymentConfirmation EffectTag = "record_payment_confirmation"
	EffectSendReceipt               EffectTag = "send_receipt"
	EffectScheduleReviewRequest     EffectTag = "schedule_review_request"
)

func (e EffectTag) String() string {
	return string(e)
}
