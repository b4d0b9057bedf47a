package types

import (
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/samber/lo"
)

// EstimateStatus represents the current state of an estimate document
type EstimateStatus string

const (
	// EstimateStatusDraft indicates the estimate has not been sent to the customer yet
	EstimateStatusDraft EstimateStatus = "draft"
	// EstimateStatusSent indicates the estimate was delivered to the customer
	EstimateStatusSent EstimateStatus = "sent"
	// EstimateStatusViewed indicates the customer opened the estimate in the portal
	EstimateStatusViewed EstimateStatus = "viewed"
	// EstimateStatusApproved indicates the customer accepted the estimate
	EstimateStatusApproved EstimateStatus = "approved"
	// EstimateStatusDeclined indicates the customer rejected the estimate
	EstimateStatusDeclined EstimateStatus = "declined"
	// EstimateStatusConverted indicates the estimate was converted into an invoice
	EstimateStatusConverted EstimateStatus = "converted"
	// EstimateStatusExpired indicates the estimate passed its valid-until date
	EstimateStatusExpired EstimateStatus = "expired"
)

func (s EstimateStatus) String() string {
	return string(s)
}

func (s EstimateStatus) Validate() error {
	allowed := []EstimateStatus{
		EstimateStatusDraft,
		EstimateStatusSent,
		EstimateStatusViewed,
		EstimateStatusApproved,
		EstimateStatusDeclined,
		EstimateStatusConverted,
		EstimateStatusExpired,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid estimate status").
			WithHint("Please provide a valid estimate status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
