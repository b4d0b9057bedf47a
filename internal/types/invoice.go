package types

import (
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus represents the current state of an invoice in its lifecycle.
// paid and void are terminal; paid is derived from payment application and
// holds exactly when amount_due reaches zero.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusSent          InvoiceStatus = "sent"
	InvoiceStatusViewed        InvoiceStatus = "viewed"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusVoid          InvoiceStatus = "void"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusViewed,
		InvoiceStatusPartiallyPaid,
		InvoiceStatusPaid,
		InvoiceStatusVoid,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Please provide a valid invoice status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// DocumentKind selects a tenant-scoped numbering sequence
type DocumentKind string

const (
	DocumentKindEstimate DocumentKind = "estimate"
	DocumentKindInvoice  DocumentKind = "invoice"
)

func (k DocumentKind) Validate() error {
	allowed := []DocumentKind{
		DocumentKindEstimate,
		DocumentKindInvoice,
	}
	if !lo.Contains(allowed, k) {
		return ierr.NewError("invalid document kind").
			WithHint("Please provide a valid document kind").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
