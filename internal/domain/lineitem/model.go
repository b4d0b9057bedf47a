package lineitem

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
)

// LineItem is one billed line on an estimate or an invoice. Exactly one
// of EstimateID and InvoiceID is set; total is quantity times unit
// price, frozen at document creation.
type LineItem struct {
	ID          string          `db:"id" json:"id"`
	EstimateID  *string         `db:"estimate_id" json:"estimate_id,omitempty"`
	InvoiceID   *string         `db:"invoice_id" json:"invoice_id,omitempty"`
	Description string          `db:"description" json:"description"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	Taxable     bool            `db:"taxable" json:"taxable"`
	Total       decimal.Decimal `db:"total" json:"total"`
	SortOrder   int             `db:"sort_order" json:"sort_order"`

	types.BaseModel
}

// CopyForInvoice clones the line item onto an invoice, preserving
// amounts and ordering. Used by estimate conversion.
func (li *LineItem) CopyForInvoice(ctx context.Context, invoiceID string) *LineItem {
	return &LineItem{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LINE_ITEM),
		InvoiceID:   &invoiceID,
		Description: li.Description,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
		Taxable:     li.Taxable,
		Total:       li.Total,
		SortOrder:   li.SortOrder,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// Repository persists line items alongside their owning document
type Repository interface {
	CreateBulk(ctx context.Context, items []*LineItem) error
	ListByEstimate(ctx context.Context, estimateID string) ([]*LineItem, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]*LineItem, error)
}
