package job

import (
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
)

// Job is a unit of field work for a customer. Its status only changes
// through validated transitions; version increments on every write.
type Job struct {
	ID             string            `db:"id" json:"id"`
	CustomerID     string            `db:"customer_id" json:"customer_id"`
	PropertyID     *string           `db:"property_id" json:"property_id,omitempty"`
	ParentJobID    *string           `db:"parent_job_id" json:"parent_job_id,omitempty"`
	Title          string            `db:"title" json:"title"`
	Description    string            `db:"description" json:"description"`
	JobStatus      types.JobStatus   `db:"job_status" json:"job_status"`
	Priority       types.JobPriority `db:"priority" json:"priority"`
	AssignedTo     *string           `db:"assigned_to" json:"assigned_to,omitempty"`
	ScheduledStart *time.Time        `db:"scheduled_start" json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time        `db:"scheduled_end" json:"scheduled_end,omitempty"`
	BudgetAmount   decimal.Decimal   `db:"budget_amount" json:"budget_amount"`
	TotalAmount    decimal.Decimal   `db:"total_amount" json:"total_amount"`
	StartedAt      *time.Time        `db:"started_at" json:"started_at,omitempty"`
	CompletedAt    *time.Time        `db:"completed_at" json:"completed_at,omitempty"`
	Version        int               `db:"version" json:"version"`

	types.BaseModel
}

// StatusHistory is one immutable row of the per job transition log
type StatusHistory struct {
	ID         string          `db:"id" json:"id"`
	JobID      string          `db:"job_id" json:"job_id"`
	FromStatus types.JobStatus `db:"from_status" json:"from_status"`
	ToStatus   types.JobStatus `db:"to_status" json:"to_status"`
	ChangedBy  string          `db:"changed_by" json:"changed_by"`
	Latitude   *float64        `db:"latitude" json:"latitude,omitempty"`
	Longitude  *float64        `db:"longitude" json:"longitude,omitempty"`
	Note       *string         `db:"note" json:"note,omitempty"`
	TenantID   string          `db:"tenant_id" json:"tenant_id"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}
