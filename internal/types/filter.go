package types

import (
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
)

const (
	defaultFilterLimit = 50
	maxFilterLimit     = 200
)

// QueryFilter carries cursor pagination parameters for list queries.
// The cursor is the id of the last row of the previous page; list queries
// return rows strictly older than the cursor.
type QueryFilter struct {
	Limit  int    `form:"limit" json:"limit"`
	Cursor string `form:"cursor" json:"cursor"`
}

func NewDefaultQueryFilter() QueryFilter {
	return QueryFilter{Limit: defaultFilterLimit}
}

func (f QueryFilter) GetLimit() int {
	if f.Limit <= 0 {
		return defaultFilterLimit
	}
	if f.Limit > maxFilterLimit {
		return maxFilterLimit
	}
	return f.Limit
}

func (f QueryFilter) Validate() error {
	if f.Limit < 0 {
		return ierr.NewError("limit must be non negative").
			WithHint("Please provide a valid page limit").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// JobFilter narrows job list queries
type JobFilter struct {
	QueryFilter
	Status     string `form:"status" json:"status"`
	Priority   string `form:"priority" json:"priority"`
	CustomerID string `form:"customer_id" json:"customer_id"`
	AssignedTo string `form:"assigned_to" json:"assigned_to"`
}

// DocumentFilter narrows estimate and invoice list queries
type DocumentFilter struct {
	QueryFilter
	Status     string `form:"status" json:"status"`
	CustomerID string `form:"customer_id" json:"customer_id"`
	JobID      string `form:"job_id" json:"job_id"`
}
