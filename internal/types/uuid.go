package types

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex job_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

// GeneratePortalToken returns an unguessable token granting a customer
// scoped access to a single document through the portal endpoints.
func GeneratePortalToken() string {
	return uuid.NewString()
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_JOB                = "job"
	UUID_PREFIX_JOB_STATUS_HISTORY = "jsh"
	UUID_PREFIX_ESTIMATE           = "est"
	UUID_PREFIX_INVOICE            = "inv"
	UUID_PREFIX_LINE_ITEM          = "li"
	UUID_PREFIX_PAYMENT            = "pay"
	UUID_PREFIX_CUSTOMER           = "cust"
	UUID_PREFIX_TENANT             = "tenant"
)
