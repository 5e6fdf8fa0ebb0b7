package repository

import "github.com/google/uuid"

// ID prefixes per entity kind.
const (
	prefixProduct       = "prod-"
	prefixCategory      = "cat-"
	prefixReview        = "rev-"
	prefixSocialLink    = "soc-"
	prefixQuickLink     = "ql-"
	prefixPaymentMethod = "pay-"
)

// newID returns a prefixed, time-ordered unique id (UUIDv7).
func newID(prefix string) string {
	return prefix + uuid.Must(uuid.NewV7()).String()
}
