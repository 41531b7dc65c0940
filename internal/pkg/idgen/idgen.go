package idgen

import "github.com/google/uuid"

const (
	PrefixJobOrder   = "JO"
	PrefixAssignment = "AS"
	PrefixTimesheet  = "TS"
)

// New returns a prefixed, collision-resistant identifier such as
// "JO-9f3c2a1e-…". Prefixes keep ids recognizable in logs and exports.
func New(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "-" + uuid.NewString()
}
