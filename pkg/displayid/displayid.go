// Package displayid generates the human-facing record identifiers used on
// printed invoices and reports: a type prefix, the creation date, and a
// zero-padded sequence derived from the current collection size. The scheme
// is not collision-free under concurrent writers; records are additionally
// keyed by uuid, and the lab runs a single operator session.
package displayid

import (
	"fmt"
	"time"
)

// New formats an identifier such as "INV20260829-0007" where seq is the
// number of records already in the collection.
func New(prefix string, t time.Time, seq int) string {
	return fmt.Sprintf("%s%s-%04d", prefix, t.Format("20060102"), seq+1)
}
