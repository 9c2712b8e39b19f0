// core/taxonomy/service.go
package taxonomy

import (
	"context"
	"errors"
)

// ErrUnknownTaxon is returned by a Service when it has no record of a taxon.
// Resolver treats it as "no ancestors known" (empty lineage), not a fault.
var ErrUnknownTaxon = errors.New("taxonomy: unknown taxon")

// Service answers ancestor-chain queries against an external taxonomy.
// Implementations return the ancestors of t ordered nearest-first, or
// ErrUnknownTaxon when t is not in the taxonomy. Any other error is a
// transport/service fault and is surfaced to the caller.
type Service interface {
	Lineage(ctx context.Context, t Taxon) ([]Taxon, error)
}
