// core/filter/config.go
package filter

import "fmt"

// Defaults for the consistency decision.
const (
	DefaultMinRatio      = 0.75
	DefaultAncestryLevel = 2
)

// Config holds the consistency-decision parameters.
type Config struct {
	// MinRatio is the minimum share of the cluster's total candidate count
	// that a taxon's comparison ancestor must carry for the taxon to be
	// accepted. In [0, 1].
	MinRatio float64

	// AncestryLevel selects the comparison ancestor, counted from the root
	// end of the lineage (see Config.Accept).
	AncestryLevel int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{MinRatio: DefaultMinRatio, AncestryLevel: DefaultAncestryLevel}
}

// Validate rejects parameter values the decision rule cannot work with.
func (c Config) Validate() error {
	if c.MinRatio < 0 || c.MinRatio > 1 {
		return fmt.Errorf("filter: min ratio %v outside [0, 1]", c.MinRatio)
	}
	if c.AncestryLevel < 0 {
		return fmt.Errorf("filter: ancestry level %d is negative", c.AncestryLevel)
	}
	return nil
}
