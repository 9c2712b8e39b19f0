// internal/cli/flagset.go
package cli

// Parse is the top-level call for CLI parsing.
func Parse(argv []string) (Options, error) {
	return ParseArgs(NewFlagSet("taxfilter"), argv)
}
