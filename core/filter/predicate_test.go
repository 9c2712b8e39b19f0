// core/filter/predicate_test.go
package filter

import (
	"testing"

	"taxfilter-core/counts"
	"taxfilter-core/taxonomy"
)

func TestAcceptMinimalLineageIsDropped(t *testing.T) {
	// Multiset [A, A, B] with both taxa directly under root. Even at
	// ancestry level 0, A's one-entry lineage leaves nothing after the
	// root-side discard, so A is dropped outright.
	cs := counts.Counts{
		"A":    {Count: 2, Lineage: taxonomy.Lineage{"root"}},
		"B":    {Count: 1, Lineage: taxonomy.Lineage{"root"}},
		"root": {Count: 3},
	}
	cfg := Config{MinRatio: 0.5, AncestryLevel: 0}
	if cfg.Accept(cs, 3, "A") {
		t.Error("taxon with single-entry lineage must be dropped")
	}
}

func deepCounts() counts.Counts {
	// species → genus → family → order → class → phylum → root
	return counts.Counts{
		"species": {Count: 3, Lineage: taxonomy.Lineage{"genus", "family", "order", "class", "phylum", "root"}},
		"genus":   {Count: 3, Lineage: taxonomy.Lineage{"family", "order", "class", "phylum", "root"}},
		"family":  {Count: 3, Lineage: taxonomy.Lineage{"order", "class", "phylum", "root"}},
		"order":   {Count: 3, Lineage: taxonomy.Lineage{"class", "phylum", "root"}},
		"class":   {Count: 4, Lineage: taxonomy.Lineage{"phylum", "root"}},
		"phylum":  {Count: 4, Lineage: taxonomy.Lineage{"root"}},
		"root":    {Count: 4},
	}
}

func TestAcceptComparisonAncestorRatio(t *testing.T) {
	cs := deepCounts()

	tests := []struct {
		name  string
		cfg   Config
		total int
		taxon taxonomy.Taxon
		want  bool
	}{
		// Level 2 on a 6-deep lineage compares "order" (root-first index 3).
		{name: "ratio at threshold accepts", cfg: Config{MinRatio: 0.75, AncestryLevel: 2}, total: 4, taxon: "species", want: true},
		{name: "ratio below threshold rejects", cfg: Config{MinRatio: 0.80, AncestryLevel: 2}, total: 4, taxon: "species", want: false},
		// Level 1 compares "class" (count 4): full share.
		{name: "shallower level compares nearer root", cfg: Config{MinRatio: 1.0, AncestryLevel: 1}, total: 4, taxon: "species", want: true},
		// "order" has a 3-entry lineage: too short for level 2.
		{name: "lineage too short rejects", cfg: Config{MinRatio: 0.0, AncestryLevel: 2}, total: 4, taxon: "order", want: false},
		{name: "unknown taxon rejects", cfg: Config{MinRatio: 0.0, AncestryLevel: 2}, total: 4, taxon: "nosuch", want: false},
		{name: "zero total rejects without fault", cfg: Config{MinRatio: 0.0, AncestryLevel: 2}, total: 0, taxon: "species", want: false},
	}

	for _, tc := range tests {
		if got := tc.cfg.Accept(cs, tc.total, tc.taxon); got != tc.want {
			t.Errorf("%s: Accept = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAcceptMissingComparisonAncestor(t *testing.T) {
	// Lineage names an ancestor that never made it into the counts.
	cs := counts.Counts{
		"leaf": {Count: 1, Lineage: taxonomy.Lineage{"a", "b", "c", "d"}},
	}
	cfg := Config{MinRatio: 0.0, AncestryLevel: 2}
	if cfg.Accept(cs, 1, "leaf") {
		t.Error("missing comparison ancestor must reject")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: DefaultConfig(), wantErr: false},
		{name: "ratio zero", cfg: Config{MinRatio: 0, AncestryLevel: 0}, wantErr: false},
		{name: "ratio one", cfg: Config{MinRatio: 1, AncestryLevel: 0}, wantErr: false},
		{name: "ratio negative", cfg: Config{MinRatio: -0.1}, wantErr: true},
		{name: "ratio above one", cfg: Config{MinRatio: 1.1}, wantErr: true},
		{name: "negative level", cfg: Config{MinRatio: 0.5, AncestryLevel: -1}, wantErr: true},
	}
	for _, tc := range tests {
		err := tc.cfg.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}
