// core/assign/assign_test.go
package assign

import (
	"testing"

	"taxfilter-core/taxonomy"
)

func TestMapSetDedupesAndSorts(t *testing.T) {
	m := NewMap()
	m.Set("seq1", []taxonomy.Taxon{"b", "a", "b", "", "c"})

	got := m.TaxaOf("seq1")
	want := []taxonomy.Taxon{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("taxa[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMapTotalLookup(t *testing.T) {
	m := NewMap()
	if got := m.TaxaOf("absent"); len(got) != 0 {
		t.Errorf("TaxaOf(absent) = %v, want empty", got)
	}
	m.Set("bare", nil)
	if got := m.TaxaOf("bare"); len(got) != 0 {
		t.Errorf("TaxaOf(bare) = %v, want empty", got)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}
