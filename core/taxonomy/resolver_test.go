// core/taxonomy/resolver_test.go
package taxonomy

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

// countingService wraps a Service and counts upstream calls per taxon.
type countingService struct {
	inner Service
	mu    sync.Mutex
	calls map[Taxon]int
}

func (c *countingService) Lineage(ctx context.Context, t Taxon) ([]Taxon, error) {
	c.mu.Lock()
	if c.calls == nil {
		c.calls = make(map[Taxon]int)
	}
	c.calls[t]++
	c.mu.Unlock()
	return c.inner.Lineage(ctx, t)
}

func (c *countingService) callsFor(t Taxon) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[t]
}

func testTree() *Static {
	return NewStatic(map[Taxon]Taxon{
		"root":    "",
		"phylum":  "root",
		"class":   "phylum",
		"genus":   "class",
		"species": "genus",
	})
}

func TestResolverMemoizes(t *testing.T) {
	svc := &countingService{inner: testTree()}
	r := NewResolver(svc)
	ctx := context.Background()

	want := Lineage{"genus", "class", "phylum", "root"}
	for i := 0; i < 3; i++ {
		got, err := r.LineageOf(ctx, "species")
		if err != nil {
			t.Fatalf("LineageOf: %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("lineage length = %d, want %d", len(got), len(want))
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("lineage[%d] = %q, want %q", j, got[j], want[j])
			}
		}
	}
	if n := svc.callsFor("species"); n != 1 {
		t.Errorf("upstream calls = %d, want 1", n)
	}
	if n := r.CachedLineages(); n != 1 {
		t.Errorf("cached lineages = %d, want 1", n)
	}
}

func TestResolverUnknownTaxonIsEmptyNotError(t *testing.T) {
	svc := &countingService{inner: testTree()}
	r := NewResolver(svc)

	lin, err := r.LineageOf(context.Background(), "nosuch")
	if err != nil {
		t.Fatalf("unknown taxon must not error, got %v", err)
	}
	if len(lin) != 0 {
		t.Errorf("unknown taxon lineage = %v, want empty", lin)
	}
	// The empty result is memoized too.
	if _, err := r.LineageOf(context.Background(), "nosuch"); err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if n := svc.callsFor("nosuch"); n != 1 {
		t.Errorf("upstream calls = %d, want 1", n)
	}
}

type flakyService struct {
	fails int32
	inner Service
}

func (f *flakyService) Lineage(ctx context.Context, t Taxon) ([]Taxon, error) {
	if atomic.AddInt32(&f.fails, -1) >= 0 {
		return nil, errors.New("service unavailable")
	}
	return f.inner.Lineage(ctx, t)
}

func TestResolverDoesNotCacheFaults(t *testing.T) {
	r := NewResolver(&flakyService{fails: 1, inner: testTree()})

	if _, err := r.LineageOf(context.Background(), "species"); err == nil {
		t.Fatal("expected fault on first lookup")
	}
	lin, err := r.LineageOf(context.Background(), "species")
	if err != nil {
		t.Fatalf("retry after fault: %v", err)
	}
	if len(lin) != 4 {
		t.Errorf("lineage length = %d, want 4", len(lin))
	}
}

func TestResolverConcurrentLookupsSingleUpstreamCall(t *testing.T) {
	svc := &countingService{inner: testTree()}
	r := NewResolver(svc)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.LineageOf(context.Background(), "genus"); err != nil {
				t.Errorf("LineageOf: %v", err)
			}
		}()
	}
	wg.Wait()

	if n := svc.callsFor("genus"); n != 1 {
		t.Errorf("upstream calls = %d, want 1", n)
	}
}
