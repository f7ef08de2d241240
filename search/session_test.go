package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/madhupandey29/shofy-storefront/models"
)

type recordingFetcher struct {
	mu      sync.Mutex
	queries []string
}

func (r *recordingFetcher) fetch(ctx context.Context, q string) ([]models.SearchResultItem, error) {
	r.mu.Lock()
	r.queries = append(r.queries, q)
	r.mu.Unlock()
	return []models.SearchResultItem{{ID: "hit-" + q, Name: q}}, nil
}

func (r *recordingFetcher) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.queries))
	copy(out, r.queries)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never held")
}

func TestSessionFetchesOnlySettledQuery(t *testing.T) {
	rec := &recordingFetcher{}
	agg := NewAggregator([]Endpoint{{Name: "text", Fetch: rec.fetch}})
	s := NewSession(agg, 40*time.Millisecond)
	defer s.Close()

	s.SetQuery("c")
	s.SetQuery("co")
	s.SetQuery("cotton")

	waitFor(t, func() bool {
		snap := s.Snapshot()
		return snap.Query == "cotton" && !snap.Loading && len(snap.Results) == 1
	})

	if seen := rec.seen(); len(seen) != 1 || seen[0] != "cotton" {
		t.Fatalf("expected exactly one fetch for the settled query, got %v", seen)
	}

	snap := s.Snapshot()
	if snap.Results[0].ID != "hit-cotton" {
		t.Fatalf("unexpected results: %+v", snap.Results)
	}
}

func TestSessionEmptyQueryClears(t *testing.T) {
	rec := &recordingFetcher{}
	agg := NewAggregator([]Endpoint{{Name: "text", Fetch: rec.fetch}})
	s := NewSession(agg, 20*time.Millisecond)
	defer s.Close()

	s.SetQuery("silk")
	waitFor(t, func() bool { return len(s.Snapshot().Results) == 1 })

	s.SetQuery("")
	waitFor(t, func() bool {
		snap := s.Snapshot()
		return snap.Query == "" && len(snap.Results) == 0 && !snap.Loading
	})

	if seen := rec.seen(); len(seen) != 1 {
		t.Fatalf("empty query must not fetch, got %v", seen)
	}
}

func TestSessionLoadingWhileFetchInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(ctx context.Context, q string) ([]models.SearchResultItem, error) {
		close(started)
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return []models.SearchResultItem{{ID: "hit-" + q, Name: q}}, nil
	}

	agg := NewAggregator([]Endpoint{{Name: "text", Fetch: fetch}})
	s := NewSession(agg, 10*time.Millisecond)
	defer s.Close()

	s.SetQuery("velvet")
	<-started

	snap := s.Snapshot()
	if !snap.Loading {
		t.Fatalf("snapshot must report loading while the fetch is in flight: %+v", snap)
	}
	if snap.Query != "velvet" || snap.Failed {
		t.Fatalf("loading snapshot: %+v", snap)
	}

	close(release)
	waitFor(t, func() bool {
		snap := s.Snapshot()
		return !snap.Loading && len(snap.Results) == 1
	})
	if snap := s.Snapshot(); snap.Results[0].ID != "hit-velvet" {
		t.Fatalf("unexpected results: %+v", snap.Results)
	}
}

func TestSessionSupersededFetchIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	var mu sync.Mutex
	calls := 0

	slow := func(ctx context.Context, q string) ([]models.SearchResultItem, error) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			select {
			case <-release:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			return []models.SearchResultItem{{ID: "stale"}}, nil
		}
		return []models.SearchResultItem{{ID: "fresh-" + q}}, nil
	}

	agg := NewAggregator([]Endpoint{{Name: "text", Fetch: slow}})
	s := NewSession(agg, 10*time.Millisecond)
	defer s.Close()

	s.SetQuery("wool")
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	})

	// A newer query lands while the first fetch hangs.
	s.SetQuery("linen")
	waitFor(t, func() bool {
		snap := s.Snapshot()
		return snap.Query == "linen" && len(snap.Results) == 1
	})
	close(release)

	// Give the stale fetch a chance to (wrongly) overwrite.
	time.Sleep(50 * time.Millisecond)
	snap := s.Snapshot()
	if snap.Results[0].ID != "fresh-linen" {
		t.Fatalf("stale result surfaced: %+v", snap.Results)
	}
}

func TestSessionCloseStopsEmission(t *testing.T) {
	rec := &recordingFetcher{}
	agg := NewAggregator([]Endpoint{{Name: "text", Fetch: rec.fetch}})
	s := NewSession(agg, 30*time.Millisecond)

	s.SetQuery("pending")
	s.Close()

	time.Sleep(100 * time.Millisecond)
	if seen := rec.seen(); len(seen) != 0 {
		t.Fatalf("fetch fired after Close: %v", seen)
	}
}
