package search

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/madhupandey29/shofy-storefront/models"
)

func fixedFetch(ids ...string) FetchFunc {
	return func(ctx context.Context, query string) ([]models.SearchResultItem, error) {
		items := make([]models.SearchResultItem, 0, len(ids))
		for _, id := range ids {
			items = append(items, models.SearchResultItem{ID: id, Name: "item " + id})
		}
		return items, nil
	}
}

func failingFetch(err error) FetchFunc {
	return func(ctx context.Context, query string) ([]models.SearchResultItem, error) {
		return nil, err
	}
}

func TestAggregatorDeduplicatesInEndpointOrder(t *testing.T) {
	agg := NewAggregator([]Endpoint{
		{Name: "gsm", Numeric: true, Fetch: fixedFetch("1", "2")},
		{Name: "oz", Numeric: true, Fetch: fixedFetch("2", "3")},
	})

	out := agg.Search(context.Background(), "120")
	want := []string{"1", "2", "3"}
	if len(out.Results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(out.Results))
	}
	for i, id := range want {
		if out.Results[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, out.Results[i].ID)
		}
	}
}

func TestAggregatorCapsAtMaxResults(t *testing.T) {
	ids := make([]string, 30)
	for i := range ids {
		ids[i] = fmt.Sprintf("id-%02d", i)
	}
	agg := NewAggregator([]Endpoint{
		{Name: "gsm", Numeric: true, Fetch: fixedFetch(ids...)},
	})

	out := agg.Search(context.Background(), "500")
	if len(out.Results) != MaxResults {
		t.Fatalf("expected %d results, got %d", MaxResults, len(out.Results))
	}
	for i := 0; i < MaxResults; i++ {
		if out.Results[i].ID != ids[i] {
			t.Errorf("position %d: expected %s, got %s", i, ids[i], out.Results[i].ID)
		}
	}
}

func TestAggregatorGroupsAreMutuallyExclusive(t *testing.T) {
	var textCalls, numericCalls int32
	agg := NewAggregator([]Endpoint{
		{Name: "text", Fetch: func(ctx context.Context, q string) ([]models.SearchResultItem, error) {
			atomic.AddInt32(&textCalls, 1)
			return []models.SearchResultItem{{ID: "t1"}}, nil
		}},
		{Name: "gsm", Numeric: true, Fetch: func(ctx context.Context, q string) ([]models.SearchResultItem, error) {
			atomic.AddInt32(&numericCalls, 1)
			return []models.SearchResultItem{{ID: "n1"}}, nil
		}},
	})

	out := agg.Search(context.Background(), "cotton")
	if atomic.LoadInt32(&textCalls) != 1 || atomic.LoadInt32(&numericCalls) != 0 {
		t.Fatalf("text query: text=%d numeric=%d", textCalls, numericCalls)
	}
	if out.Numeric {
		t.Error("text query flagged numeric")
	}

	out = agg.Search(context.Background(), "120")
	if atomic.LoadInt32(&textCalls) != 1 || atomic.LoadInt32(&numericCalls) != 1 {
		t.Fatalf("numeric query: text=%d numeric=%d", textCalls, numericCalls)
	}
	if !out.Numeric {
		t.Error("numeric query not flagged numeric")
	}
}

func TestAggregatorEmptyQueryFiresNothing(t *testing.T) {
	var calls int32
	counting := func(ctx context.Context, q string) ([]models.SearchResultItem, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	}
	agg := NewAggregator([]Endpoint{
		{Name: "text", Fetch: counting},
		{Name: "gsm", Numeric: true, Fetch: counting},
	})

	for _, q := range []string{"", "   "} {
		out := agg.Search(context.Background(), q)
		if len(out.Results) != 0 {
			t.Errorf("query %q: expected no results, got %d", q, len(out.Results))
		}
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("expected no endpoint calls, got %d", calls)
	}
}

func TestAggregatorIsolatesEndpointFailure(t *testing.T) {
	agg := NewAggregator([]Endpoint{
		{Name: "gsm", Numeric: true, Fetch: failingFetch(errors.New("boom"))},
		{Name: "oz", Numeric: true, Fetch: fixedFetch("ok")},
	})

	out := agg.Search(context.Background(), "80")
	if out.Failed {
		t.Error("partial failure must not set Failed")
	}
	if len(out.Results) != 1 || out.Results[0].ID != "ok" {
		t.Fatalf("expected surviving endpoint's results, got %+v", out.Results)
	}
}

func TestAggregatorFailedOnlyWhenAllActiveFail(t *testing.T) {
	agg := NewAggregator([]Endpoint{
		{Name: "gsm", Numeric: true, Fetch: failingFetch(errors.New("boom"))},
		{Name: "oz", Numeric: true, Fetch: failingFetch(errors.New("boom"))},
		{Name: "text", Fetch: fixedFetch("t1")}, // inactive for numeric queries
	})

	out := agg.Search(context.Background(), "80")
	if !out.Failed {
		t.Error("expected Failed when every active endpoint errors")
	}
	if len(out.Results) != 0 {
		t.Errorf("expected no results, got %+v", out.Results)
	}
}

func TestDedupeByID(t *testing.T) {
	in := []models.SearchResultItem{
		{ID: "1"}, {ID: "2"}, {ID: "2"}, {ID: "3"}, {ID: ""}, {ID: "1"},
	}
	out := DedupeByID(in)
	want := []string{"1", "2", "3"}
	if len(out) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(out))
	}
	for i, id := range want {
		if out[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, out[i].ID)
		}
	}
}
