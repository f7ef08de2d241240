package search

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/madhupandey29/shofy-storefront/models"
)

// MaxResults caps the merged result list.
const MaxResults = 18

// FetchFunc issues one endpoint's request for a query.
type FetchFunc func(ctx context.Context, query string) ([]models.SearchResultItem, error)

// Endpoint is one entry of the search registry. Numeric endpoints are active
// only for NUMERIC queries, the rest only for TEXTUAL ones; a query never
// activates both groups.
type Endpoint struct {
	Name    string
	Numeric bool
	Fetch   FetchFunc
}

// Outcome is the settled result of one aggregated search.
type Outcome struct {
	Query   string                    `json:"query"`
	Numeric bool                      `json:"numeric"`
	Results []models.SearchResultItem `json:"results"`
	// Failed is set only when every active endpoint errored; partial
	// failure degrades silently to fewer results.
	Failed bool `json:"failed"`
}

// Aggregator fans a classified query out across the endpoint registry and
// merges the results: concatenation in registry order, first occurrence of
// an id wins, capped at MaxResults. Endpoint failures are isolated; one
// broken endpoint never blocks or aborts the rest.
type Aggregator struct {
	endpoints []Endpoint
}

func NewAggregator(endpoints []Endpoint) *Aggregator {
	return &Aggregator{endpoints: endpoints}
}

// Search runs the fan-out for query. All active fetches are issued
// back-to-back and awaited together; merge order follows the registry, not
// wall-clock completion order.
func (a *Aggregator) Search(ctx context.Context, query string) Outcome {
	q := strings.TrimSpace(query)
	cls := Classify(q)
	out := Outcome{Query: q, Numeric: cls == ClassNumeric, Results: []models.SearchResultItem{}}
	if cls == ClassNone {
		return out
	}

	type slot struct {
		items []models.SearchResultItem
		err   error
	}
	slots := make([]*slot, len(a.endpoints))

	var wg sync.WaitGroup
	active := 0
	for i, ep := range a.endpoints {
		if ep.Numeric != (cls == ClassNumeric) {
			continue
		}
		active++
		s := &slot{}
		slots[i] = s
		wg.Add(1)
		go func(ep Endpoint, s *slot) {
			defer wg.Done()
			s.items, s.err = ep.Fetch(ctx, q)
			if s.err != nil {
				zap.L().Warn("search endpoint failed",
					zap.String("endpoint", ep.Name),
					zap.String("query", q),
					zap.Error(s.err),
				)
			}
		}(ep, s)
	}
	wg.Wait()

	failed := 0
	merged := make([]models.SearchResultItem, 0, MaxResults)
	for _, s := range slots {
		if s == nil {
			continue
		}
		if s.err != nil {
			failed++
			continue
		}
		merged = append(merged, s.items...)
	}

	out.Results = DedupeByID(merged)
	if len(out.Results) > MaxResults {
		out.Results = out.Results[:MaxResults]
	}
	out.Failed = active > 0 && failed == active
	return out
}

// DedupeByID keeps the first occurrence of each id, preserving input order.
// Items without an id are dropped.
func DedupeByID(items []models.SearchResultItem) []models.SearchResultItem {
	seen := make(map[string]bool, len(items))
	out := make([]models.SearchResultItem, 0, len(items))
	for _, it := range items {
		if it.ID == "" || seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}
