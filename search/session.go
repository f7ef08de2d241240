package search

import (
	"context"
	"sync"
	"time"

	"github.com/madhupandey29/shofy-storefront/models"
)

// Snapshot is the session state the overlay renders from.
type Snapshot struct {
	Query   string                    `json:"query"`
	Numeric bool                      `json:"numeric"`
	Results []models.SearchResultItem `json:"results"`
	Loading bool                      `json:"loading"`
	Failed  bool                      `json:"failed"`
}

// Session drives a debounced search: keystroke-level updates go in through
// SetQuery, the aggregator runs only once the input settles, and Snapshot
// always reflects the latest settled query. A fetch superseded by a newer
// query is cancelled and its late result discarded, so in-flight races can
// never surface stale output.
type Session struct {
	agg *Aggregator
	deb *Debouncer

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	snap   Snapshot

	done chan struct{}
	once sync.Once
}

func NewSession(agg *Aggregator, delay time.Duration) *Session {
	s := &Session{
		agg:  agg,
		deb:  NewDebouncer(delay),
		snap: Snapshot{Results: []models.SearchResultItem{}},
		done: make(chan struct{}),
	}
	go s.run()
	return s
}

// SetQuery feeds one keystroke-level update.
func (s *Session) SetQuery(q string) {
	s.deb.Set(q)
}

// Snapshot returns the current session state. The result slice is shared
// read-only; callers must not mutate it.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Close tears the session down: the pending debounce timer is cancelled and
// any in-flight fetch aborted.
func (s *Session) Close() {
	s.once.Do(func() {
		s.deb.Close()
		close(s.done)
		s.mu.Lock()
		if s.cancel != nil {
			s.cancel()
		}
		s.mu.Unlock()
	})
}

func (s *Session) run() {
	for {
		select {
		case q := <-s.deb.Out():
			s.dispatch(q)
		case <-s.done:
			return
		}
	}
}

func (s *Session) dispatch(q string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	if s.cancel != nil {
		s.cancel()
	}

	cls := Classify(q)
	if cls == ClassNone {
		s.cancel = nil
		s.snap = Snapshot{Results: []models.SearchResultItem{}}
		s.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.snap = Snapshot{
		Query:   q,
		Numeric: cls == ClassNumeric,
		Results: s.snap.Results,
		Loading: true,
	}
	s.mu.Unlock()

	go func() {
		out := s.agg.Search(ctx, q)
		cancel()
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			// A newer query settled while this fetch was in flight.
			return
		}
		s.snap = Snapshot{
			Query:   out.Query,
			Numeric: out.Numeric,
			Results: out.Results,
			Failed:  out.Failed,
		}
	}()
}
