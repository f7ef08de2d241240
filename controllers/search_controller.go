package controllers

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/madhupandey29/shofy-storefront/search"
)

type searchSessionEntry struct {
	session  *search.Session
	lastSeen time.Time
}

// SearchController exposes the aggregated search: a synchronous endpoint for
// settled queries and debounced sessions for keystroke-level input. Sessions
// nothing touches within idleTTL are evicted, so an abandoned session cannot
// hold its debouncer goroutine forever.
type SearchController struct {
	search     SearchAPI
	cache      *CacheManager
	validator  *RequestValidator
	newSession func() *search.Session
	idleTTL    time.Duration

	mu       sync.Mutex
	sessions map[string]*searchSessionEntry
}

func NewSearchController(searchAPI SearchAPI, cache *CacheManager, newSession func() *search.Session) *SearchController {
	return &SearchController{
		search:     searchAPI,
		cache:      cache,
		validator:  NewRequestValidator(),
		newSession: newSession,
		idleTTL:    DefaultSessionIdleTTL,
		sessions:   make(map[string]*searchSessionEntry),
	}
}

// Search runs one classify-fan-out-merge cycle for an already-settled query.
func (sc *SearchController) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusOK, search.Outcome{Query: "", Results: nil})
		return
	}

	if cached, ok := sc.cache.GetSearch(c.Request.Context(), q); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	out := sc.search.Search(c.Request.Context(), q)
	sc.cache.SetSearchAsync(q, out)
	c.JSON(http.StatusOK, out)
}

// CreateSession opens a debounced search session.
func (sc *SearchController) CreateSession(c *gin.Context) {
	id := uuid.NewString()
	now := time.Now()

	sc.mu.Lock()
	sc.evictIdleLocked(now)
	sc.sessions[id] = &searchSessionEntry{session: sc.newSession(), lastSeen: now}
	sc.mu.Unlock()

	zap.L().Info("Search session created", zap.String("session_id", id))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateQuery feeds a keystroke-level query update into a session. The
// aggregation runs only once the input settles, so rapid updates cost
// nothing upstream.
func (sc *SearchController) UpdateQuery(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	req, err := sc.validator.ParseQueryUpdate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session.SetQuery(req.Query)
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// GetSession returns the session's settled snapshot.
func (sc *SearchController) GetSession(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// DeleteSession tears a session down, cancelling any pending debounce or
// in-flight fetch.
func (sc *SearchController) DeleteSession(c *gin.Context) {
	id := c.Param("id")

	sc.mu.Lock()
	entry, ok := sc.sessions[id]
	if ok {
		delete(sc.sessions, id)
	}
	sc.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	entry.session.Close()
	c.Status(http.StatusNoContent)
}

func (sc *SearchController) get(id string) (*search.Session, bool) {
	now := time.Now()

	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.evictIdleLocked(now)
	entry, ok := sc.sessions[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = now
	return entry.session, true
}

func (sc *SearchController) evictIdleLocked(now time.Time) {
	for id, entry := range sc.sessions {
		if now.Sub(entry.lastSeen) <= sc.idleTTL {
			continue
		}
		delete(sc.sessions, id)
		entry.session.Close()
		zap.L().Info("Idle search session evicted", zap.String("session_id", id))
	}
}
