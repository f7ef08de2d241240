package controllers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/madhupandey29/shofy-storefront/models"
	"github.com/madhupandey29/shofy-storefront/search"
	"github.com/madhupandey29/shofy-storefront/store"
)

// uiSession bundles one browsing session's shared UI state: facet
// selections, the quick-view modal, the filter sidebar and the search
// overlay with its debounced search.
type uiSession struct {
	facets   *store.FacetStore
	modal    *store.ProductModal
	overlay  *store.SearchOverlay
	sidebar  *store.FilterSidebar
	search   *search.Session
	lastSeen time.Time
}

// SessionController owns the UI sessions and exposes their state-machine
// operations. These operations are the only way session state mutates.
// Sessions nothing touches within idleTTL are evicted along with their
// search goroutines.
type SessionController struct {
	validator *RequestValidator
	newSearch func() *search.Session
	idleTTL   time.Duration

	mu       sync.Mutex
	sessions map[string]*uiSession
}

func NewSessionController(newSearch func() *search.Session) *SessionController {
	return &SessionController{
		validator: NewRequestValidator(),
		newSearch: newSearch,
		idleTTL:   DefaultSessionIdleTTL,
		sessions:  make(map[string]*uiSession),
	}
}

// CreateSession opens a fresh UI session.
func (sc *SessionController) CreateSession(c *gin.Context) {
	id := uuid.NewString()
	now := time.Now()
	session := &uiSession{
		facets: store.NewFacetStore(func(sel models.FacetSelection) {
			zap.L().Debug("Facet selection changed", zap.String("session_id", id), zap.Int("facets", len(sel)))
		}),
		modal:    store.NewProductModal(),
		overlay:  store.NewSearchOverlay(),
		sidebar:  store.NewFilterSidebar(),
		search:   sc.newSearch(),
		lastSeen: now,
	}

	sc.mu.Lock()
	sc.evictIdleLocked(now)
	sc.sessions[id] = session
	sc.mu.Unlock()

	zap.L().Info("UI session created", zap.String("session_id", id))
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetSession returns the whole session state in one payload.
func (sc *SessionController) GetSession(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"facets":        session.facets.Selection(),
		"modal":         session.modal.State(),
		"searchOverlay": session.overlay.State(),
		"search":        session.search.Snapshot(),
		"filterSidebar": session.sidebar.IsOpen(),
	})
}

// DeleteSession tears the session down.
func (sc *SessionController) DeleteSession(c *gin.Context) {
	id := c.Param("id")

	sc.mu.Lock()
	session, ok := sc.sessions[id]
	if ok {
		delete(sc.sessions, id)
	}
	sc.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	session.search.Close()
	c.Status(http.StatusNoContent)
}

// ToggleFacet flips one value in one facet's selection.
func (sc *SessionController) ToggleFacet(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	req, err := sc.validator.ParseToggle(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	selection := session.facets.Toggle(c.Param("key"), req.Value)
	c.JSON(http.StatusOK, gin.H{"facets": selection})
}

// ClearFacet removes a facet key entirely.
func (sc *SessionController) ClearFacet(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	selection := session.facets.Clear(c.Param("key"))
	c.JSON(http.StatusOK, gin.H{"facets": selection})
}

// GetFacets returns the current selection.
func (sc *SessionController) GetFacets(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"facets": session.facets.Selection()})
}

// OpenModal selects a raw product record for quick view. The body is the
// record itself, in whatever shape the caller has it.
func (sc *SessionController) OpenModal(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	var raw models.Raw
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, session.modal.Open(raw))
}

// CloseModal hides the quick view.
func (sc *SessionController) CloseModal(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session.modal.Close())
}

// OpenSidebar shows the filter drawer.
func (sc *SessionController) OpenSidebar(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"open": session.sidebar.Open()})
}

// CloseSidebar hides the filter drawer.
func (sc *SessionController) CloseSidebar(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"open": session.sidebar.Close()})
}

// SetOverlayQuery updates the search overlay's query. The raw string lands
// in the overlay state immediately; the debounced search session decides
// when to actually fetch.
func (sc *SessionController) SetOverlayQuery(c *gin.Context) {
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

	state := session.overlay.SetQuery(req.Query)
	session.search.SetQuery(req.Query)
	c.JSON(http.StatusOK, state)
}

// GetOverlay returns the overlay flags plus the settled search snapshot.
func (sc *SessionController) GetOverlay(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"overlay": session.overlay.State(),
		"search":  session.search.Snapshot(),
	})
}

// CloseOverlay hides the overlay and clears the pending search.
func (sc *SessionController) CloseOverlay(c *gin.Context) {
	session, ok := sc.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	state := session.overlay.Close()
	session.search.SetQuery("")
	c.JSON(http.StatusOK, state)
}

func (sc *SessionController) get(id string) (*uiSession, bool) {
	now := time.Now()

	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.evictIdleLocked(now)
	session, ok := sc.sessions[id]
	if !ok {
		return nil, false
	}
	session.lastSeen = now
	return session, true
}

func (sc *SessionController) evictIdleLocked(now time.Time) {
	for id, session := range sc.sessions {
		if now.Sub(session.lastSeen) <= sc.idleTTL {
			continue
		}
		delete(sc.sessions, id)
		session.search.Close()
		zap.L().Info("Idle UI session evicted", zap.String("session_id", id))
	}
}
