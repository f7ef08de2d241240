package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/madhupandey29/shofy-storefront/models"
)

func newFilterRouter(fc *FilterController) *gin.Engine {
	r := gin.New()
	r.GET("/filters/:facet/options", fc.GetFacetOptions)
	return r
}

func TestGetFacetOptionsUnknownFacet(t *testing.T) {
	catalog := &fakeCatalog{}
	r := newFilterRouter(NewFilterController(catalog, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/filters/price/options", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status: %d", w.Code)
	}
	if catalog.lastFacet != "" {
		t.Fatal("unknown facet must not reach the catalog")
	}
}

func TestGetFacetOptionsNormalizes(t *testing.T) {
	catalog := &fakeCatalog{options: []models.Raw{
		{"_id": "c1", "name": "Suiting"},
		{"_id": "c2", "parent": "Shirting"},
		{"name": ""},
	}}
	r := newFilterRouter(NewFilterController(catalog, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/filters/category/options", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: %d body: %s", w.Code, w.Body.String())
	}
	if catalog.lastFacet != "category" {
		t.Fatalf("facet passed through wrong: %q", catalog.lastFacet)
	}

	var resp struct {
		Facet   string                `json:"facet"`
		Options []models.FilterOption `json:"options"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Facet != "category" || len(resp.Options) != 2 {
		t.Fatalf("response: %s", w.Body.String())
	}
	if resp.Options[0] != (models.FilterOption{Value: "c1", Name: "Suiting"}) {
		t.Fatalf("first option: %+v", resp.Options[0])
	}
	if resp.Options[1] != (models.FilterOption{Value: "c2", Name: "Shirting"}) {
		t.Fatalf("parent fallback lost: %+v", resp.Options[1])
	}
}

func TestGetFacetOptionsUpstreamFailure(t *testing.T) {
	catalog := &fakeCatalog{optionsErr: errors.New("down")}
	r := newFilterRouter(NewFilterController(catalog, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/filters/color/options", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status: %d", w.Code)
	}
}
