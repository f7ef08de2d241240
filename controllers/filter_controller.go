package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/madhupandey29/shofy-storefront/clients"
	"github.com/madhupandey29/shofy-storefront/models"
	"github.com/madhupandey29/shofy-storefront/normalize"
)

// FilterController serves the facet option lists the filter sidebar renders.
type FilterController struct {
	catalog CatalogAPI
	cache   *CacheManager
}

func NewFilterController(catalog CatalogAPI, cache *CacheManager) *FilterController {
	return &FilterController{catalog: catalog, cache: cache}
}

// GetFacetOptions returns the normalized option list of one facet,
// redis-cached. Taxonomies change rarely, so the cache carries most traffic.
func (fc *FilterController) GetFacetOptions(c *gin.Context) {
	facet := c.Param("facet")
	if !clients.KnownFacet(facet) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown facet"})
		return
	}

	if opts, ok := fc.cache.GetFilterOptions(c.Request.Context(), facet); ok {
		c.JSON(http.StatusOK, gin.H{"facet": facet, "options": opts})
		return
	}

	raws, err := fc.catalog.FilterOptions(c.Request.Context(), facet)
	if err != nil {
		zap.L().Error("Error fetching filter options", zap.String("facet", facet), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch filter options"})
		return
	}

	opts := make([]models.FilterOption, 0, len(raws))
	for _, raw := range raws {
		opt := normalize.Option(raw)
		if opt.Value == "" {
			continue
		}
		opts = append(opts, opt)
	}

	fc.cache.SetFilterOptionsAsync(facet, opts)
	c.JSON(http.StatusOK, gin.H{"facet": facet, "options": opts})
}
