package controllers

import (
	"context"
	"time"

	"github.com/madhupandey29/shofy-storefront/models"
	"github.com/madhupandey29/shofy-storefront/search"
)

// Default configuration values
const (
	DefaultCacheTTL       = 10 * time.Minute
	DefaultContextTimeout = 30 * time.Second

	// DefaultSessionIdleTTL evicts sessions nothing has touched for this
	// long; only an explicit delete frees one sooner.
	DefaultSessionIdleTTL = 30 * time.Minute

	// RelatedLimit caps the related-products rail.
	RelatedLimit = 6
)

// SearchAPI defines the aggregated search operation the search controller
// depends on.
type SearchAPI interface {
	Search(ctx context.Context, query string) search.Outcome
}

// CatalogAPI defines the catalog operations the product and filter
// controllers depend on.
type CatalogAPI interface {
	ListProducts(ctx context.Context, page, perPage int) ([]models.Raw, error)
	GetProduct(ctx context.Context, id string) (models.Raw, error)
	GroupcodeProducts(ctx context.Context, groupcodeID string) ([]models.Raw, error)
	SeoByProduct(ctx context.Context, productID string) (models.Raw, error)
	FilterOptions(ctx context.Context, facet string) ([]models.Raw, error)
}
