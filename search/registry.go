package search

import (
	"context"

	"github.com/madhupandey29/shofy-storefront/models"
	"github.com/madhupandey29/shofy-storefront/normalize"
)

// CatalogSearcher is the slice of the catalog client the registry needs.
type CatalogSearcher interface {
	SearchProducts(ctx context.Context, q string) ([]models.Raw, error)
	GsmUpto(ctx context.Context, v string) ([]models.Raw, error)
	OzUpto(ctx context.Context, v string) ([]models.Raw, error)
	InchUpto(ctx context.Context, v string) ([]models.Raw, error)
	CmUpto(ctx context.Context, v string) ([]models.Raw, error)
	QuantityUpto(ctx context.Context, v string) ([]models.Raw, error)
	PriceUpto(ctx context.Context, v string) ([]models.Raw, error)
	PurchasePriceUpto(ctx context.Context, v string) ([]models.Raw, error)
}

// Registry builds the endpoint set in its fixed merge order: text first,
// then gsm, oz, inch, cm, quantity, price, purchase-price. The order is part
// of the dedupe contract (first occurrence wins), so it must not be
// rearranged.
func Registry(c CatalogSearcher) []Endpoint {
	wrap := func(fetch func(ctx context.Context, v string) ([]models.Raw, error)) FetchFunc {
		return func(ctx context.Context, q string) ([]models.SearchResultItem, error) {
			raws, err := fetch(ctx, q)
			if err != nil {
				return nil, err
			}
			items := make([]models.SearchResultItem, 0, len(raws))
			for _, r := range raws {
				items = append(items, normalize.SearchResult(r))
			}
			return items, nil
		}
	}

	return []Endpoint{
		{Name: "text", Fetch: wrap(c.SearchProducts)},
		{Name: "gsm", Numeric: true, Fetch: wrap(c.GsmUpto)},
		{Name: "oz", Numeric: true, Fetch: wrap(c.OzUpto)},
		{Name: "inch", Numeric: true, Fetch: wrap(c.InchUpto)},
		{Name: "cm", Numeric: true, Fetch: wrap(c.CmUpto)},
		{Name: "quantity", Numeric: true, Fetch: wrap(c.QuantityUpto)},
		{Name: "price", Numeric: true, Fetch: wrap(c.PriceUpto)},
		{Name: "purchase-price", Numeric: true, Fetch: wrap(c.PurchasePriceUpto)},
	}
}
