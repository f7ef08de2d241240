package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/madhupandey29/shofy-storefront/models"
)

// CatalogClient talks to the remote catalog API. All list-shaped responses
// arrive in a `{status, data}` envelope; decoding is tolerant, a malformed
// envelope degrades to an empty list rather than an error so one bad payload
// never aborts an aggregation.
type CatalogClient struct {
	baseURL string
	client  *http.Client
}

// facetPaths maps facet keys to their filter-options endpoints.
var facetPaths = map[string]string{
	"category":     "category/",
	"color":        "color/",
	"content":      "content/",
	"design":       "design/",
	"structure":    "structure/",
	"substructure": "substructure/",
	"finish":       "finish/",
	"subfinish":    "subfinish/",
	"suitablefor":  "suitablefor/",
	"subsuitable":  "subsuitable/",
	"motifsize":    "motif/",
}

// KnownFacet reports whether key has a filter-options endpoint.
func KnownFacet(key string) bool {
	_, ok := facetPaths[key]
	return ok
}

func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// SearchProducts queries the free-text search endpoint.
func (c *CatalogClient) SearchProducts(ctx context.Context, q string) ([]models.Raw, error) {
	query := url.Values{}
	query.Set("q", q)
	return c.getList(ctx, "/products/search", query)
}

// The seven measurement-range endpoints. Each returns products whose
// measurement is at or below the numeric threshold.

func (c *CatalogClient) GsmUpto(ctx context.Context, v string) ([]models.Raw, error) {
	return c.getList(ctx, "/products/gsm-upto/"+url.PathEscape(v), nil)
}

func (c *CatalogClient) OzUpto(ctx context.Context, v string) ([]models.Raw, error) {
	return c.getList(ctx, "/products/oz-upto/"+url.PathEscape(v), nil)
}

func (c *CatalogClient) InchUpto(ctx context.Context, v string) ([]models.Raw, error) {
	return c.getList(ctx, "/products/inch-upto/"+url.PathEscape(v), nil)
}

func (c *CatalogClient) CmUpto(ctx context.Context, v string) ([]models.Raw, error) {
	return c.getList(ctx, "/products/cm-upto/"+url.PathEscape(v), nil)
}

func (c *CatalogClient) QuantityUpto(ctx context.Context, v string) ([]models.Raw, error) {
	return c.getList(ctx, "/products/quantity-upto/"+url.PathEscape(v), nil)
}

func (c *CatalogClient) PriceUpto(ctx context.Context, v string) ([]models.Raw, error) {
	return c.getList(ctx, "/products/price-upto/"+url.PathEscape(v), nil)
}

func (c *CatalogClient) PurchasePriceUpto(ctx context.Context, v string) ([]models.Raw, error) {
	return c.getList(ctx, "/products/purchase-price-upto/"+url.PathEscape(v), nil)
}

// ListProducts pages through the catalog's product list.
func (c *CatalogClient) ListProducts(ctx context.Context, page, perPage int) ([]models.Raw, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))
	return c.getList(ctx, "/products", query)
}

// GetProduct fetches one product record by id.
func (c *CatalogClient) GetProduct(ctx context.Context, id string) (models.Raw, error) {
	body, err := c.get(ctx, "/products/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return objectFrom(body), nil
}

// GroupcodeProducts fetches the sibling variants of a group code. Records
// come back as relation records and need MergeRelation before display.
func (c *CatalogClient) GroupcodeProducts(ctx context.Context, groupcodeID string) ([]models.Raw, error) {
	return c.getList(ctx, "/groupcode/"+url.PathEscape(groupcodeID)+"/products", nil)
}

// SeoByProduct fetches the optional SEO override record for a product. The
// endpoint sometimes returns the record wrapped in a one-element array.
func (c *CatalogClient) SeoByProduct(ctx context.Context, productID string) (models.Raw, error) {
	body, err := c.get(ctx, "/seo/product/"+url.PathEscape(productID), nil)
	if err != nil {
		return nil, err
	}
	if list := listFrom(body); len(list) > 0 {
		return list[0], nil
	}
	return objectFrom(body), nil
}

// FilterOptions fetches the option records of one facet.
func (c *CatalogClient) FilterOptions(ctx context.Context, facet string) ([]models.Raw, error) {
	path, ok := facetPaths[facet]
	if !ok {
		return nil, fmt.Errorf("unknown facet %q", facet)
	}
	return c.getList(ctx, "/filters/"+path, nil)
}

func (c *CatalogClient) getList(ctx context.Context, path string, query url.Values) ([]models.Raw, error) {
	body, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	list := listFrom(body)
	if list == nil {
		list = []models.Raw{}
	}
	return list, nil
}

func (c *CatalogClient) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("catalog error: status=%d path=%s", resp.StatusCode, path)
	}
	return body, nil
}

// listFrom extracts a record list from an envelope. Accepts a bare array,
// or an object carrying the list under data, results, items or docs.
func listFrom(body []byte) []models.Raw {
	var direct []models.Raw
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	for _, key := range []string{"data", "results", "items", "docs"} {
		raw, ok := env[key]
		if !ok {
			continue
		}
		var list []models.Raw
		if err := json.Unmarshal(raw, &list); err == nil {
			return list
		}
	}
	return nil
}

// objectFrom extracts a single record, unwrapping a data envelope if there
// is one. Malformed payloads yield nil.
func objectFrom(body []byte) models.Raw {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	if raw, ok := env["data"]; ok {
		var obj models.Raw
		if err := json.Unmarshal(raw, &obj); err == nil {
			return obj
		}
		return nil
	}
	var obj models.Raw
	if err := json.Unmarshal(body, &obj); err == nil {
		return obj
	}
	return nil
}
