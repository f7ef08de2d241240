package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*CatalogClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewCatalogClient(srv.URL, 2*time.Second), srv
}

func TestSearchProductsDecodesEnvelope(t *testing.T) {
	var gotPath, gotQuery string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"status":"success","data":[{"_id":"a","name":"Linen"},{"_id":"b"}]}`))
	})
	defer srv.Close()

	list, err := c.SearchProducts(context.Background(), "linen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/products/search" || gotQuery != "linen" {
		t.Fatalf("request: path=%q q=%q", gotPath, gotQuery)
	}
	if len(list) != 2 || list[0]["_id"] != "a" {
		t.Fatalf("decoded list: %v", list)
	}
}

func TestGetListAcceptsBareArray(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"a"}]`))
	})
	defer srv.Close()

	list, err := c.ListProducts(context.Background(), 1, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0]["_id"] != "a" {
		t.Fatalf("decoded list: %v", list)
	}
}

func TestGetListEnvelopeKeyFallbacks(t *testing.T) {
	for _, body := range []string{
		`{"results":[{"_id":"a"}]}`,
		`{"items":[{"_id":"a"}]}`,
		`{"docs":[{"_id":"a"}]}`,
	} {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
		list, err := c.ListProducts(context.Background(), 1, 12)
		srv.Close()
		if err != nil {
			t.Fatalf("body %s: unexpected error: %v", body, err)
		}
		if len(list) != 1 || list[0]["_id"] != "a" {
			t.Fatalf("body %s: decoded %v", body, list)
		}
	}
}

func TestGetListMalformedEnvelopeDegradesToEmpty(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":"oops"}`))
	})
	defer srv.Close()

	list, err := c.SearchProducts(context.Background(), "x")
	if err != nil {
		t.Fatalf("malformed envelope must not error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
}

func TestErrorStatusReturnsError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	defer srv.Close()

	if _, err := c.SearchProducts(context.Background(), "x"); err == nil {
		t.Fatal("expected an error for a 502 response")
	}
}

func TestMeasurementEndpointPaths(t *testing.T) {
	var paths []string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"data":[]}`))
	})
	defer srv.Close()

	ctx := context.Background()
	c.GsmUpto(ctx, "150")
	c.OzUpto(ctx, "4.5")
	c.InchUpto(ctx, "60")
	c.CmUpto(ctx, "150")
	c.QuantityUpto(ctx, "100")
	c.PriceUpto(ctx, "9.99")
	c.PurchasePriceUpto(ctx, "5")

	want := []string{
		"/products/gsm-upto/150",
		"/products/oz-upto/4.5",
		"/products/inch-upto/60",
		"/products/cm-upto/150",
		"/products/quantity-upto/100",
		"/products/price-upto/9.99",
		"/products/purchase-price-upto/5",
	}
	if len(paths) != len(want) {
		t.Fatalf("paths: %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("endpoint %d: got %q want %q", i, paths[i], want[i])
		}
	}
}

func TestGetProductUnwrapsDataEnvelope(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","data":{"_id":"p1","name":"Linen"}}`))
	})
	defer srv.Close()

	raw, err := c.GetProduct(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["_id"] != "p1" || raw["name"] != "Linen" {
		t.Fatalf("decoded record: %v", raw)
	}
}

func TestSeoByProductUnwrapsOneElementArray(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"productIdentifier":"LN-01"}]`))
	})
	defer srv.Close()

	raw, err := c.SeoByProduct(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["productIdentifier"] != "LN-01" {
		t.Fatalf("decoded record: %v", raw)
	}
}

func TestSeoByProductBareObject(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"productIdentifier":"LN-01"}`))
	})
	defer srv.Close()

	raw, err := c.SeoByProduct(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw["productIdentifier"] != "LN-01" {
		t.Fatalf("decoded record: %v", raw)
	}
}

func TestFilterOptionsPathMapping(t *testing.T) {
	var gotPath string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data":[{"_id":"m1","name":"Paisley"}]}`))
	})
	defer srv.Close()

	list, err := c.FilterOptions(context.Background(), "motifsize")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/filters/motif/" {
		t.Fatalf("motifsize must hit the motif endpoint, got %q", gotPath)
	}
	if len(list) != 1 || list[0]["name"] != "Paisley" {
		t.Fatalf("decoded list: %v", list)
	}
}

func TestFilterOptionsUnknownFacet(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unknown facet must not reach the network")
	})
	defer srv.Close()

	if _, err := c.FilterOptions(context.Background(), "price"); err == nil {
		t.Fatal("expected an error for an unknown facet")
	}
	if !KnownFacet("substructure") || KnownFacet("price") {
		t.Fatal("KnownFacet disagrees with the endpoint table")
	}
}
