package normalize

import (
	"github.com/madhupandey29/shofy-storefront/models"
)

// MergeRelation flattens a groupcode relation record into product shape.
//   - When rel.product is a populated object, product-level fields win on
//     collision, identity and slug prefer the nested product, category is
//     coerced to object shape, and relation-level price/salesPrice fill in
//     only when the product-level value is absent.
//   - When rel.product is a bare id (or missing), the record passes through
//     with the id fallback and a safe category shape.
//
// The input is never mutated.
func MergeRelation(rel Raw) Raw {
	if rel == nil {
		return nil
	}

	if prod, ok := rel["product"].(map[string]interface{}); ok {
		merged := make(Raw, len(rel)+len(prod))
		for k, v := range rel {
			merged[k] = v
		}
		for k, v := range prod {
			merged[k] = v
		}

		if id := Pick(prod["_id"], rel["_id"]); id != nil {
			merged["_id"] = id
		}
		if slug := Pick(prod["slug"], rel["slug"]); slug != nil {
			merged["slug"] = slug
		}

		switch cat := prod["category"].(type) {
		case map[string]interface{}:
			merged["category"] = cat
		case string:
			merged["category"] = map[string]interface{}{"_id": cat, "name": ""}
		}

		// Relation prices are fallbacks only; a present product-level value
		// is never overwritten.
		if rel["salesPrice"] != nil && prod["salesPrice"] == nil {
			merged["salesPrice"] = rel["salesPrice"]
		}
		if rel["price"] != nil && prod["price"] == nil {
			merged["price"] = rel["price"]
		}

		return merged
	}

	merged := make(Raw, len(rel)+2)
	for k, v := range rel {
		merged[k] = v
	}
	// Upstream contract quirk: when `product` is a bare id it becomes the
	// identity, and when it is absent the relation's own _id is used even
	// though that id names the relation, not a product.
	if id, ok := rel["product"].(string); ok && id != "" {
		merged["_id"] = id
	}
	if cat, ok := rel["category"].(string); ok && cat != "" {
		merged["category"] = map[string]interface{}{"_id": cat, "name": ""}
	}
	return merged
}

// Normalize resolves a raw product or relation record into the canonical
// display model. A nil input yields nil; any other input yields a model,
// however malformed the record.
func Normalize(raw Raw) *models.Product {
	if raw == nil {
		return nil
	}
	r := MergeRelation(raw)

	p := &models.Product{
		ID:          IDOf(r["_id"]),
		Title:       ToText(Pick(r["title"], r["name"], r["productname"], r["productTitle"])),
		StructureID: ToText(Pick(r["structureId"], IDOf(r["substructure"]), IDOf(r["structure"]))),
		ContentID:   ToText(Pick(r["contentId"], IDOf(r["content"]))),
		FinishID:    ToText(Pick(r["finishId"], IDOf(r["subfinish"]), IDOf(r["finish"]))),
		GSM:         NumOf(r["gsm"], r["GSM"]),
		WidthCm:     NumOf(r["width"], r["widthCm"], r["width_cm"], r["Width"]),
		Price:       NumOf(r["price"]),
		SalesPrice:  NumOf(r["salesPrice"]),
		GroupcodeID: IDOf(r["groupcode"]),
	}

	switch cat := Pick(r["category"], r["newCategoryId"]).(type) {
	case map[string]interface{}:
		p.Category = &models.Category{ID: IDOf(cat["_id"]), Name: ToText(cat["name"])}
	case string:
		p.Category = &models.Category{ID: cat}
	}

	p.Slug = ToText(r["slug"])
	if p.Slug == "" {
		p.Slug = p.ID
	}

	for _, key := range []string{"img", "image", "image1", "image2"} {
		if u := FirstURL(r[key]); u != "" {
			p.Images = append(p.Images, u)
		}
	}

	return p
}

// SearchResult projects a raw search hit onto the overlay's result shape.
func SearchResult(raw Raw) models.SearchResultItem {
	item := models.SearchResultItem{
		ID:    IDOf(raw["_id"]),
		Name:  ToText(Pick(raw["name"], raw["title"])),
		Image: ToText(Pick(FirstURL(raw["image1"]), FirstURL(raw["img"]))),
		Slug:  ToText(raw["slug"]),
	}
	if cat, ok := Pick(raw["newCategoryId"], raw["category"]).(map[string]interface{}); ok {
		item.CategoryName = ToText(cat["name"])
	}
	if n := NumOf(raw["gsm"]); n != nil {
		item.GSM = *n
	}
	if n := NumOf(raw["oz"]); n != nil {
		item.Oz = *n
	}
	if n := NumOf(raw["cm"]); n != nil {
		item.Cm = *n
	}
	if n := NumOf(raw["inch"]); n != nil {
		item.Inch = *n
	}
	return item
}

// Option normalizes one filter-options record into a value/name pair.
func Option(raw Raw) models.FilterOption {
	value := ToText(Pick(raw["_id"], raw["id"], raw["value"], raw["slug"], raw["name"]))
	name := ToText(Pick(raw["name"], raw["parent"], raw["title"]))
	if name == "" {
		name = value
	}
	return models.FilterOption{Value: value, Name: name}
}
