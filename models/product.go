package models

// Raw is a catalog record exactly as it arrives off the wire. The catalog
// API is inconsistent about shapes (populated objects vs bare id strings vs
// relation wrappers), so records stay untyped until the normalize package
// resolves them.
type Raw = map[string]interface{}

// Category in its canonical object shape. Records that carry only a bare id
// string are wrapped into this shape with an empty name.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Product is the canonical display model. Every field is resolved through a
// deterministic priority order over the raw record's alias set; absent data
// is a zero value, never an error.
type Product struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Category    *Category `json:"category,omitempty"`
	StructureID string    `json:"structureId,omitempty"`
	ContentID   string    `json:"contentId,omitempty"`
	FinishID    string    `json:"finishId,omitempty"`
	GSM         *float64  `json:"gsm,omitempty"`
	WidthCm     *float64  `json:"width,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	SalesPrice  *float64  `json:"salesPrice,omitempty"`
	GroupcodeID string    `json:"groupcode,omitempty"`
	Images      []string  `json:"images,omitempty"`
}

// SearchResultItem is the subset of the canonical model the search overlay
// renders. Identity key for deduplication is ID.
type SearchResultItem struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Image        string  `json:"image,omitempty"`
	Slug         string  `json:"slug,omitempty"`
	CategoryName string  `json:"categoryName,omitempty"`
	GSM          float64 `json:"gsm,omitempty"`
	Oz           float64 `json:"oz,omitempty"`
	Cm           float64 `json:"cm,omitempty"`
	Inch         float64 `json:"inch,omitempty"`
}
