package models

// FilterOption is one selectable value of a facet, normalized from the
// filter-options endpoints' `{_id|id|value|slug, name|parent|title}` records.
type FilterOption struct {
	Value string `json:"value"`
	Name  string `json:"name"`
}

// FacetSelection maps a facet key to its selected values. A missing key means
// "no constraint"; clearing a facet removes the key entirely rather than
// leaving an empty slice, so consumers can tell "never touched" from
// "explicitly cleared" by key presence. Filtering logic must treat both as
// equivalent to an empty set.
type FacetSelection map[string][]string
