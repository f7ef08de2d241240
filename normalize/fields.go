package normalize

import (
	"strconv"
	"strings"

	"github.com/madhupandey29/shofy-storefront/models"
)

// Raw mirrors models.Raw for callers that only import normalize.
type Raw = models.Raw

// NonEmpty reports whether a raw value counts as present: a non-empty slice,
// or any non-nil value whose trimmed string form is non-empty. Objects and
// numbers (including 0) are always present.
func NonEmpty(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case []interface{}:
		return len(t) > 0
	case []string:
		return len(t) > 0
	default:
		return true
	}
}

// Pick returns the first present value, or nil when none qualify.
func Pick(vals ...interface{}) interface{} {
	for _, v := range vals {
		if NonEmpty(v) {
			return v
		}
	}
	return nil
}

// ToText flattens a raw value to a display string. Slices become a
// comma-joined list of their flattened elements; objects resolve through
// name, value, title, label in that order.
func ToText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s := ToText(e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]interface{}:
		return ToText(Pick(t["name"], t["value"], t["title"], t["label"]))
	default:
		return ""
	}
}

// IsNoneish reports whether a resolved display string is a meaningless
// placeholder and should be dropped from spec lists.
func IsNoneish(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.Join(strings.Fields(t), " ")
	switch t {
	case "", "none", "na", "n/a", "-", "none/ na", "none / na", "none/na":
		return true
	}
	return false
}

// IDOf extracts an identity from a value that may be a populated object or a
// bare id string.
func IDOf(v interface{}) string {
	if m, ok := v.(map[string]interface{}); ok {
		return ToText(m["_id"])
	}
	return ToText(v)
}

// NumOf resolves the first non-nil alias to a number. Nullish semantics:
// an explicit 0 is a valid value and stops the scan; a value that is present
// but not parseable yields nil.
func NumOf(vals ...interface{}) *float64 {
	for _, v := range vals {
		if v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			n := t
			return &n
		case int:
			n := float64(t)
			return &n
		case int64:
			n := float64(t)
			return &n
		case string:
			if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				return &n
			}
			return nil
		default:
			return nil
		}
	}
	return nil
}

// FirstURL extracts a usable URL from an image field that may be a string, a
// nested upload object (secure_url, url, path, key), or an array thereof.
func FirstURL(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []interface{}:
		if len(t) == 0 {
			return ""
		}
		return FirstURL(t[0])
	case map[string]interface{}:
		return FirstURL(Pick(t["secure_url"], t["url"], t["path"], t["key"]))
	default:
		return ""
	}
}
