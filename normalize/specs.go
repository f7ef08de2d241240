package normalize

import (
	"math"
	"strconv"
	"strings"
)

const (
	gsmPerOz   = 0.0294935
	cmPerInch  = 2.54
	defaultFab = "Woven Fabrics"
)

// GsmToOz converts grams-per-square-metre to ounces-per-square-yard.
func GsmToOz(gsm float64) float64 { return gsm * gsmPerOz }

// CmToInch converts centimetres to inches.
func CmToInch(cm float64) float64 { return cm / cmPerInch }

// Round formats n with at most d decimals, trimming a trailing all-zero
// fraction ("150.0" -> "150"). Non-finite input yields the empty string.
func Round(n float64, d int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return ""
	}
	s := strconv.FormatFloat(n, 'f', d, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if strings.Trim(s[i+1:], "0") == "" {
			s = s[:i]
		}
	}
	return s
}

// SpecList builds the product card's specification lines from a raw record
// and an optional SEO override record. Lines resolve through the record's
// alias sets, weight and width carry dual units, placeholders are dropped
// and near-duplicates collapse case-insensitively. Order is fixed.
func SpecList(raw, seo Raw) []string {
	if raw == nil {
		raw = Raw{}
	}
	if seo == nil {
		seo = Raw{}
	}

	fabricType := ToText(Pick(raw["fabricType"], raw["fabric_type"], seo["fabricType"]))
	if fabricType == "" {
		fabricType = defaultFab
	}

	var weight string
	if gsm := NumOf(raw["gsm"], raw["weightGsm"], raw["weight_gsm"]); gsm != nil && *gsm > 0 {
		weight = Round(*gsm, 1) + " gsm / " + Round(GsmToOz(*gsm), 1) + " oz"
	} else {
		weight = ToText(raw["weight"])
	}

	var width string
	if cm := NumOf(raw["widthCm"], raw["width_cm"], raw["width"]); cm != nil && *cm > 0 {
		width = Round(*cm, 0) + " cm / " + Round(CmToInch(*cm), 0) + " inch"
	} else {
		width = ToText(raw["widthLabel"])
	}

	sub := func(key string) interface{} {
		if m, ok := raw[key].(map[string]interface{}); ok {
			return m["name"]
		}
		return nil
	}

	lines := []string{
		fabricType,
		ToText(Pick(raw["content"], raw["contentName"], raw["content_label"], seo["content"])),
		weight,
		ToText(Pick(raw["design"], raw["designName"], seo["design"])),
		ToText(Pick(raw["colors"], raw["color"], raw["colorName"], seo["colors"])),
		width,
		ToText(Pick(raw["finish"], sub("subfinish"), raw["finishName"], seo["finish"])),
		ToText(Pick(raw["structure"], sub("substructure"), raw["structureName"], seo["structure"])),
		ToText(Pick(raw["motif"], raw["motifName"], seo["motif"])),
		ToText(Pick(raw["leadTime"], raw["lead_time"], seo["leadTime"])),
	}

	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if IsNoneish(l) {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(l))
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, l)
	}
	return out
}
