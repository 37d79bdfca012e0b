package aggregation

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// LookupDecimal pulls a numeric value out of a record's data by field name.
// ok is false when the field is absent, null, or not a recognised numeric type,
// which the aggregator treats as a malformed record.
//
// Documents decoded from JSON carry float64 or, for decimal-encoded amounts,
// numeric strings; both are accepted.
func LookupDecimal(data map[string]interface{}, field string) (decimal.Decimal, bool) {
	if field == "" {
		return decimal.Zero, false
	}
	v, ok := data[field]
	if !ok || v == nil {
		return decimal.Zero, false
	}
	switch val := v.(type) {
	case decimal.Decimal:
		return val, true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(val), true
	case float32:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(val), true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case int32:
		return decimal.NewFromInt(int64(val)), true
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err == nil {
			return d, true
		}
	case string:
		d, err := decimal.NewFromString(val)
		if err == nil {
			return d, true
		}
	}
	return decimal.Zero, false
}
