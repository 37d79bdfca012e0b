package aggregation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLookupDecimal(t *testing.T) {
	tests := []struct {
		name   string
		data   map[string]interface{}
		field  string
		want   decimal.Decimal
		wantOK bool
	}{
		{name: "empty field name", data: map[string]interface{}{"value": 1}, field: ""},
		{name: "missing field", data: map[string]interface{}{"value": 1}, field: "missing"},
		{name: "nil data", data: nil, field: "value"},
		{name: "null value", data: map[string]interface{}{"value": nil}, field: "value"},
		{name: "float64", data: map[string]interface{}{"value": 12.5}, field: "value", want: decimal.RequireFromString("12.5"), wantOK: true},
		{name: "float32", data: map[string]interface{}{"value": float32(7.25)}, field: "value", want: decimal.RequireFromString("7.25"), wantOK: true},
		{name: "int", data: map[string]interface{}{"value": 7}, field: "value", want: decimal.NewFromInt(7), wantOK: true},
		{name: "int32", data: map[string]interface{}{"value": int32(8)}, field: "value", want: decimal.NewFromInt(8), wantOK: true},
		{name: "int64", data: map[string]interface{}{"value": int64(9)}, field: "value", want: decimal.NewFromInt(9), wantOK: true},
		{name: "decimal", data: map[string]interface{}{"value": decimal.RequireFromString("19.99")}, field: "value", want: decimal.RequireFromString("19.99"), wantOK: true},
		{name: "json number", data: map[string]interface{}{"value": json.Number("3.5")}, field: "value", want: decimal.RequireFromString("3.5"), wantOK: true},
		{name: "decimal string", data: map[string]interface{}{"value": "42.125"}, field: "value", want: decimal.RequireFromString("42.125"), wantOK: true},
		{name: "invalid string", data: map[string]interface{}{"value": "not-a-number"}, field: "value"},
		{name: "NaN", data: map[string]interface{}{"value": math.NaN()}, field: "value"},
		{name: "unsupported type", data: map[string]interface{}{"value": true}, field: "value"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := LookupDecimal(tc.data, tc.field)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.True(t, tc.want.Equal(got), "want=%s got=%s", tc.want.String(), got.String())
			}
		})
	}
}
