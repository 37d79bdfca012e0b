package aggregation

import (
	"github.com/shopspring/decimal"
)

// Supported measure operators.
const (
	OpCount = "count"
	OpSum   = "sum"
	OpMin   = "min"
	OpMax   = "max"
)

// Aggregator defines how one measure folds the records of a bucket.
// To add an operator: implement this interface and register it in Operators.
type Aggregator interface {
	// Initial returns the accumulator after the first record of a bucket.
	// count → 1; sum/min/max → the record's value.
	Initial(incoming decimal.Decimal) decimal.Decimal

	// Apply folds a further record into the accumulator.
	Apply(current, incoming decimal.Decimal) decimal.Decimal

	// NeedsField reports whether the operator reads a numeric field from the record.
	NeedsField() bool
}

// Operators is the registry of all supported measure operators.
var Operators = map[string]Aggregator{
	OpCount: countAgg{},
	OpSum:   sumAgg{},
	OpMin:   minAgg{},
	OpMax:   maxAgg{},
}

// ValidOperator reports whether op is a registered operator.
func ValidOperator(op string) bool {
	_, ok := Operators[op]
	return ok
}

type countAgg struct{}

func (countAgg) Initial(_ decimal.Decimal) decimal.Decimal    { return decimal.NewFromInt(1) }
func (countAgg) Apply(cur, _ decimal.Decimal) decimal.Decimal { return cur.Add(decimal.NewFromInt(1)) }
func (countAgg) NeedsField() bool                             { return false }

type sumAgg struct{}

func (sumAgg) Initial(v decimal.Decimal) decimal.Decimal      { return v }
func (sumAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal { return cur.Add(inc) }
func (sumAgg) NeedsField() bool                               { return true }

type minAgg struct{}

func (minAgg) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (minAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal {
	if inc.LessThan(cur) {
		return inc
	}
	return cur
}
func (minAgg) NeedsField() bool { return true }

type maxAgg struct{}

func (maxAgg) Initial(v decimal.Decimal) decimal.Decimal { return v }
func (maxAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal {
	if inc.GreaterThan(cur) {
		return inc
	}
	return cur
}
func (maxAgg) NeedsField() bool { return true }

// Derived operators combine two accumulated measures of the same bucket.
const (
	DerivedAdd      = "add"
	DerivedSubtract = "subtract"
)

var derivedOperators = map[string]func(left, right decimal.Decimal) decimal.Decimal{
	DerivedAdd:      func(l, r decimal.Decimal) decimal.Decimal { return l.Add(r) },
	DerivedSubtract: func(l, r decimal.Decimal) decimal.Decimal { return l.Sub(r) },
}

// ValidDerivedOperator reports whether op can be used in a derived measure.
func ValidDerivedOperator(op string) bool {
	_, ok := derivedOperators[op]
	return ok
}
