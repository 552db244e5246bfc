package graph

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const decimalPlaces = 2

// Decimal is the GraphQL Decimal scalar. It is always written as a string with
// exactly two fractional digits so "100.50" never degrades to 100.5.
type Decimal struct {
	Value decimal.Decimal
}

func (Decimal) ImplementsGraphQLType(name string) bool {
	return name == "Decimal"
}

func (d *Decimal) UnmarshalGraphQL(input interface{}) error {
	var err error
	switch v := input.(type) {
	case string:
		d.Value, err = decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid Decimal %q", v)
		}
	case int32:
		d.Value = decimal.NewFromInt32(v)
	case int:
		d.Value = decimal.NewFromInt(int64(v))
	case int64:
		d.Value = decimal.NewFromInt(v)
	case float64:
		d.Value = decimal.NewFromFloat(v)
	default:
		return fmt.Errorf("wrong type for Decimal: %T", input)
	}
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value.StringFixed(decimalPlaces))
}
