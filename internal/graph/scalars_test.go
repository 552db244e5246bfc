package graph

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalMarshalsTwoPlaces(t *testing.T) {
	for in, want := range map[string]string{
		"100.5":  `"100.50"`,
		"200.75": `"200.75"`,
		"7":      `"7.00"`,
		"-0.1":   `"-0.10"`,
	} {
		out, err := json.Marshal(Decimal{Value: decimal.RequireFromString(in)})
		require.NoError(t, err)
		assert.Equal(t, want, string(out), in)
	}
}

func TestDecimalUnmarshalGraphQL(t *testing.T) {
	cases := []struct {
		input interface{}
		want  string
	}{
		{"150.00", "150"},
		{" 12.3 ", "12.3"},
		{int32(5), "5"},
		{float64(2.5), "2.5"},
	}
	for _, tc := range cases {
		var d Decimal
		require.NoError(t, d.UnmarshalGraphQL(tc.input))
		assert.True(t, d.Value.Equal(decimal.RequireFromString(tc.want)), "%v", tc.input)
	}

	var d Decimal
	assert.Error(t, d.UnmarshalGraphQL("ten"))
	assert.Error(t, d.UnmarshalGraphQL(true))
	assert.True(t, d.ImplementsGraphQLType("Decimal"))
	assert.False(t, d.ImplementsGraphQLType("Float"))
}
