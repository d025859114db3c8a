package draftorder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityCoercion(t *testing.T) {
	tests := []struct {
		Title    string
		JSON     string
		Value    int
		Positive bool
	}{
		{Title: "integer", JSON: `{"quantity": 3}`, Value: 3, Positive: true},
		{Title: "numeric string", JSON: `{"quantity": "3"}`, Value: 3, Positive: true},
		{Title: "decimal truncates toward zero", JSON: `{"quantity": 2.9}`, Value: 2, Positive: true},
		{Title: "decimal string truncates", JSON: `{"quantity": "2.9"}`, Value: 2, Positive: true},
		{Title: "zero", JSON: `{"quantity": 0}`, Value: 0, Positive: false},
		{Title: "negative truncates toward zero", JSON: `{"quantity": -2.9}`, Value: -2, Positive: false},
		{Title: "null", JSON: `{"quantity": null}`, Value: 0, Positive: false},
		{Title: "missing", JSON: `{}`, Value: 0, Positive: false},
		{Title: "garbage string", JSON: `{"quantity": "abc"}`, Value: 0, Positive: false},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			var item CartItem
			require.NoError(t, json.Unmarshal([]byte(tt.JSON), &item))
			assert.Equal(t, tt.Value, item.Quantity.Int())
			assert.Equal(t, tt.Positive, item.Quantity.Positive())
		})
	}
}

func TestPriceCoercion(t *testing.T) {
	tests := []struct {
		Title       string
		JSON        string
		Valid       bool
		Overridable bool
		Amount      string
	}{
		{Title: "positive number", JSON: `{"price": 15.5}`, Valid: true, Overridable: true, Amount: "15.50"},
		{Title: "positive numeric string", JSON: `{"price": "15.5"}`, Valid: true, Overridable: true, Amount: "15.50"},
		{Title: "integer renders two digits", JSON: `{"price": 7}`, Valid: true, Overridable: true, Amount: "7.00"},
		{Title: "zero is not an override", JSON: `{"price": 0}`, Valid: true, Overridable: false, Amount: "0.00"},
		{Title: "negative is not an override", JSON: `{"price": -3}`, Valid: true, Overridable: false, Amount: "-3.00"},
		{Title: "null", JSON: `{"price": null}`, Valid: false, Overridable: false, Amount: "0.00"},
		{Title: "missing", JSON: `{}`, Valid: false, Overridable: false, Amount: "0.00"},
		{Title: "non-numeric string", JSON: `{"price": "abc"}`, Valid: false, Overridable: false, Amount: "0.00"},
		{Title: "empty string", JSON: `{"price": ""}`, Valid: false, Overridable: false, Amount: "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			var item CartItem
			require.NoError(t, json.Unmarshal([]byte(tt.JSON), &item))
			assert.Equal(t, tt.Valid, item.Price.Valid())
			assert.Equal(t, tt.Overridable, item.Price.Overridable())
			assert.Equal(t, tt.Amount, item.Price.Amount())
		})
	}
}
