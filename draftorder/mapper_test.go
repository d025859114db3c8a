package draftorder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theabdulsaboor/Vercel-Shopify-App/shopify/adminapi/types"
)

func cartItemFromJSON(t *testing.T, body string) CartItem {
	t.Helper()
	var item CartItem
	require.NoError(t, json.Unmarshal([]byte(body), &item))
	return item
}

func TestMapLineItem_VariantWithPriceOverride(t *testing.T) {
	item := cartItemFromJSON(t, `{"isCustom": false, "variantId": "123", "quantity": 2, "price": 15.5}`)

	lineItem := MapLineItem(item, "USD")

	assert.Equal(t, types.LineItem{
		VariantId: "gid://shopify/ProductVariant/123",
		Quantity:  2,
		PriceOverride: &types.Money{
			Amount:       "15.50",
			CurrencyCode: "USD",
		},
	}, lineItem)
}

func TestMapLineItem_NoOverrideWithoutValidPositivePrice(t *testing.T) {
	tests := []struct {
		Title string
		JSON  string
	}{
		{Title: "zero price", JSON: `{"variantId": "123", "quantity": 1, "price": 0}`},
		{Title: "absent price", JSON: `{"variantId": "123", "quantity": 1}`},
		{Title: "null price", JSON: `{"variantId": "123", "quantity": 1, "price": null}`},
		{Title: "negative price", JSON: `{"variantId": "123", "quantity": 1, "price": -5}`},
		{Title: "non-numeric price", JSON: `{"variantId": "123", "quantity": 1, "price": "n/a"}`},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			lineItem := MapLineItem(cartItemFromJSON(t, tt.JSON), "USD")
			assert.Nil(t, lineItem.PriceOverride)

			marshalled, err := json.Marshal(lineItem)
			require.NoError(t, err)
			assert.NotContains(t, string(marshalled), "priceOverride")
		})
	}
}

func TestMapLineItem_QuantityTruncation(t *testing.T) {
	lineItem := MapLineItem(cartItemFromJSON(t, `{"variantId": "9", "quantity": 2.9}`), "USD")
	assert.Equal(t, 2, lineItem.Quantity)

	lineItem = MapLineItem(cartItemFromJSON(t, `{"variantId": "9", "quantity": "3"}`), "USD")
	assert.Equal(t, 3, lineItem.Quantity)
}

func TestMapLineItem_CustomItem(t *testing.T) {
	item := cartItemFromJSON(t, `{"isCustom": true, "displayTitle": "Engraving", "quantity": 1, "price": 4}`)

	lineItem := MapLineItem(item, "EUR")

	assert.Equal(t, types.LineItem{
		Title:    "Engraving",
		Quantity: 1,
		OriginalUnitPriceWithCurrency: &types.Money{
			Amount:       "4.00",
			CurrencyCode: "EUR",
		},
	}, lineItem)
	assert.Empty(t, lineItem.VariantId)
}

func TestMapLineItem_CustomItemDefaults(t *testing.T) {
	item := cartItemFromJSON(t, `{"isCustom": true, "quantity": 1}`)

	lineItem := MapLineItem(item, "USD")

	assert.Equal(t, "Custom item", lineItem.Title)
	require.NotNil(t, lineItem.OriginalUnitPriceWithCurrency)
	assert.Equal(t, "0.00", lineItem.OriginalUnitPriceWithCurrency.Amount)
}

func TestMapLineItem_CustomItemKeepsAttributes(t *testing.T) {
	item := cartItemFromJSON(t, `{"isCustom": true, "quantity": 1, "properties": {"Note": "gift wrap"}}`)

	lineItem := MapLineItem(item, "USD")

	assert.Equal(t, []types.Attribute{{Key: "Note", Value: "gift wrap"}}, lineItem.CustomAttributes)
}

func TestMapLineItem_CurrencyFallback(t *testing.T) {
	item := cartItemFromJSON(t, `{"variantId": "1", "quantity": 1, "price": 2}`)

	lineItem := MapLineItem(item, "")

	require.NotNil(t, lineItem.PriceOverride)
	assert.Equal(t, "USD", lineItem.PriceOverride.CurrencyCode)
}

func TestMapLineItem_GIDPassthrough(t *testing.T) {
	item := cartItemFromJSON(t, `{"variantId": "gid://shopify/ProductVariant/42", "quantity": 1}`)

	lineItem := MapLineItem(item, "USD")

	assert.Equal(t, "gid://shopify/ProductVariant/42", lineItem.VariantId)
}

func TestMapLineItem_Idempotent(t *testing.T) {
	item := cartItemFromJSON(t, `{
		"variantId": "77", "quantity": 3, "price": 9.99,
		"properties": {"b": "2", "a": "1", "empty": "", "gone": null}
	}`)

	first := MapLineItem(item, "USD")
	second := MapLineItem(item, "USD")

	assert.Equal(t, first, second)
}

func TestMapAttributes(t *testing.T) {
	tests := []struct {
		Title      string
		Properties map[string]any
		Expected   []types.Attribute
	}{
		{
			Title:      "nil map",
			Properties: nil,
			Expected:   nil,
		},
		{
			Title:      "drops empty and nil values",
			Properties: map[string]any{"keep": "yes", "empty": "", "null": nil},
			Expected:   []types.Attribute{{Key: "keep", Value: "yes"}},
		},
		{
			Title:      "stringifies values",
			Properties: map[string]any{"width": 2.5, "count": float64(3), "flag": true},
			Expected: []types.Attribute{
				{Key: "count", Value: "3"},
				{Key: "flag", Value: "true"},
				{Key: "width", Value: "2.5"},
			},
		},
		{
			Title:      "json number values",
			Properties: map[string]any{"id": json.Number("11791823890493")},
			Expected:   []types.Attribute{{Key: "id", Value: "11791823890493"}},
		},
		{
			Title:      "only discarded values",
			Properties: map[string]any{"a": "", "b": nil},
			Expected:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Title, func(t *testing.T) {
			assert.Equal(t, tt.Expected, MapAttributes(tt.Properties))
		})
	}
}

func TestBuildDraftOrderInput(t *testing.T) {
	items := []CartItem{
		cartItemFromJSON(t, `{"variantId": "1", "quantity": 1}`),
		cartItemFromJSON(t, `{"isCustom": true, "displayTitle": "Fee", "quantity": 1, "price": 3}`),
	}

	input := BuildDraftOrderInput(items, "USD")

	assert.Equal(t, true, input["acceptAutomaticDiscounts"])
	lineItems, ok := input["lineItems"].([]types.LineItem)
	require.True(t, ok)
	require.Len(t, lineItems, 2)
	assert.Equal(t, "gid://shopify/ProductVariant/1", lineItems[0].VariantId)
	assert.Equal(t, "Fee", lineItems[1].Title)
}
