package draftorder

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/theabdulsaboor/Vercel-Shopify-App/config"
	"github.com/theabdulsaboor/Vercel-Shopify-App/shopify"
	"github.com/theabdulsaboor/Vercel-Shopify-App/shopify/adminapi/types"
)

const customItemTitle = "Custom item"

// MapLineItem deterministically translates one cart item into the
// platform's line-item shape.
//
// Variant lines carry a price override only when the client supplied a
// price that is numeric and strictly positive; otherwise the variant's
// catalog price applies and no override is emitted. Custom lines have no
// catalog price to fall back to, so they always carry an explicit unit
// price, zero when none was supplied.
func MapLineItem(item CartItem, currency string) types.LineItem {
	if currency == "" {
		currency = config.DefaultCurrency
	}

	attributes := MapAttributes(item.Properties)

	if item.IsCustom {
		title := item.DisplayTitle
		if title == "" {
			title = customItemTitle
		}
		return types.LineItem{
			Title:    title,
			Quantity: item.Quantity.Int(),
			OriginalUnitPriceWithCurrency: &types.Money{
				Amount:       item.Price.Amount(),
				CurrencyCode: currency,
			},
			CustomAttributes: attributes,
		}
	}

	lineItem := types.LineItem{
		VariantId:        shopify.VariantGID(item.VariantId),
		Quantity:         item.Quantity.Int(),
		CustomAttributes: attributes,
	}
	if item.Price.Overridable() {
		lineItem.PriceOverride = &types.Money{
			Amount:       item.Price.Amount(),
			CurrencyCode: currency,
		}
	}
	return lineItem
}

// MapAttributes converts a properties mapping into attribute pairs.
// Entries with nil or empty-string values are dropped; every kept value
// is stringified. Keys are emitted in sorted order so that mapping the
// same item twice yields structurally identical output.
func MapAttributes(properties map[string]any) []types.Attribute {
	if len(properties) == 0 {
		return nil
	}
	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	attributes := make([]types.Attribute, 0, len(keys))
	for _, key := range keys {
		value := properties[key]
		if value == nil {
			continue
		}
		stringValue := stringify(value)
		if stringValue == "" {
			continue
		}
		attributes = append(attributes, types.Attribute{Key: key, Value: stringValue})
	}
	if len(attributes) == 0 {
		return nil
	}
	return attributes
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// BuildDraftOrderInput wraps the mapped line items into the
// draftOrderCreate mutation input.
func BuildDraftOrderInput(items []CartItem, currency string) map[string]any {
	lineItems := make([]types.LineItem, len(items))
	for i, item := range items {
		lineItems[i] = MapLineItem(item, currency)
	}
	return map[string]any{
		"lineItems":                lineItems,
		"acceptAutomaticDiscounts": true,
	}
}
