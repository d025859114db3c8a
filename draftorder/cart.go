package draftorder

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Quantity accepts a JSON number or a numeric string. Decimal values
// truncate toward zero. Anything else leaves the quantity unset, which
// fails validation later.
type Quantity struct {
	value int64
	set   bool
}

func NewQuantity(n int64) Quantity {
	return Quantity{value: n, set: true}
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*q = Quantity{}
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			*q = Quantity{}
			return nil
		}
		raw = []byte(s)
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		*q = Quantity{}
		return nil
	}
	*q = Quantity{value: d.IntPart(), set: true}
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if !q.set {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(q.value, 10)), nil
}

func (q Quantity) Int() int {
	return int(q.value)
}

func (q Quantity) Positive() bool {
	return q.set && q.value > 0
}

// Price accepts a JSON number or a numeric string. A null, missing or
// non-numeric price is simply invalid: the platform's own catalog price
// applies in that case.
type Price struct {
	value decimal.Decimal
	valid bool
}

func NewPrice(v decimal.Decimal) Price {
	return Price{value: v, valid: true}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*p = Price{}
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			*p = Price{}
			return nil
		}
		raw = []byte(s)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		*p = Price{}
		return nil
	}
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		*p = Price{}
		return nil
	}
	*p = Price{value: d, valid: true}
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}
	return []byte(p.value.String()), nil
}

func (p Price) Valid() bool {
	return p.valid
}

// Overridable reports whether the price qualifies as an explicit
// override: present, numeric and strictly greater than zero.
func (p Price) Overridable() bool {
	return p.valid && p.value.IsPositive()
}

// Amount renders the price with exactly two fraction digits. An invalid
// price renders as zero.
func (p Price) Amount() string {
	if !p.valid {
		return "0.00"
	}
	return p.value.StringFixed(2)
}

// CartItem is one storefront cart line as received from the client.
type CartItem struct {
	IsCustom     bool           `json:"isCustom"`
	VariantId    string         `json:"variantId" validate:"required_if=IsCustom false"`
	Quantity     Quantity       `json:"quantity"`
	Price        Price          `json:"price"`
	DisplayTitle string         `json:"displayTitle"`
	Properties   map[string]any `json:"properties"`
}

// BulkRequest is the body of the bulk endpoint.
type BulkRequest struct {
	Items []CartItem `json:"items" validate:"required,min=1,dive"`
}

// LegacyRequest is the body of the single-item endpoint.
type LegacyRequest struct {
	VariantId    string   `json:"variantId" validate:"required"`
	Quantity     Quantity `json:"quantity"`
	StoreDomain  string   `json:"storeDomain" validate:"required"`
	ProductTitle string   `json:"productTitle"`
}
