package types

import "encoding/json"

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UserError is a semantic field error reported by the platform. The
// field path is relayed verbatim, whatever shape the platform used.
type UserError struct {
	Field   any    `json:"field"`
	Message string `json:"message"`
}

// LineItem is the outbound draftOrderCreate line. A variant line sets
// VariantId; a custom line sets Title and the explicit unit price.
type LineItem struct {
	VariantId                     string      `json:"variantId,omitempty"`
	Title                         string      `json:"title,omitempty"`
	Quantity                      int         `json:"quantity"`
	PriceOverride                 *Money      `json:"priceOverride,omitempty"`
	OriginalUnitPriceWithCurrency *Money      `json:"originalUnitPriceWithCurrency,omitempty"`
	CustomAttributes              []Attribute `json:"customAttributes,omitempty"`
}

type DraftOrder struct {
	Id         string `json:"id"`
	InvoiceUrl string `json:"invoiceUrl"`
}

type DraftOrderCreateResult struct {
	DraftOrder *DraftOrder `json:"draftOrder"`
	UserErrors []UserError `json:"userErrors"`
}

// REST shapes. Decoded leniently: the REST payloads carry many more
// fields than the ones used here.

type Variant struct {
	Id        json.Number `json:"id"`
	Title     string      `json:"title"`
	Price     string      `json:"price"`
	ProductId json.Number `json:"product_id"`
}

type VariantEnvelope struct {
	Variant *Variant `json:"variant"`
}

type Product struct {
	Id    json.Number `json:"id"`
	Title string      `json:"title"`
}

type ProductEnvelope struct {
	Product *Product `json:"product"`
}

type RESTLineItem struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Custom   bool   `json:"custom"`
}

type RESTDraftOrderInput struct {
	LineItems     []RESTLineItem `json:"line_items"`
	TaxesIncluded bool           `json:"taxes_included"`
	Note          string         `json:"note,omitempty"`
}

type RESTDraftOrderRequest struct {
	DraftOrder RESTDraftOrderInput `json:"draft_order"`
}

type RESTDraftOrder struct {
	Id         json.Number `json:"id"`
	InvoiceUrl string      `json:"invoice_url"`
}

type RESTDraftOrderEnvelope struct {
	DraftOrder *RESTDraftOrder `json:"draft_order"`
}
