package queries

// STRUCTS

type ShopifyQuery struct {
	ResultKey string
	Query     string
}

// MUTATIONS

var DraftOrderCreate = ShopifyQuery{
	ResultKey: "draftOrderCreate",
	Query: `
mutation draftOrderCreate($input: DraftOrderInput!) {
	draftOrderCreate(input: $input) {
		draftOrder {
			id
			invoiceUrl
		}
		userErrors {
			field
			message
		}
	}
}
`,
}
