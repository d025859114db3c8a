package draftorder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/shopspring/decimal"

	"github.com/theabdulsaboor/Vercel-Shopify-App/apierrors"
	"github.com/theabdulsaboor/Vercel-Shopify-App/app"
	"github.com/theabdulsaboor/Vercel-Shopify-App/config"
	"github.com/theabdulsaboor/Vercel-Shopify-App/logger"
	"github.com/theabdulsaboor/Vercel-Shopify-App/shopify"
	"github.com/theabdulsaboor/Vercel-Shopify-App/shopify/adminapi"
	"github.com/theabdulsaboor/Vercel-Shopify-App/shopify/adminapi/types"
)

const defaultProductTitle = "Custom Product"

type Handler struct {
	Config *config.Config
	Log    *logger.Logger
}

func NewHandler(cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{Config: cfg, Log: log}
}

func (h *Handler) client(domain string) *adminapi.Client {
	return adminapi.New(domain, h.Config.AccessToken, h.Config.APIVersion)
}

// CreateBulk maps the full cart into one draftOrderCreate mutation.
func (h *Handler) CreateBulk(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	var req BulkRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return h.errorResponse(ctx, apierrors.Wrap(apierrors.CodeValidation, err, "Invalid JSON in request body"))
	}
	if err := ValidateBulk(&req); err != nil {
		return h.errorResponse(ctx, err)
	}

	client := h.client(shopify.AdminDomain(h.Config.StoreName))
	input := BuildDraftOrderInput(req.Items, h.Config.Currency)
	result, err := client.DraftOrderCreate(ctx, input)
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	if len(result.UserErrors) > 0 {
		return app.JSONResponse(400, map[string]any{"errors": result.UserErrors})
	}
	if result.DraftOrder == nil {
		return h.errorResponse(ctx, apierrors.New(apierrors.CodeUpstreamStructural, "Missing draftOrderCreate result"))
	}

	h.publishCreated(ctx, "bulk", result.DraftOrder.Id, result.DraftOrder.InvoiceUrl, len(req.Items))

	return app.JSONResponse(200, map[string]any{
		"draftOrderId": result.DraftOrder.Id,
		"invoiceUrl":   result.DraftOrder.InvoiceUrl,
	})
}

// CreateLegacy resolves a single variant through the REST API and
// creates a draft order with one synthesized custom line whose price is
// the variant's base price times the requested quantity.
func (h *Handler) CreateLegacy(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	var req LegacyRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return h.errorResponse(ctx, apierrors.Wrap(apierrors.CodeValidation, err, "Invalid JSON in request body"))
	}
	if err := ValidateLegacy(&req); err != nil {
		return h.errorResponse(ctx, err)
	}

	ownDomain := shopify.AdminDomain(h.Config.StoreName)
	allowed, err := shopify.DomainAllowed(req.StoreDomain, ownDomain, h.Config.StoreDomains)
	if err != nil {
		return h.errorResponse(ctx, apierrors.Wrap(apierrors.CodeValidation, err, "Invalid store domain"))
	}
	if !allowed {
		return h.errorResponse(ctx, apierrors.New(apierrors.CodeValidation, "Store domain not allowed"))
	}

	client := h.client(req.StoreDomain)

	variant, err := client.VariantById(ctx, req.VariantId)
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	basePrice, err := decimal.NewFromString(variant.Price)
	if err != nil {
		return h.errorResponse(ctx, apierrors.Wrap(apierrors.CodeUpstreamStructural, err, "Invalid variant price"))
	}
	quantity := req.Quantity.Int()
	totalPrice := basePrice.Mul(decimal.NewFromInt(int64(quantity)))

	finalTitle := req.ProductTitle
	if finalTitle == "" {
		product, err := client.ProductById(ctx, variant.ProductId.String())
		if err != nil {
			return h.errorResponse(ctx, err)
		}
		finalTitle = product.Title
		if finalTitle == "" {
			finalTitle = defaultProductTitle
		}
	}

	displayTitle := finalTitle
	if variant.Title != "" && variant.Title != "Default Title" {
		displayTitle = fmt.Sprintf("%s - %s", finalTitle, variant.Title)
	}

	payload := types.RESTDraftOrderRequest{
		DraftOrder: types.RESTDraftOrderInput{
			LineItems: []types.RESTLineItem{
				{
					Title:    fmt.Sprintf("%s (Custom Quantity)", displayTitle),
					Price:    totalPrice.StringFixed(2),
					Quantity: 1,
					Custom:   true,
				},
			},
			TaxesIncluded: false,
			Note:          fmt.Sprintf("Custom order with quantity %d", quantity),
		},
	}

	draftOrder, err := client.CreateDraftOrderREST(ctx, payload)
	if err != nil {
		return h.errorResponse(ctx, err)
	}

	h.publishCreated(ctx, "legacy", draftOrder.Id, draftOrder.InvoiceUrl, 1)

	return app.JSONResponse(200, map[string]any{
		"draftOrderId": draftOrder.Id,
		"invoiceUrl":   draftOrder.InvoiceUrl,
	})
}
