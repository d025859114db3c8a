package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/theabdulsaboor/Vercel-Shopify-App/apierrors"
	"github.com/theabdulsaboor/Vercel-Shopify-App/app"
	"github.com/theabdulsaboor/Vercel-Shopify-App/helpers"
	"github.com/theabdulsaboor/Vercel-Shopify-App/shopify"
	"github.com/theabdulsaboor/Vercel-Shopify-App/shopify/adminapi/queries"
	"github.com/theabdulsaboor/Vercel-Shopify-App/shopify/adminapi/types"
)

// Client issues authenticated calls against one store's Admin API. The
// credential and target are fixed at construction; nothing is read from
// the process environment.
type Client struct {
	Domain     string
	Token      string
	APIVersion string
}

func New(domain string, token string, apiVersion string) *Client {
	return &Client{Domain: domain, Token: token, APIVersion: apiVersion}
}

type GraphQLFunc func(ctx context.Context, url string, authHeader string, authToken string, query string, variables map[string]any) (any, error)

type RESTFunc func(ctx context.Context, method string, url string, authHeader string, authToken string, body any) (any, error)

// The upstream call functions resolve through the request cache so that
// tests can swap in fakes.

func graphQLFunc(ctx context.Context) GraphQLFunc {
	fn, _ := app.GetCacheValue[GraphQLFunc](ctx, []any{"Shopify", "GraphQLQuery"}, helpers.GraphQLQuery)
	return fn
}

func restFunc(ctx context.Context) RESTFunc {
	fn, _ := app.GetCacheValue[RESTFunc](ctx, []any{"Shopify", "JSONRequest"}, helpers.JSONRequest)
	return fn
}

func wrapTransport(err error, message string) error {
	var httpErr *helpers.HTTPError
	if errors.As(err, &httpErr) {
		return apierrors.Wrap(apierrors.CodeTransport, err, message).WithDetails(httpErr.Body)
	}
	return apierrors.Wrap(apierrors.CodeTransport, err, message)
}

func (c *Client) callGraphQL(ctx context.Context, query queries.ShopifyQuery, variables map[string]any) (any, error) {
	url := shopify.GraphQLURL(c.Domain, c.APIVersion)
	resp, err := graphQLFunc(ctx)(ctx, url, shopify.AccessTokenHeader, c.Token, query.Query, variables)
	if err != nil {
		return nil, wrapTransport(err, "error calling Shopify Admin API")
	}
	respMap, ok := resp.(map[string]any)
	if !ok {
		return nil, apierrors.New(apierrors.CodeUpstreamStructural, fmt.Sprintf("invalid Shopify Admin API response, expected map, got: %v", resp))
	}
	if queryErrors, foundErrors := respMap["errors"]; foundErrors {
		return nil, apierrors.New(apierrors.CodeUpstreamField, "Shopify GraphQL errors").WithDetails(queryErrors)
	}
	data, dataOk := respMap["data"].(map[string]any)
	if !dataOk {
		return nil, apierrors.New(apierrors.CodeUpstreamStructural, fmt.Sprintf("data map not found in Shopify Admin API response: %v", respMap))
	}
	resultData, resultFound := data[query.ResultKey]
	if !resultFound || resultData == nil {
		return nil, apierrors.New(apierrors.CodeUpstreamStructural, fmt.Sprintf("Missing %s result", query.ResultKey))
	}
	return resultData, nil
}

// GraphQLQuery runs one typed Admin API query. The selected fields must
// match T exactly: unknown fields in the result are a structural error.
func GraphQLQuery[T any](ctx context.Context, c *Client, query queries.ShopifyQuery, variables map[string]any) (*T, error) {
	resultAny, err := c.callGraphQL(ctx, query, variables)
	if err != nil {
		return nil, err
	}
	resultJson, err := json.Marshal(resultAny)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.CodeUpstreamStructural, err, "error re-marshalling Shopify Admin API result")
	}
	var result T
	decoder := json.NewDecoder(bytes.NewReader(resultJson))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&result); err != nil {
		return nil, apierrors.Wrap(apierrors.CodeUpstreamStructural, err, fmt.Sprintf("error decoding Shopify Admin API result: %s", resultJson))
	}
	return &result, nil
}

// RESTCall runs one REST call and decodes the envelope into T. REST
// payloads carry fields this module never reads, so the decode is
// deliberately lenient.
func RESTCall[T any](ctx context.Context, c *Client, method string, url string, body any) (*T, error) {
	resultAny, err := restFunc(ctx)(ctx, method, url, shopify.AccessTokenHeader, c.Token, body)
	if err != nil {
		return nil, err
	}
	resultJson, err := json.Marshal(resultAny)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.CodeUpstreamStructural, err, "error re-marshalling Shopify REST result")
	}
	var result T
	if err := json.Unmarshal(resultJson, &result); err != nil {
		return nil, apierrors.Wrap(apierrors.CodeUpstreamStructural, err, fmt.Sprintf("error decoding Shopify REST result: %s", resultJson))
	}
	return &result, nil
}

// DraftOrderCreate issues the draftOrderCreate mutation in bulk mode.
func (c *Client) DraftOrderCreate(ctx context.Context, input map[string]any) (*types.DraftOrderCreateResult, error) {
	return GraphQLQuery[types.DraftOrderCreateResult](ctx, c, queries.DraftOrderCreate, map[string]any{"input": input})
}

// VariantById fetches one variant via REST. A missing variant, whether
// reported as an HTTP 404 or as an empty envelope, is a not-found error.
func (c *Client) VariantById(ctx context.Context, variantId string) (*types.Variant, error) {
	envelope, err := RESTCall[types.VariantEnvelope](ctx, c, http.MethodGet, shopify.VariantURL(c.Domain, c.APIVersion, variantId), nil)
	if err != nil {
		var httpErr *helpers.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
			return nil, apierrors.Wrap(apierrors.CodeNotFound, err, "Variant not found")
		}
		if typed := apierrors.As(err); typed != nil {
			return nil, err
		}
		return nil, wrapTransport(err, "error fetching variant")
	}
	if envelope.Variant == nil {
		return nil, apierrors.New(apierrors.CodeNotFound, "Variant not found")
	}
	return envelope.Variant, nil
}

func (c *Client) ProductById(ctx context.Context, productId string) (*types.Product, error) {
	envelope, err := RESTCall[types.ProductEnvelope](ctx, c, http.MethodGet, shopify.ProductURL(c.Domain, c.APIVersion, productId), nil)
	if err != nil {
		if typed := apierrors.As(err); typed != nil {
			return nil, err
		}
		return nil, wrapTransport(err, "error fetching product")
	}
	if envelope.Product == nil {
		return nil, apierrors.New(apierrors.CodeUpstreamStructural, "Missing product in Shopify response")
	}
	return envelope.Product, nil
}

// CreateDraftOrderREST creates a draft order through the legacy REST
// endpoint.
func (c *Client) CreateDraftOrderREST(ctx context.Context, request types.RESTDraftOrderRequest) (*types.RESTDraftOrder, error) {
	envelope, err := RESTCall[types.RESTDraftOrderEnvelope](ctx, c, http.MethodPost, shopify.DraftOrdersURL(c.Domain, c.APIVersion), request)
	if err != nil {
		if typed := apierrors.As(err); typed != nil {
			return nil, err
		}
		return nil, wrapTransport(err, "Failed to create draft order")
	}
	if envelope.DraftOrder == nil {
		return nil, apierrors.New(apierrors.CodeUpstreamStructural, "Missing draft_order in Shopify response")
	}
	return envelope.DraftOrder, nil
}
