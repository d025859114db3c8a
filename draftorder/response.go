package draftorder

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"

	"github.com/theabdulsaboor/Vercel-Shopify-App/apierrors"
	"github.com/theabdulsaboor/Vercel-Shopify-App/app"
)

// errorResponse normalizes any failure into the endpoint's error
// envelope. Transport failures surface a generic message with the
// upstream diagnostic payload as details; everything else relays its own
// message. The access credential never appears in either.
func (h *Handler) errorResponse(ctx context.Context, err error) (*events.APIGatewayProxyResponse, error) {
	typed := apierrors.As(err)
	if typed == nil {
		typed = apierrors.Wrap(apierrors.CodeTransport, err, "Server error")
	}

	h.Log.Error(ctx, "request failed", err)

	body := map[string]any{"error": typed.Message()}
	if typed.Code() == apierrors.CodeTransport {
		body["error"] = "Server error"
	}
	if details := detailsValue(typed); details != nil {
		body["details"] = details
	}

	return app.JSONResponse(apierrors.HTTPStatus(typed.Code()), body)
}

func detailsValue(typed *apierrors.Error) any {
	details := typed.Details()
	if details == nil {
		if typed.Code() == apierrors.CodeTransport && typed.Unwrap() != nil {
			return typed.Unwrap().Error()
		}
		return nil
	}
	// Upstream bodies arrive as raw strings; relay them as JSON when
	// they parse as such.
	if s, ok := details.(string); ok {
		decoder := json.NewDecoder(bytes.NewReader([]byte(s)))
		decoder.UseNumber()
		var parsed any
		if err := decoder.Decode(&parsed); err == nil {
			return parsed
		}
		return s
	}
	return details
}
