package app

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/theabdulsaboor/Vercel-Shopify-App/logger"
)

type Handler func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error)

// CORSMiddleware emits the storefront CORS policy on every response,
// answers preflight requests and rejects anything that is not a POST.
func CORSMiddleware(origin string, function Handler) Handler {
	corsHeaders := map[string]string{
		"Access-Control-Allow-Origin":  origin,
		"Access-Control-Allow-Methods": "POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}

	withCORS := func(response *events.APIGatewayProxyResponse, err error) (*events.APIGatewayProxyResponse, error) {
		if response == nil {
			return response, err
		}
		if response.Headers == nil {
			response.Headers = map[string]string{}
		}
		for key, val := range corsHeaders {
			response.Headers[key] = val
		}
		return response, err
	}

	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		switch request.HTTPMethod {
		case http.MethodOptions:
			return withCORS(Response(204, ""))
		case http.MethodPost:
			return withCORS(function(ctx, request))
		default:
			return withCORS(JSONResponse(405, map[string]any{"error": "Method not allowed"}))
		}
	}
}

func CheckEnvMiddleware(function Handler) Handler {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		currentEnv := os.Getenv("ENV")
		disabledEnvs := os.Getenv("ENV_DISABLE")
		if currentEnv == "" || (disabledEnvs != "" && slices.Contains(strings.Split(disabledEnvs, ","), currentEnv)) {
			return Response(404, "Not Found")
		}

		return function(ctx, request)
	}
}

// RequestLogMiddleware attaches a request-scoped logger with a fresh
// request id and logs the request outcome.
func RequestLogMiddleware(log *logger.Logger, functionName string, function Handler) Handler {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		ctx = log.WithFields(ctx, map[string]any{
			"request_id": uuid.NewString(),
			"function":   functionName,
			"method":     request.HTTPMethod,
		})
		response, err := function(ctx, request)
		if response != nil {
			ctx = log.WithField(ctx, "status", response.StatusCode)
		}
		log.Info(ctx, "request completed")
		return response, err
	}
}

func TimeoutMiddleware(function Handler) Handler {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		timeoutCtx, cancel := context.WithTimeout(ctx, 9500*time.Millisecond)
		defer cancel()

		type result struct {
			Response *events.APIGatewayProxyResponse
			Error    error
		}

		resultChan := make(chan result, 1)

		go func() {
			response, err := function(timeoutCtx, request)
			resultChan <- result{
				Response: response,
				Error:    err,
			}
		}()

		select {
		case res := <-resultChan:
			return res.Response, res.Error
		case <-timeoutCtx.Done():
			return Response(http.StatusGatewayTimeout, "Request timed out")
		}
	}
}

// ConfigErrorHandler answers every request with a 500 once configuration
// loading has failed at cold start.
func ConfigErrorHandler(log *logger.Logger, err error) Handler {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		log.Error(ctx, "configuration error", err)
		return JSONResponse(500, map[string]any{"error": "Server configuration error"})
	}
}

func ResponseWithHeaders(statusCode int, body string, headers map[string]string) (*events.APIGatewayProxyResponse, error) {
	return &events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       body,
		Headers:    headers,
	}, nil
}

func Response(statusCode int, body string) (*events.APIGatewayProxyResponse, error) {
	return ResponseWithHeaders(statusCode, body, nil)
}

func JSONResponse(statusCode int, data any) (*events.APIGatewayProxyResponse, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return Response(500, "Internal Error")
	}
	return ResponseWithHeaders(statusCode, string(jsonData), map[string]string{
		"Content-Type": "application/json",
	})
}
