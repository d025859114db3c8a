package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// HTTPError is returned when an upstream call answers with a non-2xx
// status. The body is kept for diagnostics.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("non-2xx response: [%s] %s", e.Status, e.Body)
}

func decodeJSON(body []byte, status string) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	var responseJsonAny any
	if err := decoder.Decode(&responseJsonAny); err != nil {
		return nil, fmt.Errorf("invalid response format: [%s] %s", status, body)
	}
	return responseJsonAny, nil
}

func GraphQLQuery(ctx context.Context, url string, authHeader string, authToken string, query string, variables map[string]any) (any, error) {
	requestBody, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return nil, fmt.Errorf("error marshalling GraphQL request:\n>>> %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("error creating GraphQL query request:\n>>> %w", err)
	}
	request.Header.Add("Content-Type", "application/json")
	if authHeader != "" && authToken != "" {
		request.Header.Add(authHeader, authToken)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error requesting GraphQL query:\n>>> %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GraphQL query response:\n>>> %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: response.StatusCode, Status: response.Status, Body: string(responseBody)}
	}

	return decodeJSON(responseBody, response.Status)
}

// JSONRequest issues a REST call with an optional JSON body and decodes
// the JSON response. Numbers are decoded as json.Number so that large
// identifiers survive a re-marshal intact.
func JSONRequest(ctx context.Context, method string, url string, authHeader string, authToken string, body any) (any, error) {
	var requestBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshalling JSON request:\n>>> %w", err)
		}
		requestBody = bytes.NewBuffer(bodyJson)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, requestBody)
	if err != nil {
		return nil, fmt.Errorf("error creating JSON request:\n>>> %w", err)
	}
	if body != nil {
		request.Header.Add("Content-Type", "application/json")
	}
	if authHeader != "" && authToken != "" {
		request.Header.Add(authHeader, authToken)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error requesting %s %s:\n>>> %w", method, url, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON response:\n>>> %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: response.StatusCode, Status: response.Status, Body: string(responseBody)}
	}

	return decodeJSON(responseBody, response.Status)
}

func TempEnvVars(vars map[string]string) (reset func()) {
	current := map[string]string{}
	for key, val := range vars {
		current[key] = os.Getenv(key)
		os.Setenv(key, val)
	}
	return func() {
		for key, val := range current {
			os.Setenv(key, val)
		}
	}
}

// normalizeString removes diacritics/accents and lowercases the string.
func normalizeString(s string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return "", fmt.Errorf("error normalizing string\nERROR=%w", err)
	}
	return strings.ToLower(result), nil
}

// NormalizeHost canonicalizes a host name for comparison: diacritics
// stripped, lowercased, trailing dot removed.
func NormalizeHost(host string) (string, error) {
	normalized, err := normalizeString(strings.TrimSpace(host))
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(normalized, "."), nil
}

// HostInList checks whether host matches any entry of l, comparing
// normalized forms.
func HostInList(host string, l []string) (bool, error) {
	n, err := NormalizeHost(host)
	if err != nil {
		return false, err
	}
	for _, sl := range l {
		nl, err := NormalizeHost(sl)
		if err != nil {
			return false, fmt.Errorf("error normalizing host from list\nERROR=%w", err)
		}
		if n == nl {
			return true, nil
		}
	}
	return false, nil
}
