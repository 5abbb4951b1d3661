package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ledgerline/ledgerline-go/internal/apierrors"
)

// errBodyLimit caps how much of an error response body is retained.
const errBodyLimit = 8 << 10

// newJSONRequest builds a request with an optional JSON-encoded body.
func newJSONRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// handleResponse is the single checkpoint every call funnels through:
// 401 maps to AuthError, any other non-2xx to Error, otherwise the JSON
// body is decoded into out (which may be nil for empty responses).
func handleResponse(op string, resp *http.Response, out any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyLimit))
		return apierrors.FromResponse(op, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// encodeParams renders query parameters in sorted, URL-escaped form.
// An empty map yields an empty string.
func encodeParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return "?" + q.Encode()
}
