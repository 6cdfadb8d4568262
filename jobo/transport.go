package jobo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxBodyBytes bounds how much of a response body is read into memory.
const maxBodyBytes = 4 << 20

// apiResponse is a raw HTTP exchange result, before status classification.
type apiResponse struct {
	statusCode int
	body       []byte
	header     http.Header
}

// request performs one authenticated HTTP exchange. Only network-level
// failures produce an error here; status classification happens in do.
func (c *Client) request(ctx context.Context, method, endpoint string, query url.Values, body any) (*apiResponse, error) {
	requestURL := c.baseURL + endpoint
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, newValidationError("encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("jobo: build request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("Jobo API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newConnectionError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, newConnectionError(err)
	}

	return &apiResponse{
		statusCode: resp.StatusCode,
		body:       data,
		header:     resp.Header,
	}, nil
}

// do performs a request, maps non-2xx responses to typed errors, and decodes
// a successful JSON body into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	resp, err := c.request(ctx, method, endpoint, query, body)
	if err != nil {
		return err
	}

	if resp.statusCode < 200 || resp.statusCode > 299 {
		return classifyStatus(resp.statusCode, resp.body, resp.header)
	}

	if out != nil {
		if err := json.Unmarshal(resp.body, out); err != nil {
			return newValidationError("decode response body", err)
		}
	}

	return nil
}
