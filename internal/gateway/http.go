// File path: internal/gateway/http.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nicodishanthj/legacybridge/internal/common"
)

// HTTPClient talks to the remote conversion backend over plain JSON HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient builds a gateway for the given base URL. The timeout bounds
// each call end to end; conversion responses can take minutes.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Name() string { return "http" }

// AnalyzeRequirements posts the uploaded files for requirements analysis.
func (c *HTTPClient) AnalyzeRequirements(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	logger := common.Logger()
	logger.Info("gateway: analyze requested", "files", len(req.FileData), "source", req.SourceLanguage, "target", req.TargetLanguage)
	var result AnalyzeResult
	if err := c.post(ctx, "/analyze-requirements", req, &result); err != nil {
		logger.Error("gateway: analyze failed", "error", err)
		return nil, err
	}
	logger.Info("gateway: analyze succeeded")
	return &result, nil
}

// Convert posts the combined source and prior analysis for conversion.
func (c *HTTPClient) Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error) {
	logger := common.Logger()
	logger.Info("gateway: convert requested", "source_len", len(req.SourceCode), "target", req.TargetLanguage)
	var result ConvertResult
	if err := c.post(ctx, "/convert", req, &result); err != nil {
		logger.Error("gateway: convert failed", "error", err)
		return nil, err
	}
	if strings.EqualFold(result.Status, "error") {
		message := strings.TrimSpace(result.Message)
		if message == "" {
			message = "conversion rejected by backend"
		}
		return nil, fmt.Errorf("gateway: %s", message)
	}
	logger.Info("gateway: convert succeeded", "database_used", result.DatabaseUsed)
	return &result, nil
}

// Health probes the backend liveness endpoint.
func (c *HTTPClient) Health(ctx context.Context) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	resp, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned %s", ErrUnavailable, resp.Status)
	}
	return nil
}

func (c *HTTPClient) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned %s", ErrUnavailable, path, resp.Status)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
