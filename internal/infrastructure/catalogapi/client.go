// Package catalogapi provides a RecordSource that reads the catalog over HTTP.
package catalogapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/ports"
	"github.com/ersonp/dex/internal/infrastructure/config"
)

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 16 << 20

// Client implements ports.RecordSource against a fixed JSON endpoint.
type Client struct {
	httpClient   *http.Client
	endpoint     string
	contentTypes []string
	logger       *slog.Logger
}

// Verify Client satisfies ports.RecordSource at compile time.
var _ ports.RecordSource = (*Client)(nil)

// NewClient creates a catalog client. A nil logger falls back to slog.Default.
func NewClient(cfg config.CatalogConfig, logger *slog.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("catalog endpoint is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	contentTypes := make([]string, 0, len(cfg.ContentTypes))
	for _, ct := range cfg.ContentTypes {
		contentTypes = append(contentTypes, strings.ToLower(strings.TrimSpace(ct)))
	}
	if len(contentTypes) == 0 {
		contentTypes = []string{config.DefaultContentType}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		endpoint:     cfg.Endpoint,
		contentTypes: contentTypes,
		logger:       logger,
	}, nil
}

// FetchRecords issues one GET to the endpoint and decodes the record array.
// Connection failures, timeouts, non-2xx statuses and unexpected content types
// are *ports.TransportError; schema violations are *ports.DecodeError.
func (c *Client) FetchRecords(ctx context.Context) ([]entities.Record, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, &ports.TransportError{Op: "building request", Err: err}
	}
	req.Header.Set("Accept", config.DefaultContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ports.TransportError{Op: "sending request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ports.TransportError{Op: "unexpected status", StatusCode: resp.StatusCode}
	}

	if err := c.checkContentType(resp.Header.Get("Content-Type")); err != nil {
		return nil, &ports.TransportError{Op: "unexpected content type", StatusCode: resp.StatusCode, Err: err}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, &ports.TransportError{Op: "reading body", StatusCode: resp.StatusCode, Err: err}
	}
	if len(body) > MaxBodySize {
		return nil, &ports.TransportError{
			Op:         "reading body",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("body exceeds %d bytes", MaxBodySize),
		}
	}

	records, err := DecodeRecords(body)
	if err != nil {
		return nil, &ports.DecodeError{Err: err}
	}

	c.logger.Debug("Fetched catalog",
		"endpoint", c.endpoint,
		"status", resp.StatusCode,
		"count", len(records),
		"duration", time.Since(start),
	)

	return records, nil
}

// checkContentType accepts any configured media type, ignoring parameters such as charset.
func (c *Client) checkContentType(header string) error {
	if header == "" {
		return errors.New("missing Content-Type header")
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return fmt.Errorf("parsing Content-Type %q: %w", header, err)
	}
	if !slices.Contains(c.contentTypes, mediaType) {
		return fmt.Errorf("got %q, want one of %v", mediaType, c.contentTypes)
	}
	return nil
}
