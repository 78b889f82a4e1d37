package mdhtml

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxFetchBytes bounds documents fetched by ParseURL.
const DefaultMaxFetchBytes = 8 << 20

// URLRequest configures ParseURL.
type URLRequest struct {
	URL    string
	Client *http.Client
	// Parser renders the fetched document. A GFM parser is used when nil.
	Parser *Parser
	// MaxBytes caps the response body; DefaultMaxFetchBytes when zero.
	MaxBytes int64
}

// ParseURL fetches Markdown over HTTP(S), validates it and renders it.
func ParseURL(ctx context.Context, req URLRequest) (Result, error) {
	if req.URL == "" {
		return Result{}, fmt.Errorf("parse url: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	parser := req.Parser
	if parser == nil {
		parser = NewParser()
	}
	limit := req.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxFetchBytes
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("parse url: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return Result{}, fmt.Errorf("parse url: unsupported scheme %q", httpReq.URL.Scheme)
	}
	httpReq.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")
	resp, err := client.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("parse url: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("parse url: status %s", resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return Result{}, fmt.Errorf("parse url: read body: %w", err)
	}
	if int64(len(body)) > limit {
		return Result{}, fmt.Errorf("parse url: body exceeds %d bytes", limit)
	}
	res, err := parser.ParseBytes(body)
	if err != nil {
		return Result{}, fmt.Errorf("parse url: %w", err)
	}
	return res, nil
}
