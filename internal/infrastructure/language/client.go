// Package language is the HTTP client for the external language capability.
// The sidecar performs sentence segmentation, named-entity recognition,
// noun-chunk extraction and tokenization; this client only moves text in and
// structure out. It is probed once at startup; absence degrades the
// structurer to fallback mode rather than failing.
package language

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/kirillkom/docstruct/internal/core/domain"
	"github.com/kirillkom/docstruct/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	executor   *resilience.Executor
}

type Options struct {
	Timeout  time.Duration
	Executor *resilience.Executor
}

func New(baseURL string, options Options) *Client {
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	executor := options.Executor
	if executor == nil {
		executor = resilience.NewExecutor(resilience.DefaultConfig())
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		executor:   executor,
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// Analyze runs the full linguistic pass over the text in one round trip.
func (c *Client) Analyze(ctx context.Context, text string) (*domain.LanguageAnalysis, error) {
	var analysis domain.LanguageAnalysis
	err := c.executor.Execute(ctx, "analyze", func(ctx context.Context) error {
		return c.postJSON(ctx, "/v1/analyze", analyzeRequest{Text: text}, &analysis, "analyze")
	}, classifyLanguageError)
	if err != nil {
		return nil, wrapTemporaryIfNeeded("analyze text", err)
	}
	return &analysis, nil
}

// Healthy reports whether the sidecar is reachable and has its model loaded.
func (c *Client) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("create health request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("language health request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("language health status: %s", resp.Status)
	}
	return nil
}
