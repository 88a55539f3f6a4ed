package quality

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/de-tools/data-lens/pkg/models/report"
	"github.com/rs/zerolog"
)

// Client talks to the remote analysis service that computes quality reports.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates an analysis-service client for the given base URL. A nil
// client falls back to http.DefaultClient.
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

// BaseURL returns the configured service base URL; cleaned-file paths in the
// report resolve against it.
func (c *Client) BaseURL() string { return c.baseURL }

// Analyze uploads one CSV file and returns the decoded quality report.
// A failed call leaves no partial state behind: either a document comes back
// or an error does.
func (c *Client) Analyze(ctx context.Context, token, filename string, file io.Reader) (*report.Document, error) {
	logger := zerolog.Ctx(ctx)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read upload data: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/quality/report", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debug().Int("status", resp.StatusCode).Str("file", filename).Msg("analysis rejected")
		return nil, fmt.Errorf("failed to upload file: status %d", resp.StatusCode)
	}

	doc, err := report.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode quality report: %w", err)
	}

	logger.Debug().Str("file", filename).Msg("quality report received")
	return doc, nil
}
