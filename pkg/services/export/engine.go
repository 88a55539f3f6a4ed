package export

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/de-tools/data-lens/pkg/models/report"
)

// ReportFile is the exact artifact name of the serialized report.
const ReportFile = "data_quality_report.json"

// Engine produces downloadable artifacts from a report document. Every
// operation is independent and idempotent; none of them mutate the document.
type Engine struct {
	dir   string
	httpc *http.Client
}

// NewEngine creates an artifact engine writing into dir, creating it if
// needed. A nil client falls back to http.DefaultClient.
func NewEngine(dir string, httpc *http.Client) (*Engine, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifacts directory: %w", err)
	}
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Engine{dir: dir, httpc: httpc}, nil
}

// Dir returns the artifacts directory.
func (e *Engine) Dir() string { return e.dir }

// ExportReportJSON serializes the whole document with 2-space indentation,
// keys in document order, and writes it as ReportFile. Decoding the artifact
// reproduces a document structurally equal to the input.
func (e *Engine) ExportReportJSON(doc *report.Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize report: %w", err)
	}

	path := filepath.Join(e.dir, ReportFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return path, nil
}
