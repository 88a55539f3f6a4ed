package quality

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/de-tools/data-lens/pkg/adapters"
	"github.com/de-tools/data-lens/pkg/models/report"
	"github.com/de-tools/data-lens/pkg/services/export"
	"github.com/rs/zerolog"
)

// maxUploadBytes caps in-memory multipart parsing for uploads.
const maxUploadBytes = 64 << 20

// Analyzer uploads a dataset to the analysis service and returns the decoded
// quality report.
type Analyzer interface {
	Analyze(ctx context.Context, token, filename string, file io.Reader) (*report.Document, error)
}

// Handler serves the viewer API: report analysis and the same-origin proxy
// for the cleaned dataset.
type Handler struct {
	analyzer      Analyzer
	reportBaseURL string
	httpc         *http.Client
}

func NewHandler(analyzer Analyzer, reportBaseURL string, httpc *http.Client) *Handler {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Handler{
		analyzer:      analyzer,
		reportBaseURL: reportBaseURL,
		httpc:         httpc,
	}
}

// AnalyzeFile accepts a multipart CSV upload, forwards it to the analysis
// service with the caller's bearer token, and responds with the projected
// report view.
func (h *Handler) AnalyzeFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	token := bearerToken(r)
	if token == "" {
		http.Error(w, "missing bearer token", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart upload", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	doc, err := h.analyzer.Analyze(ctx, token, header.Filename, file)
	if err != nil {
		logger.Error().Err(err).Str("file", header.Filename).Msg("analysis failed")
		http.Error(w, "failed to analyze file", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapDocumentToView(doc)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report view")
	}
}

// DownloadCleaned proxies the cleaned dataset from the analysis service so
// the viewer can offer a same-origin download link.
func (h *Handler) DownloadCleaned(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	target, ok := export.CleanedFileURL(h.reportBaseURL, r.URL.Query().Get("path"))
	if !ok {
		http.Error(w, "no cleaned file available", http.StatusNotFound)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		http.Error(w, "invalid cleaned file reference", http.StatusBadRequest)
		return
	}

	resp, err := h.httpc.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("cleaned file fetch failed")
		http.Error(w, "failed to fetch cleaned file", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		http.Error(w, "cleaned file not available", http.StatusBadGateway)
		return
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		w.Header().Set("Content-Disposition", cd)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.Error().Err(err).Msg("failed to stream cleaned file")
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
