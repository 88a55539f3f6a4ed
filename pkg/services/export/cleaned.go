package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// ErrNoCleanedFile is returned when the report carries no usable cleaned-file
// path; callers should show no download option rather than a broken link.
var ErrNoCleanedFile = errors.New("no cleaned file available")

// CleanedFileURL resolves the service-relative cleaned-file path against the
// report service base URL. The second result is false when the path is absent
// or not a server-relative reference.
func CleanedFileURL(baseURL, path string) (string, bool) {
	path = strings.TrimSpace(path)
	if path == "" || !strings.HasPrefix(path, "/") {
		return "", false
	}
	ref, err := url.Parse(path)
	if err != nil || ref.IsAbs() || ref.Host != "" {
		return "", false
	}
	return strings.TrimRight(baseURL, "/") + path, true
}

// DownloadCleanedFile fetches the cleaned dataset referenced by the report
// and saves it under its server-side base name in the artifacts directory.
func (e *Engine) DownloadCleanedFile(ctx context.Context, baseURL, cleanedPath string) (string, error) {
	logger := zerolog.Ctx(ctx)

	target, ok := CleanedFileURL(baseURL, cleanedPath)
	if !ok {
		return "", ErrNoCleanedFile
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download cleaned file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("cleaned file download failed with status %d", resp.StatusCode)
	}

	name := filepath.Base(cleanedPath)
	path := filepath.Join(e.dir, name)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to save cleaned file: %w", err)
	}

	logger.Debug().Str("file", name).Int64("bytes", written).Msg("cleaned file saved")
	return path, nil
}
