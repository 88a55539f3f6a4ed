package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/data-lens/pkg/models/report"
	"github.com/de-tools/data-lens/pkg/services/projection"
	"github.com/de-tools/data-lens/pkg/services/section"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	// MissingValuesImage is the exact artifact name of the missing-values chart.
	MissingValuesImage = "missing-values.png"
	// OutliersImage is the exact artifact name of the outliers chart.
	OutliersImage = "outliers.png"

	// oversample is the fixed rasterization factor applied to chart exports.
	oversample  = 2
	chartHeight = 400
)

// ChartRegion is a resolved, renderable chart area. A region only exists for
// a non-empty series; callers receiving nil must show the empty state instead
// of an export control.
type ChartRegion struct {
	Title  string
	Points []projection.Point

	// DisplayWidth is the width a viewer clamped the region to on screen.
	// Exports ignore it: rasterization always happens at the natural width so
	// columns scrolled out of view are still captured.
	DisplayWidth int
}

// NewChartRegion materializes a chart region for a numeric-count section.
// Returns nil when the section classifies as empty (no entries or all-zero).
func NewChartRegion(kind section.Kind, counts report.Counts) *ChartRegion {
	if section.IsEmpty(kind, counts) {
		return nil
	}
	points := projection.Series(counts.Map)
	return &ChartRegion{
		Title:        kind.Title(),
		Points:       points,
		DisplayWidth: projection.RequiredWidth(len(points)),
	}
}

// NaturalWidth is the full scrollable width the region needs to show every
// category with fixed label spacing.
func (r *ChartRegion) NaturalWidth() int {
	return projection.RequiredWidth(len(r.Points))
}

// ExportChartImage rasterizes the region as a PNG bar chart at the fixed
// oversampling factor on an opaque white background and writes it under the
// given filename. An unresolved (nil) region is a silent no-op.
func (e *Engine) ExportChartImage(region *ChartRegion, filename string) (string, error) {
	if region == nil || len(region.Points) == 0 {
		return "", nil
	}

	bars := make([]chart.Value, 0, len(region.Points))
	maxValue := 0.0
	for _, p := range region.Points {
		bars = append(bars, chart.Value{Label: p.Label, Value: p.Value})
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	white := chart.Style{FillColor: drawing.ColorWhite}
	bc := chart.BarChart{
		Title:      region.Title,
		Width:      region.NaturalWidth() * oversample,
		Height:     chartHeight * oversample,
		BarWidth:   60 * oversample,
		BarSpacing: 60 * oversample,
		Background: white,
		Canvas:     white,
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("failed to render chart %q: %w", region.Title, err)
	}

	path := filepath.Join(e.dir, filepath.Base(filename))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write chart image: %w", err)
	}
	return path, nil
}
