package projection

import "github.com/de-tools/data-lens/pkg/models/report"

const (
	// widthPerLabel keeps every category label readable regardless of how
	// many columns the dataset has.
	widthPerLabel = 120
	// minChartWidth stops single-bar charts from rendering degenerate.
	minChartWidth = 900
)

// Point is one (label, value) pair of a bar-chart series.
type Point struct {
	Label string
	Value float64
}

// Series projects a numeric-count mapping into an ordered chart series.
// Order follows the source document; non-numeric values coerce to 0.
func Series(m report.Map[report.Scalar]) []Point {
	points := make([]Point, 0, m.Len())
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		points = append(points, Point{Label: key, Value: v.Float64()})
	}
	return points
}

// RequiredWidth returns the natural pixel width of a bar chart with n
// categories: fixed spacing per label with a floor for small datasets.
func RequiredWidth(n int) int {
	if w := n * widthPerLabel; w > minChartWidth {
		return w
	}
	return minChartWidth
}
