package view

// Report is the display-ready form of a quality report, consumed by the
// terminal reporter and the viewer API.
type Report struct {
	Sections        []Section `json:"sections"`
	Charts          []Chart   `json:"charts"`
	CleanedFilePath string    `json:"cleaned_file_path,omitempty"`
}

// Section is one rendered table section. Empty sections carry only the
// message; the category section carries per-column blocks instead of rows.
type Section struct {
	Title        string          `json:"title"`
	Empty        bool            `json:"empty"`
	EmptyMessage string          `json:"empty_message,omitempty"`
	Columns      []string        `json:"columns,omitempty"`
	Rows         [][]string      `json:"rows,omitempty"`
	Blocks       []CategoryBlock `json:"blocks,omitempty"`
}

// CategoryBlock is one categorical column's findings.
type CategoryBlock struct {
	Column          string     `json:"column"`
	ValidCategories string     `json:"valid_categories,omitempty"`
	Empty           bool       `json:"empty"`
	EmptyMessage    string     `json:"empty_message,omitempty"`
	Columns         []string   `json:"columns,omitempty"`
	Rows            [][]string `json:"rows,omitempty"`
}

// ChartPoint is one bar of a chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Chart is one bar-chart section. Width is the natural width the chart needs
// to show every label; empty charts have no points and no width.
type Chart struct {
	Title        string       `json:"title"`
	Empty        bool         `json:"empty"`
	EmptyMessage string       `json:"empty_message,omitempty"`
	Points       []ChartPoint `json:"points,omitempty"`
	Width        int          `json:"width,omitempty"`
}
