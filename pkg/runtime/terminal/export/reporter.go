package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/data-lens/pkg/models/view"
)

type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// Handle renders the report to the terminal, one titled section per quality
// check. Empty sections print their message instead of an empty table.
func (c *Reporter) Handle(report *view.Report) error {
	for _, s := range report.Sections {
		if err := c.section(s); err != nil {
			return err
		}
	}
	for _, chart := range report.Charts {
		c.chart(chart)
	}
	if report.CleanedFilePath != "" {
		fmt.Fprintf(c.writer, "\nCleaned dataset available at %s\n", report.CleanedFilePath)
	}
	return nil
}

func (c *Reporter) section(s view.Section) error {
	fmt.Fprintf(c.writer, "\n=== %s ===\n", s.Title)
	if s.Empty {
		fmt.Fprintf(c.writer, "✔ %s\n", s.EmptyMessage)
		return nil
	}
	if len(s.Blocks) > 0 {
		for _, block := range s.Blocks {
			fmt.Fprintf(c.writer, "\n%s\n", block.Column)
			if block.ValidCategories != "" {
				fmt.Fprintf(c.writer, "Valid categories: %s\n", block.ValidCategories)
			}
			if block.Empty {
				fmt.Fprintf(c.writer, "✔ %s\n", block.EmptyMessage)
				continue
			}
			if err := c.table(block.Columns, block.Rows); err != nil {
				return err
			}
		}
		return nil
	}
	return c.table(s.Columns, s.Rows)
}

func (c *Reporter) chart(chart view.Chart) {
	fmt.Fprintf(c.writer, "\n=== %s ===\n", chart.Title)
	if chart.Empty {
		fmt.Fprintf(c.writer, "✔ %s\n", chart.EmptyMessage)
		return
	}
	fmt.Fprintf(c.writer, "%d columns charted, natural width %dpx\n", len(chart.Points), chart.Width)
}

func (c *Reporter) table(columns []string, rows [][]string) error {
	widths := columnWidths(columns, rows)

	funcMap := template.FuncMap{
		"formatRow": func(cells []string) string {
			return formatRow(widths, cells)
		},
		"separator": func() string {
			parts := make([]string, len(widths))
			for i, w := range widths {
				parts[i] = strings.Repeat("-", w+2)
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	tmpl := `{{separator}}
{{formatRow .Columns}}
{{separator}}
{{range .Rows}}{{formatRow .}}
{{end}}{{separator}}
`

	t, err := template.New("table").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse table template: %w", err)
	}

	return t.Execute(c.writer, struct {
		Columns []string
		Rows    [][]string
	}{Columns: columns, Rows: rows})
}

// columnWidths sizes every column to its widest header or cell line. Cells
// may span multiple lines (duplicate examples do).
func columnWidths(columns []string, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len([]rune(col))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			for _, line := range strings.Split(cell, "\n") {
				if n := len([]rune(line)); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}
	return widths
}

func formatRow(widths []int, cells []string) string {
	height := 1
	lines := make([][]string, len(widths))
	for i := range widths {
		if i < len(cells) {
			lines[i] = strings.Split(cells[i], "\n")
		} else {
			lines[i] = []string{""}
		}
		if len(lines[i]) > height {
			height = len(lines[i])
		}
	}

	var out []string
	for row := 0; row < height; row++ {
		var b strings.Builder
		for i, w := range widths {
			cell := ""
			if row < len(lines[i]) {
				cell = lines[i][row]
			}
			b.WriteString(fmt.Sprintf("| %-*s ", w+len(cell)-len([]rune(cell)), cell))
		}
		b.WriteString("|")
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}
