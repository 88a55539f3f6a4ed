package projection

import (
	"strconv"
	"strings"

	"github.com/de-tools/data-lens/pkg/models/report"
)

const missingStat = "-"

// KeyValueRow is one row of a generic key/value section table.
type KeyValueRow struct {
	Key   string
	Value string
}

// KeyValues projects a scalar mapping into display rows, preserving the
// source iteration order.
func KeyValues(m report.Map[report.Scalar]) []KeyValueRow {
	rows := make([]KeyValueRow, 0, m.Len())
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		rows = append(rows, KeyValueRow{Key: key, Value: v.String()})
	}
	return rows
}

// SummaryColumns is the fixed column set of the summary-statistics table.
var SummaryColumns = []string{"count", "mean", "std", "min", "max"}

// SummaryRow is one feature's statistics with absent stats already replaced
// by the display sentinel.
type SummaryRow struct {
	Feature string
	Count   string
	Mean    string
	Std     string
	Min     string
	Max     string
}

// SummaryRows projects per-feature statistics into one row per feature.
func SummaryRows(stats report.Map[report.FeatureStats]) []SummaryRow {
	rows := make([]SummaryRow, 0, stats.Len())
	for _, feature := range stats.Keys() {
		fs, _ := stats.Get(feature)
		rows = append(rows, SummaryRow{
			Feature: feature,
			Count:   statText(fs.Count),
			Mean:    statText(fs.Mean),
			Std:     statText(fs.Std),
			Min:     statText(fs.Min),
			Max:     statText(fs.Max),
		})
	}
	return rows
}

func statText(s *report.Scalar) string {
	if s == nil || s.IsNull() {
		return missingStat
	}
	return s.String()
}

// DuplicateRow is one duplicate group rendered for display.
type DuplicateRow struct {
	RowIndexes string
	Example    string
}

// DuplicateRows projects duplicate groups, joining row indexes with ", " and
// example cells as "key=value" pairs separated by ",\n". A group whose data
// was damaged upstream renders as empty text instead of dropping the row.
func DuplicateRows(groups report.Map[report.DuplicateGroup]) []DuplicateRow {
	rows := make([]DuplicateRow, 0, groups.Len())
	for _, key := range groups.Keys() {
		group, _ := groups.Get(key)

		indexes := make([]string, 0, len(group.Rows))
		for _, idx := range group.Rows {
			indexes = append(indexes, strconv.Itoa(int(idx)))
		}

		cells := make([]string, 0, group.Example.Len())
		for _, col := range group.Example.Keys() {
			v, _ := group.Example.Get(col)
			cells = append(cells, col+"="+v.String())
		}

		rows = append(rows, DuplicateRow{
			RowIndexes: strings.Join(indexes, ", "),
			Example:    strings.Join(cells, ",\n"),
		})
	}
	return rows
}

// CategoryRow is one flagged value of a categorical column. Index is -1 when
// the source row key was not a parseable integer; Key always holds the raw
// key for display.
type CategoryRow struct {
	Index      report.RowIndex
	Key        string
	Original   string
	Suggestion string
	Confidence string
	Reason     string
}

// CategoryBlock carries the findings of one categorical column. Columns with
// zero flagged rows still project into a block, asserting that the column was
// checked; columns absent from the input do not appear at all.
type CategoryBlock struct {
	Column    string
	ValidText string
	Rows      []CategoryRow
}

// CategoryBlocks projects category-inconsistency findings into per-column
// display blocks, both column and row order following the source document.
func CategoryBlocks(cols report.Map[report.ColumnReport]) []CategoryBlock {
	blocks := make([]CategoryBlock, 0, cols.Len())
	for _, column := range cols.Keys() {
		cr, _ := cols.Get(column)

		rows := make([]CategoryRow, 0, cr.Rows.Len())
		for _, key := range cr.Rows.Keys() {
			entry, _ := cr.Rows.Get(key)
			idx, _ := report.ParseRowIndex(key)
			rows = append(rows, CategoryRow{
				Index:      idx,
				Key:        key,
				Original:   entry.Original.String(),
				Suggestion: orDash(entry.Suggestion),
				Confidence: orDash(entry.Confidence.String()),
				Reason:     orDash(entry.Reason),
			})
		}

		blocks = append(blocks, CategoryBlock{
			Column:    column,
			ValidText: strings.Join(cr.ValidCategories, ", "),
			Rows:      rows,
		})
	}
	return blocks
}

func orDash(s string) string {
	if s == "" {
		return missingStat
	}
	return s
}
