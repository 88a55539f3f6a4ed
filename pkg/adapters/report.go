package adapters

import (
	"github.com/de-tools/data-lens/pkg/models/report"
	"github.com/de-tools/data-lens/pkg/models/view"
	"github.com/de-tools/data-lens/pkg/services/projection"
	"github.com/de-tools/data-lens/pkg/services/section"
)

const (
	noMissingChart  = "No missing values chart available."
	noOutliersChart = "No outliers chart available."
)

// MapDocumentToView projects a report document into its display-ready form:
// sections in viewer order, chart series, and the cleaned-file reference.
func MapDocumentToView(doc *report.Document) view.Report {
	sections := []view.Section{
		keyValueSection(section.MissingValues, doc.MissingValues.Map, doc.MissingValues),
		keyValueSection(section.Outliers, doc.OutliersDetected.Map, doc.OutliersDetected),
		keyValueSection(section.InvalidEmails, doc.InvalidFormat.Email, doc.InvalidFormat.Email),
		keyValueSection(section.InvalidDates, doc.InvalidFormat.Date, doc.InvalidFormat.Date),
		keyValueSection(section.InvalidPhones, doc.InvalidFormat.Phone, doc.InvalidFormat.Phone),
		duplicateSection(doc.DuplicateRows),
	}

	// the category section disappears entirely when no column was checked
	if !section.IsEmpty(section.CategoryInconsistencies, doc.CategoryInconsistencies) {
		sections = append(sections, categorySection(doc.CategoryInconsistencies))
	}

	sections = append(sections, summarySection(doc.SummaryStatistics))

	return view.Report{
		Sections: sections,
		Charts: []view.Chart{
			chartSection(section.MissingValues, doc.MissingValues, noMissingChart),
			chartSection(section.Outliers, doc.OutliersDetected, noOutliersChart),
		},
		CleanedFilePath: doc.CleanedFileDownload,
	}
}

func keyValueSection(kind section.Kind, m report.Map[report.Scalar], s section.Section) view.Section {
	if section.IsEmpty(kind, s) {
		return emptySection(kind)
	}

	rows := make([][]string, 0, m.Len())
	for _, row := range projection.KeyValues(m) {
		rows = append(rows, []string{row.Key, row.Value})
	}
	return view.Section{
		Title:   kind.Title(),
		Columns: []string{"Key", "Value"},
		Rows:    rows,
	}
}

func duplicateSection(groups report.Map[report.DuplicateGroup]) view.Section {
	kind := section.DuplicateRows
	if section.IsEmpty(kind, groups) {
		return emptySection(kind)
	}

	rows := make([][]string, 0, groups.Len())
	for _, row := range projection.DuplicateRows(groups) {
		rows = append(rows, []string{row.RowIndexes, row.Example})
	}
	return view.Section{
		Title:   kind.Title(),
		Columns: []string{"Row Indexes", "Example Row"},
		Rows:    rows,
	}
}

func categorySection(cols report.Map[report.ColumnReport]) view.Section {
	kind := section.CategoryInconsistencies

	blocks := make([]view.CategoryBlock, 0, cols.Len())
	for _, block := range projection.CategoryBlocks(cols) {
		vb := view.CategoryBlock{
			Column:          block.Column,
			ValidCategories: block.ValidText,
		}
		if len(block.Rows) == 0 {
			vb.Empty = true
			vb.EmptyMessage = "No inconsistencies detected in " + block.Column + "."
		} else {
			vb.Columns = []string{"Row Index", "Original", "Suggested", "Confidence", "Reason"}
			for _, row := range block.Rows {
				vb.Rows = append(vb.Rows, []string{
					row.Key, row.Original, row.Suggestion, row.Confidence, row.Reason,
				})
			}
		}
		blocks = append(blocks, vb)
	}

	return view.Section{
		Title:  kind.Title(),
		Blocks: blocks,
	}
}

func summarySection(stats report.Map[report.FeatureStats]) view.Section {
	kind := section.SummaryStatistics
	if section.IsEmpty(kind, stats) {
		return emptySection(kind)
	}

	rows := make([][]string, 0, stats.Len())
	for _, row := range projection.SummaryRows(stats) {
		rows = append(rows, []string{row.Feature, row.Count, row.Mean, row.Std, row.Min, row.Max})
	}
	return view.Section{
		Title:   kind.Title(),
		Columns: append([]string{"Feature"}, projection.SummaryColumns...),
		Rows:    rows,
	}
}

func chartSection(kind section.Kind, counts report.Counts, emptyMessage string) view.Chart {
	if section.IsEmpty(kind, counts) {
		return view.Chart{Title: kind.Title(), Empty: true, EmptyMessage: emptyMessage}
	}

	series := projection.Series(counts.Map)
	points := make([]view.ChartPoint, 0, len(series))
	for _, p := range series {
		points = append(points, view.ChartPoint{Label: p.Label, Value: p.Value})
	}
	return view.Chart{
		Title:  kind.Title(),
		Points: points,
		Width:  projection.RequiredWidth(len(points)),
	}
}

func emptySection(kind section.Kind) view.Section {
	return view.Section{
		Title:        kind.Title(),
		Empty:        true,
		EmptyMessage: kind.EmptyMessage(),
	}
}
