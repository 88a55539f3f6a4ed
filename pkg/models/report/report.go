package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// RowIndex identifies a row of the analyzed dataset. Several sections key
// their entries by row index encoded as a string; those keys are parsed once
// when projected instead of being re-derived throughout.
type RowIndex int

// ParseRowIndex parses a string row key. The second result is false when the
// key is not a valid integer index.
func ParseRowIndex(key string) (RowIndex, bool) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return -1, false
	}
	return RowIndex(n), true
}

// Counts is a numeric-count section: column name -> count. Values stay as
// Scalar because the service is not strict about numeric representation.
type Counts struct {
	Map[Scalar]
}

// AllZero reports whether every value coerces numerically to zero. An empty
// mapping is trivially all-zero.
func (c Counts) AllZero() bool {
	for _, key := range c.Keys() {
		v, _ := c.Get(key)
		if v.Float64() != 0 {
			return false
		}
	}
	return true
}

// DuplicateGroup describes one group of duplicated rows: the indexes of the
// rows involved and one example row.
type DuplicateGroup struct {
	Rows    []RowIndex  `json:"rows"`
	Example Map[Scalar] `json:"example"`
}

func (g *DuplicateGroup) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Rows    json.RawMessage `json:"rows"`
		Example json.RawMessage `json:"example"`
	}
	// Damaged entries degrade to empty rendering; one bad group must never
	// take the whole section down.
	if err := json.Unmarshal(data, &shadow); err != nil {
		g.Rows = nil
		g.Example = Map[Scalar]{}
		return nil
	}
	if len(shadow.Rows) > 0 {
		_ = json.Unmarshal(shadow.Rows, &g.Rows)
	}
	if len(shadow.Example) > 0 {
		_ = g.Example.UnmarshalJSON(shadow.Example)
	}
	return nil
}

// FormatViolations groups format-check failures by kind. Each inner mapping
// is keyed by row index (as received) and holds the offending value.
type FormatViolations struct {
	Email Map[Scalar] `json:"email"`
	Date  Map[Scalar] `json:"date"`
	Phone Map[Scalar] `json:"phone"`
}

// CategoryEntry is one flagged value within a categorical column.
type CategoryEntry struct {
	Original   Scalar `json:"original"`
	Suggestion string `json:"suggestion,omitempty"`
	Confidence Scalar `json:"confidence,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func (e *CategoryEntry) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Original   json.RawMessage `json:"original"`
		Suggestion json.RawMessage `json:"suggestion"`
		Confidence json.RawMessage `json:"confidence"`
		Reason     json.RawMessage `json:"reason"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		*e = CategoryEntry{}
		return nil
	}
	if len(shadow.Original) > 0 {
		_ = e.Original.UnmarshalJSON(shadow.Original)
	}
	if len(shadow.Suggestion) > 0 {
		_ = json.Unmarshal(shadow.Suggestion, &e.Suggestion)
	}
	if len(shadow.Confidence) > 0 {
		_ = e.Confidence.UnmarshalJSON(shadow.Confidence)
	}
	if len(shadow.Reason) > 0 {
		_ = json.Unmarshal(shadow.Reason, &e.Reason)
	}
	return nil
}

// ColumnReport holds the category-inconsistency findings for one column.
// A column can legitimately appear with zero flagged rows, which asserts
// that its categories were checked and found consistent.
type ColumnReport struct {
	ValidCategories []string           `json:"valid_categories"`
	Rows            Map[CategoryEntry] `json:"rows"`
}

// FeatureStats carries the summary statistics of one numeric feature. Any of
// the stats may be absent.
type FeatureStats struct {
	Count *Scalar `json:"count,omitempty"`
	Mean  *Scalar `json:"mean,omitempty"`
	Std   *Scalar `json:"std,omitempty"`
	Min   *Scalar `json:"min,omitempty"`
	Max   *Scalar `json:"max,omitempty"`
}

// Document is the quality report produced by the analysis service for one
// upload. It is read-only once decoded; a section that is absent from the
// payload is indistinguishable from one that is present but empty.
type Document struct {
	MissingValues           Counts              `json:"missing_values"`
	OutliersDetected        Counts              `json:"outliers_detected"`
	DuplicateRows           Map[DuplicateGroup] `json:"duplicate_rows"`
	InvalidFormat           FormatViolations    `json:"invalid_format"`
	CategoryInconsistencies Map[ColumnReport]   `json:"category_inconsistencies"`
	SummaryStatistics       Map[FeatureStats]   `json:"summary_statistics"`
	CleanedFileDownload     string              `json:"cleaned_file_download"`
}

// ShapeError reports a section whose payload does not have the expected
// structure. The section name makes the failure actionable without dumping
// the whole document.
type ShapeError struct {
	Section string
	Err     error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("report section %q: %v", e.Section, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }

func (d *Document) UnmarshalJSON(data []byte) error {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("report document: %w", err)
	}

	for name, dst := range map[string]any{
		"missing_values":           &d.MissingValues,
		"outliers_detected":        &d.OutliersDetected,
		"duplicate_rows":           &d.DuplicateRows,
		"invalid_format":           &d.InvalidFormat,
		"category_inconsistencies": &d.CategoryInconsistencies,
		"summary_statistics":       &d.SummaryStatistics,
		"cleaned_file_download":    &d.CleanedFileDownload,
	} {
		raw, ok := sections[name]
		if !ok || string(raw) == "null" {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return &ShapeError{Section: name, Err: err}
		}
	}
	return nil
}

// Decode reads and validates a report document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
