package projection

import (
	"encoding/json"
	"testing"

	"github.com/de-tools/data-lens/pkg/models/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarMap(t *testing.T, payload string) report.Map[report.Scalar] {
	t.Helper()
	var m report.Map[report.Scalar]
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	return m
}

func TestKeyValues_PreservesOrderAndRendering(t *testing.T) {
	m := scalarMap(t, `{"b": 2, "a": "text", "c": {"n": 1}, "d": [1, "x"]}`)

	rows := KeyValues(m)
	require.Len(t, rows, 4)
	assert.Equal(t, KeyValueRow{Key: "b", Value: "2"}, rows[0])
	assert.Equal(t, KeyValueRow{Key: "a", Value: "text"}, rows[1])
	assert.Equal(t, KeyValueRow{Key: "c", Value: `{"n":1}`}, rows[2])
	assert.Equal(t, KeyValueRow{Key: "d", Value: `[1,"x"]`}, rows[3])
}

func TestKeyValues_Empty(t *testing.T) {
	var m report.Map[report.Scalar]
	assert.Empty(t, KeyValues(m))
}

func TestSummaryRows_MissingStatRendersSentinel(t *testing.T) {
	var stats report.Map[report.FeatureStats]
	payload := `{
      "age": {"count": 100, "mean": 28.5, "min": 1, "max": 90},
      "salary": {"count": 100, "mean": 50000.5, "std": 1200.75, "min": 100, "max": 99999}
    }`
	require.NoError(t, json.Unmarshal([]byte(payload), &stats))

	rows := SummaryRows(stats)
	require.Len(t, rows, 2)

	assert.Equal(t, "age", rows[0].Feature)
	assert.Equal(t, "-", rows[0].Std)
	assert.Equal(t, "100", rows[0].Count)
	assert.Equal(t, "28.5", rows[0].Mean)
	assert.Equal(t, "1", rows[0].Min)
	assert.Equal(t, "90", rows[0].Max)

	assert.Equal(t, "1200.75", rows[1].Std)
}

func TestSummaryRows_NullStatRendersSentinel(t *testing.T) {
	var stats report.Map[report.FeatureStats]
	require.NoError(t, json.Unmarshal([]byte(`{"x": {"count": null, "mean": 2}}`), &stats))

	rows := SummaryRows(stats)
	require.Len(t, rows, 1)
	assert.Equal(t, "-", rows[0].Count)
	assert.Equal(t, "2", rows[0].Mean)
	assert.Equal(t, "-", rows[0].Min)
}

func TestDuplicateRows_JoinContracts(t *testing.T) {
	var groups report.Map[report.DuplicateGroup]
	payload := `{"g1": {"rows": [2, 5, 9], "example": {"a": 1, "b": "x"}}}`
	require.NoError(t, json.Unmarshal([]byte(payload), &groups))

	rows := DuplicateRows(groups)
	require.Len(t, rows, 1)
	assert.Equal(t, "2, 5, 9", rows[0].RowIndexes)
	assert.Equal(t, "a=1,\nb=x", rows[0].Example)
}

func TestDuplicateRows_DamagedGroupRendersEmpty(t *testing.T) {
	var groups report.Map[report.DuplicateGroup]
	payload := `{"bad": 42, "good": {"rows": [1], "example": {"k": "v"}}}`
	require.NoError(t, json.Unmarshal([]byte(payload), &groups))

	rows := DuplicateRows(groups)
	require.Len(t, rows, 2)
	assert.Equal(t, DuplicateRow{RowIndexes: "", Example: ""}, rows[0])
	assert.Equal(t, DuplicateRow{RowIndexes: "1", Example: "k=v"}, rows[1])
}

func TestCategoryBlocks(t *testing.T) {
	var cols report.Map[report.ColumnReport]
	payload := `{
      "city": {
        "valid_categories": ["NYC", "LA"],
        "rows": {
          "3": {"original": "nyc", "suggestion": "NYC", "confidence": 0.9, "reason": "case mismatch"},
          "8": {"original": "l.a."}
        }
      },
      "state": {"valid_categories": ["CA"], "rows": {}}
    }`
	require.NoError(t, json.Unmarshal([]byte(payload), &cols))

	blocks := CategoryBlocks(cols)
	require.Len(t, blocks, 2)

	city := blocks[0]
	assert.Equal(t, "city", city.Column)
	assert.Equal(t, "NYC, LA", city.ValidText)
	require.Len(t, city.Rows, 2)
	assert.Equal(t, report.RowIndex(3), city.Rows[0].Index)
	assert.Equal(t, "nyc", city.Rows[0].Original)
	assert.Equal(t, "NYC", city.Rows[0].Suggestion)
	assert.Equal(t, "0.9", city.Rows[0].Confidence)
	assert.Equal(t, "case mismatch", city.Rows[0].Reason)

	// missing optional fields fall back to the sentinel
	assert.Equal(t, "-", city.Rows[1].Suggestion)
	assert.Equal(t, "-", city.Rows[1].Confidence)
	assert.Equal(t, "-", city.Rows[1].Reason)

	// a checked column with no findings still gets a block
	state := blocks[1]
	assert.Equal(t, "state", state.Column)
	assert.Empty(t, state.Rows)
}

func TestCategoryBlocks_UnparseableRowKeyKept(t *testing.T) {
	var cols report.Map[report.ColumnReport]
	payload := `{"c": {"valid_categories": [], "rows": {"row-7": {"original": "x"}}}}`
	require.NoError(t, json.Unmarshal([]byte(payload), &cols))

	blocks := CategoryBlocks(cols)
	require.Len(t, blocks, 1)
	require.Len(t, blocks[0].Rows, 1)
	assert.Equal(t, report.RowIndex(-1), blocks[0].Rows[0].Index)
	assert.Equal(t, "row-7", blocks[0].Rows[0].Key)
}
