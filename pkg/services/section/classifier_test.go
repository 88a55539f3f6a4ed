package section

import (
	"encoding/json"
	"testing"

	"github.com/de-tools/data-lens/pkg/models/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counts(t *testing.T, payload string) report.Counts {
	t.Helper()
	var c report.Counts
	require.NoError(t, json.Unmarshal([]byte(payload), &c))
	return c
}

func TestIsEmpty_CountSections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{"no entries", `{}`, true},
		{"all numeric zeros", `{"a": 0, "b": 0}`, true},
		{"zero as numeric string", `{"a": "0", "b": "0.0"}`, true},
		{"zero as bool", `{"a": false}`, true},
		{"mixed zero representations", `{"a": 0, "b": "0", "c": false}`, true},
		{"one non-zero number", `{"a": 0, "b": 2}`, false},
		{"non-zero numeric string", `{"a": "3"}`, false},
		{"bool true counts as one", `{"a": true}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := counts(t, tt.payload)
			assert.Equal(t, tt.want, IsEmpty(MissingValues, c))
			assert.Equal(t, tt.want, IsEmpty(Outliers, c))
		})
	}
}

func TestIsEmpty_NonCountSectionsIgnoreZeroValues(t *testing.T) {
	var m report.Map[report.Scalar]
	require.NoError(t, json.Unmarshal([]byte(`{"4": 0}`), &m))

	// a zero value in a violations table is still a violation to display
	assert.False(t, IsEmpty(InvalidPhones, m))

	var empty report.Map[report.Scalar]
	assert.True(t, IsEmpty(InvalidEmails, empty))
}

func TestIsEmpty_OtherSectionsByLength(t *testing.T) {
	var groups report.Map[report.DuplicateGroup]
	assert.True(t, IsEmpty(DuplicateRows, groups))

	require.NoError(t, json.Unmarshal([]byte(`{"g":{"rows":[1,2],"example":{}}}`), &groups))
	assert.False(t, IsEmpty(DuplicateRows, groups))

	var stats report.Map[report.FeatureStats]
	assert.True(t, IsEmpty(SummaryStatistics, stats))
}

func TestIsEmpty_NilSection(t *testing.T) {
	assert.True(t, IsEmpty(MissingValues, nil))
	assert.True(t, IsEmpty(CategoryInconsistencies, nil))
}

func TestKindTitlesAndMessages(t *testing.T) {
	assert.Equal(t, "Missing Values", MissingValues.Title())
	assert.Equal(t, "No outliers detected.", Outliers.EmptyMessage())
	assert.Equal(t, "No summary statistics available.", SummaryStatistics.EmptyMessage())
}
