package quality

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_UploadsMultipartAndDecodesReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/quality/report", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "data.csv", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "a,b\n1,2\n", string(content))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
          "missing_values": {"b": 2, "a": 0},
          "cleaned_file_download": "/files/cleaned.csv"
        }`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	doc, err := client.Analyze(context.Background(), "tok-1", "data.csv", strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a"}, doc.MissingValues.Keys())
	assert.Equal(t, "/files/cleaned.csv", doc.CleanedFileDownload)
}

func TestAnalyze_ServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Analyze(context.Background(), "bad", "data.csv", strings.NewReader("a\n1\n"))
	assert.ErrorContains(t, err, "status 401")
}

func TestAnalyze_MalformedReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"missing_values": "not an object"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Analyze(context.Background(), "tok", "data.csv", strings.NewReader("a\n1\n"))
	assert.ErrorContains(t, err, "missing_values")
}
