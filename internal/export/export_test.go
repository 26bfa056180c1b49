package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var books = []models.Book{
	{ID: "b1", Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", Status: models.StatusAvailable, Department: "Fiction"},
	{ID: "b2", Title: "Emma, a Novel", Author: "Jane Austen", Status: models.StatusBorrowed},
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
		wantErr  bool
	}{
		{"users.csv", FormatCSV, false},
		{"books.JSON", FormatJSON, false},
		{"out/books.yml", FormatYAML, false},
		{"books.yaml", FormatYAML, false},
		{"books.parquet", FormatParquet, false},
		{"books.xlsx", "", true},
		{"books", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorContains(t, err, "supported: csv, json, yaml, parquet")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, books, Books))

	expected := "id,title,author,isbn,status,department\n" +
		"b1,Dune,Frank Herbert,9780441013593,available,Fiction\n" +
		"b2,\"Emma, a Novel\",Jane Austen,,borrowed,\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	users := []models.User{{ID: "1", UserID: "u1", Name: "Ann", Email: "ann@x.com", Role: "admin"}}
	require.NoError(t, Write(&buf, FormatJSON, users, Users))
	assert.JSONEq(t, `[{"id":"1","userId":"u1","name":"Ann","email":"ann@x.com","role":"admin"}]`, buf.String())

	buf.Reset()
	require.NoError(t, Write[models.User](&buf, FormatJSON, nil, Users))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, books[:1], Books))
	assert.Contains(t, buf.String(), "title: Dune")
	assert.Contains(t, buf.String(), "department: Fiction")
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, "xml", books, Books))
}

func TestParquetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.parquet")
	require.NoError(t, WriteFile(path, books, Books))

	got, err := parquet.ReadFile[models.Book](path)
	require.NoError(t, err)
	assert.Equal(t, books, got)
}
