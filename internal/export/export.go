// Package export writes user and book lists to files for offline use.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatParquet = "parquet"
)

var Formats = []string{FormatCSV, FormatJSON, FormatYAML, FormatParquet}

// Sheet is the flat column layout of an entity, used for csv
type Sheet[T any] struct {
	Headers []string
	Cells   func(T) []string
}

var Users = Sheet[models.User]{
	Headers: []string{"id", "userId", "name", "email", "role"},
	Cells: func(u models.User) []string {
		return []string{u.ID, u.UserID, u.Name, u.Email, u.Role}
	},
}

var Books = Sheet[models.Book]{
	Headers: []string{"id", "title", "author", "isbn", "status", "department"},
	Cells: func(b models.Book) []string {
		return []string{b.ID, b.Title, b.Author, b.ISBN, b.Status, b.Department}
	},
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case FormatCSV, FormatJSON, FormatParquet:
		return ext, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported file format: .%s (supported: %s)", ext, strings.Join(Formats, ", "))
	}
}

// Write encodes records to w in the given format
func Write[T any](w io.Writer, format string, records []T, sheet Sheet[T]) error {
	if records == nil {
		records = []T{}
	}

	switch format {
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(sheet.Headers); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
		for _, r := range records {
			if err := cw.Write(sheet.Cells(r)); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatParquet:
		if err := parquet.Write(w, records); err != nil {
			return fmt.Errorf("failed to write parquet: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// WriteFile writes records to path, choosing the format by extension
func WriteFile[T any](path string, records []T, sheet Sheet[T]) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := Write(f, format, records, sheet); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	slog.Info("Export written", "path", path, "format", format, "records", len(records))
	return nil
}
