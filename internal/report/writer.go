package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "ccxstat/internal/errors"
)

// Supported report formats.
const (
	FormatText = "txt"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Writer writes assembled reports to disk in the configured format.
type Writer struct {
	logger *slog.Logger
}

// NewWriter creates a report writer. A nil logger falls back to slog.Default.
func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// Write writes the report to path. A partially written file is removed when
// encoding fails, so the output path either holds a complete report or does
// not exist.
func (w *Writer) Write(r *Report, path string, format string) error {
	encode, err := encoderFor(format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.NewIOError("failed to create output directory", err).
			WithContext("path", dir)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewIOError("failed to create output file", err).
			WithContext("path", path)
	}

	if err := encode(file, r); err != nil {
		file.Close()
		os.Remove(path)
		return apperrors.NewIOError("failed to write report", err).
			WithContext("path", path)
	}
	if err := file.Close(); err != nil {
		return apperrors.NewIOError("failed to close output file", err).
			WithContext("path", path)
	}

	w.logger.Info("report written",
		slog.String("path", path),
		slog.String("format", format),
		slog.Int("quantities", len(r.Results)),
		slog.Int("rows", len(r.Rows)))

	return nil
}

func encoderFor(format string) (func(io.Writer, *Report) error, error) {
	switch format {
	case FormatText:
		return encodeText, nil
	case FormatCSV:
		return encodeCSV, nil
	case FormatJSON:
		return encodeJSON, nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported report format %q", format))
	}
}
