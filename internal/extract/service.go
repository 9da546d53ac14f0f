package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"ccxstat/internal/config"
	"ccxstat/internal/dat"
	apperrors "ccxstat/internal/errors"
	"ccxstat/internal/infrastructure"
	"ccxstat/internal/mechanics"
	"ccxstat/internal/report"
	"ccxstat/internal/stats"
)

// Request describes one extraction run.
type Request struct {
	InputPath  string         `validate:"required"`
	Quantities []dat.Quantity `validate:"min=1"`
}

// Service runs the extraction pipeline: parse the .dat file, derive the
// requested scalar quantities, reduce each to its summary statistic, and
// assemble a report.
type Service struct {
	logger    *slog.Logger
	parser    *dat.Parser
	writer    *report.Writer
	validate  *validator.Validate
	precision int
}

// NewService creates an extraction service with the given report precision.
func NewService(logger *slog.Logger, precision int) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if precision <= 0 {
		precision = 4
	}
	return &Service{
		logger:    logger,
		parser:    dat.NewParser(logger),
		writer:    report.NewWriter(logger),
		validate:  validator.New(),
		precision: precision,
	}
}

// Extract parses the input file and summarizes the requested quantities.
// A requested quantity with no valid rows in the input yields a
// MISSING_DATA error and no report.
func (s *Service) Extract(ctx context.Context, req Request) (*report.Report, error) {
	logger := infrastructure.LoggerWithContext(ctx)

	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid extract request: %v", err))
	}
	quantities, err := canonicalOrder(req.Quantities)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "parsing element variable output",
		slog.String("input", req.InputPath),
		slog.String("quantities", joinQuantities(quantities)))

	file, err := s.parser.Parse(req.InputPath)
	if err != nil {
		return nil, err
	}

	rep := &report.Report{
		Source:    req.InputPath,
		Precision: s.precision,
	}

	for _, q := range quantities {
		block, ok := file.Block(q.BlockKind())
		if !ok || len(block.Records) == 0 {
			return nil, apperrors.NewMissingDataError(q.DisplayName()).
				WithContext("input", req.InputPath)
		}

		values := deriveValues(q, block.Records)
		summary, err := stats.Summarize(values)
		if err != nil {
			return nil, err
		}

		if len(rep.Rows) == 0 {
			rep.Rows = rowsFromRecords(block.Records)
		} else if len(values) != len(rep.Rows) {
			logger.WarnContext(ctx, "integration point count differs between blocks",
				slog.String("quantity", q.DisplayName()),
				slog.Int("rows", len(rep.Rows)),
				slog.Int("values", len(values)))
		}

		rep.Results = append(rep.Results, report.Result{
			Quantity: q,
			Values:   values,
			Summary:  summary,
		})

		logger.InfoContext(ctx, "quantity summarized",
			slog.String("quantity", q.DisplayName()),
			slog.Int("count", summary.Count),
			slog.Int("skipped_rows", block.Skipped),
			slog.Float64("min", summary.Min),
			slog.Float64("max", summary.Max),
			slog.Float64("mean", summary.Mean))
	}

	return rep, nil
}

// Write writes the report to outputPath in the given format.
func (s *Service) Write(rep *report.Report, outputPath string, format string) error {
	return s.writer.Write(rep, outputPath, format)
}

// DefaultOutputPath derives the report path from the input path, replacing
// the .dat extension with the report suffix.
func DefaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, config.InputExtension) + config.OutputSuffix
}

// deriveValues computes the scalar series for one quantity from its block's
// records.
func deriveValues(q dat.Quantity, records []dat.Record) []float64 {
	values := make([]float64, 0, len(records))
	for _, rec := range records {
		switch q {
		case dat.QuantityMises:
			values = append(values, mechanics.Mises(rec.Values))
		case dat.QuantityEEQ:
			values = append(values, mechanics.EffectiveStrain(rec.Values))
		default:
			values = append(values, rec.Values[0])
		}
	}
	return values
}

// canonicalOrder deduplicates the requested quantities and fixes their order
// to stress, strain, plastic strain.
func canonicalOrder(requested []dat.Quantity) ([]dat.Quantity, error) {
	want := make(map[dat.Quantity]bool, len(requested))
	for _, q := range requested {
		switch q {
		case dat.QuantityMises, dat.QuantityEEQ, dat.QuantityPEEQ:
			want[q] = true
		default:
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown quantity %q", q))
		}
	}

	ordered := make([]dat.Quantity, 0, len(want))
	for _, q := range dat.AllQuantities {
		if want[q] {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}

func rowsFromRecords(records []dat.Record) []report.Row {
	rows := make([]report.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, report.Row{
			Element:          rec.Element,
			IntegrationPoint: rec.IntegrationPoint,
		})
	}
	return rows
}

func joinQuantities(quantities []dat.Quantity) string {
	names := make([]string, 0, len(quantities))
	for _, q := range quantities {
		names = append(names, string(q))
	}
	return strings.Join(names, ",")
}
