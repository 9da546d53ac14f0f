package report

import (
	"fmt"
	"io"
)

// summary row labels, matching the established report layout
const (
	labelMinimum = "Minimum"
	labelMaximum = "Maximum"
	labelMean    = "Mean (arith.)"
)

// encodeText writes the canonical plain-text report: a fixed-width table of
// per-integration-point values, the minimum/maximum/mean rows, and one
// summary line per quantity.
func encodeText(w io.Writer, r *Report) error {
	tabular := r.tabular()

	if len(tabular) > 0 {
		if err := writeTable(w, r, tabular); err != nil {
			return err
		}
	}

	for _, res := range r.Results {
		_, err := fmt.Fprintf(w, "%s: min=%s max=%s mean=%s\n",
			res.Quantity.DisplayName(),
			FormatValue(res.Summary.Min, r.Precision),
			FormatValue(res.Summary.Max, r.Precision),
			FormatValue(res.Summary.Mean, r.Precision))
		if err != nil {
			return err
		}
	}

	return nil
}

func writeTable(w io.Writer, r *Report, tabular []Result) error {
	header := fmt.Sprintf("%*s%*s", elemColWidth, "Elem.", intPtColWidth, "Int.Pt.")
	for _, res := range tabular {
		header += formatLabelCell(res.Quantity.ColumnLabel(), r.Precision)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for i, row := range r.Rows {
		line := fmt.Sprintf("%*d%*d", elemColWidth, row.Element, intPtColWidth, row.IntegrationPoint)
		for _, res := range tabular {
			line += formatCell(res.Values[i], r.Precision)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	summaryRows := []struct {
		label string
		pick  func(res Result) float64
	}{
		{label: labelMinimum, pick: func(res Result) float64 { return res.Summary.Min }},
		{label: labelMaximum, pick: func(res Result) float64 { return res.Summary.Max }},
		{label: labelMean, pick: func(res Result) float64 { return res.Summary.Mean }},
	}
	for _, sr := range summaryRows {
		line := fmt.Sprintf("%-*s", elemColWidth+intPtColWidth, "     "+sr.label)
		for _, res := range tabular {
			line += formatCell(sr.pick(res), r.Precision)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}
