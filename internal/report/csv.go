package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// encodeCSV writes the per-point table and summary rows as CSV. The summary
// rows reuse the value columns with a statistic label in the first column.
func encodeCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	tabular := r.tabular()

	header := []string{"element", "integration_point"}
	for _, res := range tabular {
		header = append(header, res.Quantity.ColumnLabel())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, row := range r.Rows {
		record := []string{
			strconv.Itoa(row.Element),
			strconv.Itoa(row.IntegrationPoint),
		}
		for _, res := range tabular {
			record = append(record, FormatValue(res.Values[i], r.Precision))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	summaryRows := []struct {
		label string
		pick  func(res Result) float64
	}{
		{label: "minimum", pick: func(res Result) float64 { return res.Summary.Min }},
		{label: "maximum", pick: func(res Result) float64 { return res.Summary.Max }},
		{label: "mean", pick: func(res Result) float64 { return res.Summary.Mean }},
	}
	for _, sr := range summaryRows {
		record := []string{sr.label, ""}
		for _, res := range tabular {
			record = append(record, FormatValue(sr.pick(res), r.Precision))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
