package report

import (
	"ccxstat/internal/dat"
	"ccxstat/internal/stats"
)

// Row identifies one integration point in the per-point table.
type Row struct {
	Element          int
	IntegrationPoint int
}

// Result holds the derived per-point values and the summary statistic for
// one quantity, in the order the quantity's records appeared in the input.
type Result struct {
	Quantity dat.Quantity
	Values   []float64
	Summary  stats.Summary
}

// Report is the assembled output of one extraction run: the integration
// point rows, one Result per requested quantity in canonical order, and the
// formatting precision.
type Report struct {
	Source    string
	Rows      []Row
	Results   []Result
	Precision int
}

// tabular returns the results whose values align one-to-one with Rows.
// Quantities whose block reported a different number of integration points
// are excluded from the table but still appear in the summary lines.
func (r *Report) tabular() []Result {
	out := make([]Result, 0, len(r.Results))
	for _, res := range r.Results {
		if len(res.Values) == len(r.Rows) {
			out = append(out, res)
		}
	}
	return out
}
