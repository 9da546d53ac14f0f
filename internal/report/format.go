package report

import "fmt"

// Column widths of the fixed-width text table. Value cells widen with the
// configured precision so columns stay aligned.
const (
	elemColWidth  = 12
	intPtColWidth = 9
)

// FormatValue renders v in scientific notation with the given precision,
// e.g. 2.0000e+01 at precision 4.
func FormatValue(v float64, precision int) string {
	return fmt.Sprintf("%.*e", precision, v)
}

// formatCell right-aligns a value in a table column.
func formatCell(v float64, precision int) string {
	return fmt.Sprintf("%*.*e", cellWidth(precision), precision, v)
}

// formatLabelCell right-aligns a column label over its value column.
func formatLabelCell(label string, precision int) string {
	return fmt.Sprintf("%*s", cellWidth(precision), label)
}

// cellWidth leaves room for a signed scientific-notation value plus
// separating spaces; at the default precision of 4 this is the established
// 16-character column.
func cellWidth(precision int) int {
	return precision + 12
}
