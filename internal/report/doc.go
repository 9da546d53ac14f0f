// Package report assembles extraction results into a report and writes it
// in one of three formats: the canonical fixed-width text layout, CSV, or a
// JSON summary document.
package report
