package report

import (
	"io"

	json "github.com/goccy/go-json"
)

type jsonSummary struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

type jsonQuantity struct {
	Name    string      `json:"name"`
	Label   string      `json:"label"`
	Summary jsonSummary `json:"summary"`
}

type jsonReport struct {
	Source     string         `json:"source"`
	Quantities []jsonQuantity `json:"quantities"`
}

// encodeJSON writes the summaries as an indented JSON document. Per-point
// values are omitted; the JSON format carries the reduction only.
func encodeJSON(w io.Writer, r *Report) error {
	doc := jsonReport{
		Source:     r.Source,
		Quantities: make([]jsonQuantity, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		doc.Quantities = append(doc.Quantities, jsonQuantity{
			Name:  res.Quantity.DisplayName(),
			Label: res.Quantity.ColumnLabel(),
			Summary: jsonSummary{
				Min:   res.Summary.Min,
				Max:   res.Summary.Max,
				Mean:  res.Summary.Mean,
				Count: res.Summary.Count,
			},
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
