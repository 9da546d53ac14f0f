// Package dat parses element variable output written by the CalculiX solver
// (or the FreeCAD FEM module) to .dat files. The file is line-oriented:
// each quantity block starts with a header line naming the variable and the
// column layout, followed by one data row per element integration point.
//
// The parser is a two-state machine (seeking header / reading rows) that
// tolerates whitespace variation, skips blank lines, logs and excludes
// malformed data rows, and ignores blocks it does not recognize.
package dat
