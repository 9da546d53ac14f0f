// Package extract orchestrates the extraction pipeline: parse element
// variable output from a .dat file, derive the requested scalar quantities
// per integration point, reduce each to min/max/mean, and write the report.
package extract
