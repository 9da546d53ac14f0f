// Command ccxstat reads element variable output (stresses, strains,
// equivalent plastic strain at integration points) from a solver .dat file
// and writes a report with the minimum, maximum, and arithmetic mean of
// each requested quantity.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"ccxstat/internal/config"
	"ccxstat/internal/dat"
	"ccxstat/internal/extract"
	"ccxstat/internal/infrastructure"
)

func main() {
	input := flag.String("input", "", "path to the solver .dat file (required)")
	out := flag.String("out", "", "output report path (defaults to <input>_IntPtOutput.txt)")
	quantities := flag.String("quantities", "", "comma-separated quantities to summarize: mises,eeq,peeq (defaults to config)")
	format := flag.String("format", "", "report format: txt | csv | json (defaults to config)")
	flag.Parse()

	if *input == "" && flag.NArg() == 1 {
		*input = flag.Arg(0)
	}
	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: ccxstat -input <file.dat> [-out <path>] [-quantities mises,eeq,peeq] [-format txt|csv|json]")
		os.Exit(2)
	}
	if !strings.HasSuffix(*input, config.InputExtension) {
		fmt.Fprintf(os.Stderr, "input %q is not a %s file\n", *input, config.InputExtension)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *quantities == "" {
		*quantities = strings.Join(cfg.Extract.Quantities, ",")
	}
	if *format == "" {
		*format = cfg.Extract.Format
	}
	if *out == "" {
		*out = extract.DefaultOutputPath(*input)
	}

	requested, err := parseQuantities(*quantities)
	if err != nil {
		logger.Error("Invalid quantity selection", slog.String("error", err.Error()))
		os.Exit(2)
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger.InfoContext(ctx, "Starting extraction",
		slog.String("input", *input),
		slog.String("output", *out),
		slog.String("format", *format),
		slog.String("quantities", *quantities))

	svc := extract.NewService(logger, cfg.Extract.Precision)

	rep, err := svc.Extract(ctx, extract.Request{
		InputPath:  *input,
		Quantities: requested,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Extraction failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := svc.Write(rep, *out, *format); err != nil {
		logger.ErrorContext(ctx, "Failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Extraction complete", slog.String("output", *out))
	fmt.Printf("Results successfully written to file %q.\n", *out)
}

func parseQuantities(list string) ([]dat.Quantity, error) {
	parts := strings.Split(list, ",")
	quantities := make([]dat.Quantity, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		q, err := dat.ParseQuantity(part)
		if err != nil {
			return nil, err
		}
		quantities = append(quantities, q)
	}
	if len(quantities) == 0 {
		return nil, fmt.Errorf("no quantities requested")
	}
	return quantities, nil
}
