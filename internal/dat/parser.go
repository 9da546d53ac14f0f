package dat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	apperrors "ccxstat/internal/errors"
)

// Block header lines as emitted by the solver, normalized to single spaces.
// The solver appends set and time information ("for set EALL and time ...")
// which is not part of the match.
const (
	stressHeader = "stresses (elem, integ.pnt.,sxx,syy,szz,sxy,sxz,syz)"
	strainHeader = "strains (elem, integ.pnt.,exx,eyy,ezz,exy,exz,eyz)"
	peeqHeader   = "equivalent plastic strain"
)

// headerFieldCount is the number of leading fields that identify a block
// header once joined with single spaces.
const headerFieldCount = 3

type parseState int

const (
	stateSeekingHeader parseState = iota
	stateReadingRows
)

// Parser reads element variable blocks from solver .dat output.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser. A nil logger falls back to slog.Default.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse opens and parses the .dat file at path.
func (p *Parser) Parse(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewIOError(fmt.Sprintf("failed to open %s", path), err).
			WithContext("path", path)
	}
	defer f.Close()

	file, err := p.ParseReader(f)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			appErr.WithContext("path", path)
		}
		return nil, err
	}
	return file, nil
}

// ParseReader scans r line by line with a two-state machine: seek a block
// header, then read data rows until the next header-like line or EOF. Blank
// lines are skipped everywhere; the solver emits one directly after each
// header and between element groups, so they do not terminate a block.
func (p *Parser) ParseReader(r io.Reader) (*File, error) {
	file := &File{Blocks: make(map[BlockKind]*Block)}

	state := stateSeekingHeader
	var current *Block
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if !isElementID(fields[0]) {
			// Any non-numeric line is header-like and ends the open block.
			state = stateSeekingHeader
			current = nil

			kind, ok := headerKind(fields)
			if !ok {
				p.logger.Debug("skipping unrecognized block",
					slog.Int("line", lineNo),
					slog.String("header", strings.Join(fields, " ")))
				continue
			}
			if _, seen := file.Blocks[kind]; seen {
				p.logger.Debug("ignoring repeated block",
					slog.String("block", kind.String()),
					slog.Int("line", lineNo))
				continue
			}

			current = &Block{Kind: kind, HeaderLine: lineNo}
			file.Blocks[kind] = current
			state = stateReadingRows
			continue
		}

		if state != stateReadingRows {
			continue
		}

		rec, err := parseRow(fields, current.Kind.rowWidth())
		if err != nil {
			current.Skipped++
			p.logger.Warn("skipping malformed data row",
				slog.String("block", current.Kind.String()),
				slog.Int("line", lineNo),
				slog.String("error", err.Error()))
			continue
		}
		current.Records = append(current.Records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.NewIOError("failed to read input", err)
	}

	if len(file.Blocks) == 0 {
		return nil, apperrors.NewFormatError("no recognizable element variable blocks found")
	}

	return file, nil
}

// headerKind matches a header line against the known block headers using its
// first three fields joined with single spaces, tolerating whitespace
// variation within the line.
func headerKind(fields []string) (BlockKind, bool) {
	if len(fields) < headerFieldCount {
		return 0, false
	}
	switch strings.Join(fields[:headerFieldCount], " ") {
	case stressHeader:
		return BlockStress, true
	case strainHeader:
		return BlockStrain, true
	case peeqHeader:
		return BlockPlasticStrain, true
	default:
		return 0, false
	}
}

// isElementID reports whether s looks like the element id that starts every
// data row.
func isElementID(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// parseRow parses one data row of the expected width.
func parseRow(fields []string, width int) (Record, error) {
	if len(fields) != width {
		return Record{}, fmt.Errorf("expected %d fields, got %d", width, len(fields))
	}

	elem, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("invalid element id %q: %w", fields[0], err)
	}
	intPt, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("invalid integration point id %q: %w", fields[1], err)
	}

	values := make([]float64, 0, width-2)
	for _, field := range fields[2:] {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Record{}, fmt.Errorf("invalid value %q: %w", field, err)
		}
		values = append(values, v)
	}

	return Record{Element: elem, IntegrationPoint: intPt, Values: values}, nil
}
