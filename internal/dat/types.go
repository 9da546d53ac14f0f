package dat

import (
	"fmt"
	"strings"
)

// Quantity identifies one physical quantity that can be summarized from a
// .dat file. Mises and EEQ are derived from the stress and strain tensor
// blocks; PEEQ is reported by the solver directly.
type Quantity string

const (
	QuantityMises Quantity = "mises"
	QuantityEEQ   Quantity = "eeq"
	QuantityPEEQ  Quantity = "peeq"
)

// AllQuantities lists the supported quantities in canonical report order:
// stress first, then strain, then plastic strain.
var AllQuantities = []Quantity{QuantityMises, QuantityEEQ, QuantityPEEQ}

// ParseQuantity converts a user-supplied name into a Quantity.
func ParseQuantity(name string) (Quantity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mises", "s", "stress":
		return QuantityMises, nil
	case "eeq", "e", "strain":
		return QuantityEEQ, nil
	case "peeq":
		return QuantityPEEQ, nil
	default:
		return "", fmt.Errorf("unknown quantity %q (supported: mises, eeq, peeq)", name)
	}
}

// DisplayName returns the human-readable name used in reports and errors.
func (q Quantity) DisplayName() string {
	switch q {
	case QuantityMises:
		return "Mises equivalent stress"
	case QuantityEEQ:
		return "Total effective strain"
	case QuantityPEEQ:
		return "Equivalent plastic strain"
	default:
		return string(q)
	}
}

// ColumnLabel returns the short label used for table columns.
func (q Quantity) ColumnLabel() string {
	switch q {
	case QuantityMises:
		return "MISES"
	case QuantityEEQ:
		return "EEQ"
	case QuantityPEEQ:
		return "PEEQ"
	default:
		return strings.ToUpper(string(q))
	}
}

// BlockKind identifies the source block of a quantity within the .dat file.
func (q Quantity) BlockKind() BlockKind {
	switch q {
	case QuantityMises:
		return BlockStress
	case QuantityEEQ:
		return BlockStrain
	default:
		return BlockPlasticStrain
	}
}

// BlockKind identifies one element variable block type in a .dat file.
type BlockKind int

const (
	BlockStress BlockKind = iota
	BlockStrain
	BlockPlasticStrain
)

// String returns the block name as it is referred to in logs and errors.
func (k BlockKind) String() string {
	switch k {
	case BlockStress:
		return "stresses"
	case BlockStrain:
		return "strains"
	case BlockPlasticStrain:
		return "equivalent plastic strain"
	default:
		return "unknown"
	}
}

// rowWidth returns the expected whitespace-separated field count of a data
// row in a block of this kind: element id, integration point id, then six
// tensor components for stress/strain or a single value for PEEQ.
func (k BlockKind) rowWidth() int {
	if k == BlockPlasticStrain {
		return 3
	}
	return 8
}

// Record is one parsed data row: element id, integration point id, and the
// row's scalar values (six tensor components or a single PEEQ value).
type Record struct {
	Element          int
	IntegrationPoint int
	Values           []float64
}

// Block holds the records parsed from one element variable block.
type Block struct {
	Kind       BlockKind
	HeaderLine int
	Records    []Record
	// Skipped counts data rows excluded because they failed numeric parsing.
	Skipped int
}

// File is the parsed content of one .dat file, keyed by block kind. Only the
// first block of each kind is retained; repeated blocks from later analysis
// steps are ignored.
type File struct {
	Blocks map[BlockKind]*Block
}

// Block returns the parsed block of the given kind, if present.
func (f *File) Block(kind BlockKind) (*Block, bool) {
	b, ok := f.Blocks[kind]
	return b, ok
}
