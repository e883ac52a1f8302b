package schema

import "fmt"

// ============================================================================
// VALIDATION — Header and cell checks for binary columns
// ============================================================================
// Column names are exact-match, case-sensitive keys. Cell values outside
// {"0","1"} are rejected here rather than silently coerced; a default
// library's lenient parsing is exactly what this layer exists to prevent.
// ============================================================================

// MissingColumnError reports a declared column absent from the file header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("schema: required column %q not found in header", e.Column)
}

// ValueError reports a cell whose value is outside the binary domain.
type ValueError struct {
	Column string
	Row    int // 1-based data row, excluding the header
	Value  string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("schema: column %q row %d: value %q is not binary (want 0 or 1)", e.Column, e.Row, e.Value)
}

// ValidateHeader checks that every declared column appears in the header
// and returns a column→index mapping for the loader.
func ValidateHeader(header []string, cfg Config) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	for _, col := range cfg.AllColumns() {
		if _, ok := index[col]; !ok {
			return nil, &MissingColumnError{Column: col}
		}
	}
	return index, nil
}

// ParseBinary coerces a raw cell into the two-level categorical domain.
// An empty cell is missing when allowMissing is set and a ValueError
// otherwise. Anything other than "0" or "1" is a ValueError.
func ParseBinary(column string, row int, raw string, allowMissing bool) (value uint8, missing bool, err error) {
	switch raw {
	case "0":
		return 0, false, nil
	case "1":
		return 1, false, nil
	case "":
		if allowMissing {
			return 0, true, nil
		}
		return 0, false, &ValueError{Column: column, Row: row, Value: raw}
	default:
		return 0, false, &ValueError{Column: column, Row: row, Value: raw}
	}
}
