package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/segmenta-org/segmenta/schema"
)

// ============================================================================
// LOADER — CSV and XLSX into Dataset
// ============================================================================
// Both paths converge on the same header/row validation: column names are
// exact-match keys, every clustering and country cell must parse as binary.
// Unknown extra columns are ignored; the pipeline only ever reads the
// declared ones.
// ============================================================================

// Load reads a tabular file into a Dataset. The format is chosen by
// extension: ".csv" or ".xlsx" (first sheet).
func Load(path string, cfg schema.Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("dataset: open %s: %w", path, err)
		}
		defer f.Close()
		return LoadCSV(f, cfg)
	case ".xlsx":
		return loadXLSX(path, cfg)
	default:
		return nil, fmt.Errorf("dataset: unsupported input format %q (want .csv or .xlsx)", ext)
	}
}

// LoadCSV reads CSV data into a Dataset.
func LoadCSV(r io.Reader, cfg schema.Config) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read CSV header: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read CSV row: %w", err)
		}
		rows = append(rows, row)
	}

	return fromRows(header, rows, cfg)
}

// loadXLSX reads the first sheet of a workbook into a Dataset.
func loadXLSX(path string, cfg schema.Config) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("dataset: %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("dataset: read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset: sheet %q is empty", sheets[0])
	}

	return fromRows(rows[0], rows[1:], cfg)
}

// fromRows validates the header, coerces every declared cell to the
// binary domain, and builds the Dataset in source row order.
func fromRows(header []string, rows [][]string, cfg schema.Config) (*Dataset, error) {
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	index, err := schema.ValidateHeader(header, cfg)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for n, row := range rows {
		rec := Record{
			Attributes: make([]uint8, len(cfg.ClusteringColumns)),
			Countries:  make([]uint8, len(cfg.CountryColumns)),
		}
		if cfg.AllowMissing {
			rec.Missing = make([]bool, len(cfg.ClusteringColumns))
		}

		for j, col := range cfg.ClusteringColumns {
			raw := cellAt(row, index[col])
			v, missing, err := schema.ParseBinary(col, n+1, raw, cfg.AllowMissing)
			if err != nil {
				return nil, err
			}
			rec.Attributes[j] = v
			if missing {
				rec.Missing[j] = missing
			}
		}

		// Country indicators get the same strict binary rule but never
		// a missing marker — they only feed per-cluster counts.
		for j, col := range cfg.CountryColumns {
			raw := cellAt(row, index[col])
			v, missing, err := schema.ParseBinary(col, n+1, raw, cfg.AllowMissing)
			if err != nil {
				return nil, err
			}
			if !missing {
				rec.Countries[j] = v
			}
		}

		records = append(records, rec)
	}

	return New(cfg, records)
}

// cellAt tolerates ragged rows: XLSX readers drop trailing empty cells.
func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
