package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/segmenta-org/segmenta/dataset"
	"github.com/segmenta-org/segmenta/project"
	"github.com/segmenta-org/segmenta/summary"
)

// ============================================================================
// EXCEL EXPORT — One four-sheet workbook per run
// ============================================================================
// The workbook is built fully in memory and written via a same-directory
// temp file plus rename: a failed run leaves either the previous artifact
// or nothing, never a partial file.
// ============================================================================

// Sheet names of the exported workbook.
const (
	SheetSummary         = "Cluster_Summary"
	SheetInterpretations = "Cluster_Interpretations"
	SheetFullData        = "Full_Data_with_Clusters"
	SheetCoordinates     = "PCA_Coordinates"
)

// Input collects everything the workbook carries.
type Input struct {
	Dataset         *dataset.Dataset
	Summary         summary.Table
	Interpretations summary.Table
	Coordinates     []project.Coordinate
}

// Filename returns the date-stamped artifact name for a run at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("cluster_results_%s.xlsx", t.Format("20060102"))
}

// Workbook writes the four-sheet artifact into outDir and returns its path.
func Workbook(in Input, outDir string, now time.Time) (string, error) {
	if in.Dataset.Len() != len(in.Coordinates) {
		return "", fmt.Errorf("export: %d coordinates for %d records", len(in.Coordinates), in.Dataset.Len())
	}

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the first of ours.
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return "", fmt.Errorf("export: rename default sheet: %w", err)
	}
	if err := writeTable(f, SheetSummary, in.Summary); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(SheetInterpretations); err != nil {
		return "", fmt.Errorf("export: create sheet %s: %w", SheetInterpretations, err)
	}
	if err := writeTable(f, SheetInterpretations, in.Interpretations); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(SheetFullData); err != nil {
		return "", fmt.Errorf("export: create sheet %s: %w", SheetFullData, err)
	}
	if err := writeFullData(f, in.Dataset); err != nil {
		return "", err
	}

	if _, err := f.NewSheet(SheetCoordinates); err != nil {
		return "", fmt.Errorf("export: create sheet %s: %w", SheetCoordinates, err)
	}
	if err := writeCoordinates(f, in.Dataset, in.Coordinates); err != nil {
		return "", err
	}

	path := filepath.Join(outDir, Filename(now))
	if err := saveAtomic(f, path); err != nil {
		return "", err
	}
	return path, nil
}

// writeTable writes a shaped summary.Table starting at A1.
func writeTable(f *excelize.File, sheet string, t summary.Table) error {
	if err := setRow(f, sheet, 1, toCells(t.Headers)); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := setRow(f, sheet, i+2, toCells(row)); err != nil {
			return err
		}
	}
	return nil
}

// writeFullData writes every record exactly once, in source row order,
// with its assigned cluster label appended.
func writeFullData(f *excelize.File, ds *dataset.Dataset) error {
	cfg := ds.Schema
	header := make([]interface{}, 0, len(cfg.AllColumns())+1)
	for _, col := range cfg.AllColumns() {
		header = append(header, col)
	}
	header = append(header, "cluster")
	if err := setRow(f, SheetFullData, 1, header); err != nil {
		return err
	}

	for i := 0; i < ds.Len(); i++ {
		rec := ds.Record(i)
		row := make([]interface{}, 0, len(header))
		for j := range cfg.ClusteringColumns {
			if v, missing := ds.Attribute(i, j); missing {
				row = append(row, "")
			} else {
				row = append(row, int(v))
			}
		}
		for j := range cfg.CountryColumns {
			row = append(row, int(rec.Countries[j]))
		}
		row = append(row, rec.Cluster)
		if err := setRow(f, SheetFullData, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCoordinates(f *excelize.File, ds *dataset.Dataset, coords []project.Coordinate) error {
	if err := setRow(f, SheetCoordinates, 1, []interface{}{"record", "PC1", "PC2", "cluster"}); err != nil {
		return err
	}
	for i, c := range coords {
		row := []interface{}{i + 1, c.PC1, c.PC2, ds.Record(i).Cluster}
		if err := setRow(f, SheetCoordinates, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("export: cell name for row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("export: write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}

// saveAtomic serializes the workbook to a same-directory temp file and
// renames it into place.
func saveAtomic(f *excelize.File, dest string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("export: serialize workbook: %w", err)
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create output dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".cluster_results-*.tmp")
	if err != nil {
		return fmt.Errorf("export: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("export: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("export: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("export: replace %s: %w", dest, err)
	}
	return nil
}
