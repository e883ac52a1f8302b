package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/segmenta-org/segmenta/dataset"
	"github.com/segmenta-org/segmenta/project"
	"github.com/segmenta-org/segmenta/schema"
	"github.com/segmenta-org/segmenta/summary"
)

func exportFixture(t *testing.T) Input {
	t.Helper()
	cfg := schema.Default()
	rows := []dataset.Record{
		{Attributes: []uint8{1, 0, 0, 0, 0}, Countries: []uint8{1, 0}},
		{Attributes: []uint8{0, 1, 0, 0, 0}, Countries: []uint8{1, 0}},
		{Attributes: []uint8{0, 0, 1, 1, 0}, Countries: []uint8{0, 1}},
	}
	ds, err := dataset.New(cfg, rows)
	require.NoError(t, err)
	require.NoError(t, ds.AssignClusters([]int{1, 2, 3}))

	profiles, err := summary.Profiles(ds)
	require.NoError(t, err)

	return Input{
		Dataset:         ds,
		Summary:         summary.ResultTable(cfg, profiles),
		Interpretations: summary.InterpretationTable(profiles, summary.Interpretations{1: "rural"}),
		Coordinates: []project.Coordinate{
			{PC1: 0.5, PC2: -0.1},
			{PC1: -0.2, PC2: 0.3},
			{PC1: -0.3, PC2: -0.2},
		},
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "cluster_results_20260830.xlsx", Filename(ts))
}

func TestWorkbook(t *testing.T) {
	dir := t.TempDir()
	in := exportFixture(t)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	path, err := Workbook(in, dir, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cluster_results_20260830.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	t.Run("exactly four named sheets", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]string{SheetSummary, SheetInterpretations, SheetFullData, SheetCoordinates},
			f.GetSheetList())
	})

	t.Run("summary sheet carries headers and rows", func(t *testing.T) {
		rows, err := f.GetRows(SheetSummary)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "Cluster", rows[0][0])
		assert.Equal(t, "100.0%", rows[1][2])
	})

	t.Run("every record appears exactly once with its cluster", func(t *testing.T) {
		rows, err := f.GetRows(SheetFullData)
		require.NoError(t, err)
		require.Len(t, rows, in.Dataset.Len()+1)

		header := rows[0]
		assert.Equal(t, "cluster", header[len(header)-1])
		assert.Equal(t, "1", rows[1][firstIndex(t, header, "rural_area")])
		assert.Equal(t, "1", rows[2][firstIndex(t, header, "second_third_place")])

		clusters := make([]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			clusters = append(clusters, row[len(header)-1])
		}
		assert.Equal(t, []string{"1", "2", "3"}, clusters)
	})

	t.Run("coordinates sheet pairs records with labels", func(t *testing.T) {
		rows, err := f.GetRows(SheetCoordinates)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, []string{"record", "PC1", "PC2", "cluster"}, rows[0])
		assert.Equal(t, "1", rows[1][0])
		assert.Equal(t, "0.5", rows[1][1])
		assert.Equal(t, "1", rows[1][3])
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		leftovers, err := filepath.Glob(filepath.Join(dir, ".cluster_results-*"))
		require.NoError(t, err)
		assert.Empty(t, leftovers)
	})
}

func TestWorkbookCoordinateMismatch(t *testing.T) {
	in := exportFixture(t)
	in.Coordinates = in.Coordinates[:1]
	_, err := Workbook(in, t.TempDir(), time.Now())
	assert.Error(t, err)
}

func firstIndex(t *testing.T, header []string, name string) int {
	t.Helper()
	for i, h := range header {
		if h == name {
			return i
		}
	}
	t.Fatalf("column %q not in header %v", name, header)
	return -1
}
