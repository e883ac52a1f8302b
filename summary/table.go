package summary

import (
	"fmt"

	"github.com/segmenta-org/segmenta/schema"
)

// ============================================================================
// TABLE SHAPING — Render-ready rows for console and export
// ============================================================================
// One shaping pass feeds both surfaces, so the console table and the
// workbook sheet can never drift apart.
// ============================================================================

// Table is render-ready tabular output: a header row plus string rows.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// ResultTable shapes the cluster profiles into the results table.
func ResultTable(cfg schema.Config, profiles []Profile) Table {
	headers := []string{"Cluster", "Cases"}
	for _, col := range cfg.ClusteringColumns {
		headers = append(headers, col+" %")
	}
	for _, col := range cfg.CountryColumns {
		headers = append(headers, col+" (cases)")
	}

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		row := []string{fmt.Sprintf("%d", p.Cluster), fmt.Sprintf("%d", p.Count)}
		for _, pct := range p.PercentPositive {
			row = append(row, FormatPercent(pct))
		}
		for _, c := range p.CountryCounts {
			row = append(row, fmt.Sprintf("%d", c))
		}
		rows = append(rows, row)
	}

	return Table{Title: "Cluster Summary", Headers: headers, Rows: rows}
}

// InterpretationTable shapes the analyst notes for the realized clusters.
func InterpretationTable(profiles []Profile, notes Interpretations) Table {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{fmt.Sprintf("%d", p.Cluster), notes.For(p.Cluster)})
	}
	return Table{
		Title:   "Cluster Interpretations",
		Headers: []string{"Cluster", "Interpretation"},
		Rows:    rows,
	}
}
