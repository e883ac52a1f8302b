package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/segmenta-org/segmenta/dataset"
	"github.com/segmenta-org/segmenta/pipeline"
	"github.com/segmenta-org/segmenta/summary"
)

// ============================================================================
// SEGMENTA CLI — One-shot cluster profiling for binary survey data
// ============================================================================

const version = "0.1.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// Run flags, overriding the config file
	inputPath   string
	outputDir   string
	plotPath    string
	numClusters int
	allowMiss   bool
	printMerges bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "segmenta",
	Short: "segmenta — hierarchical cluster profiling for binary survey data",
	Long: `segmenta runs one batch analysis over a binary-attribute dataset:
Gower dissimilarities, Ward-linkage hierarchical clustering, a fixed-K
dendrogram cut, a PCA scatter plot with convex-hull overlays, and a
four-sheet results workbook.

Examples:
  # Full run with the bundled survey schema
  segmenta run --input wineries.xlsx --output-dir results --plot results/clusters.png

  # Custom configuration
  segmenta run --config study.yaml

  # Check the input file against the schema without running anything
  segmenta validate --input wineries.csv`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the full clustering pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}

		result, err := pipeline.Run(cfg,
			pipeline.WithLogger(logger),
			pipeline.WithInterpretations(pipeline.DefaultInterpretations()),
		)
		if err != nil {
			return err
		}

		fmt.Println(renderTable(result.Summary))
		fmt.Println(renderTable(result.Interpreted))

		if printMerges {
			fmt.Println("Merge heights:")
			for i, m := range result.Dendrogram.Merges() {
				fmt.Printf("  step %2d: %d + %d → size %d at %.4f\n", i+1, m.A, m.B, m.Size, m.Height)
			}
		}

		fmt.Printf("Run metadata: segmenta %s | %d records | %dx%d dissimilarity matrix | K=%d | %s/%s\n",
			version, result.Dataset.Len(),
			result.Dissimilarity.SymmetricDim(), result.Dissimilarity.SymmetricDim(),
			cfg.NumClusters, cfg.Linkage, cfg.Metric)
		fmt.Printf("Workbook: %s\n", result.ArtifactPath)
		if result.PlotPath != "" {
			fmt.Printf("Plot:     %s\n", result.PlotPath)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the input file against the schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		ds, err := dataset.Load(cfg.InputPath, cfg.SchemaConfig())
		if err != nil {
			return err
		}
		fmt.Printf("OK: %d records, %d clustering columns, %d country columns\n",
			ds.Len(), len(cfg.ClusteringColumns), len(cfg.CountryColumns))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("segmenta %s\n", version)
	},
}

// buildConfig layers flag overrides on top of the config file (or the
// defaults when no file is given).
func buildConfig() (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = pipeline.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
	}
	if inputPath != "" {
		cfg.InputPath = inputPath
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if plotPath != "" {
		cfg.PlotPath = plotPath
	}
	if numClusters > 0 {
		cfg.NumClusters = numClusters
	}
	if allowMiss {
		cfg.AllowMissing = true
	}
	return cfg, nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func renderTable(t summary.Table) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Title + "\n" + tbl.Render()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML run configuration")

	for _, c := range []*cobra.Command{runCmd, validateCmd} {
		c.Flags().StringVar(&inputPath, "input", "", "Path to input data file (.csv or .xlsx)")
		c.Flags().BoolVar(&allowMiss, "allow-missing", false, "Treat empty clustering cells as missing instead of failing")
	}
	runCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the results workbook")
	runCmd.Flags().StringVar(&plotPath, "plot", "", "Path for the PNG scatter plot (omit to skip)")
	runCmd.Flags().IntVar(&numClusters, "clusters", 0, "Number of clusters to cut the dendrogram into")
	runCmd.Flags().BoolVar(&printMerges, "print-merges", false, "Print dendrogram merge heights")

	rootCmd.AddCommand(runCmd, validateCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
