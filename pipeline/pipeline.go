package pipeline

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/segmenta-org/segmenta/cluster"
	"github.com/segmenta-org/segmenta/dataset"
	"github.com/segmenta-org/segmenta/export"
	"github.com/segmenta-org/segmenta/gower"
	"github.com/segmenta-org/segmenta/project"
	"github.com/segmenta-org/segmenta/summary"
)

// ============================================================================
// PIPELINE — Load → Distance → Cluster → {Project, Summarize} → Export
// ============================================================================
// One sequential pass, single-threaded, fail fast. No stage retries and
// no partial results: the only write happens at the very end, atomically.
// The dissimilarity matrix is O(N²) in memory — the documented scaling
// limit of this design.
// ============================================================================

// Result carries every derived artifact of a completed run.
type Result struct {
	Dataset       *dataset.Dataset
	Dissimilarity *mat.SymDense
	Dendrogram    *cluster.Dendrogram
	Labels        []int
	Profiles      []summary.Profile
	Summary       summary.Table
	Interpreted   summary.Table
	Coordinates   []project.Coordinate
	ArtifactPath  string
	PlotPath      string
}

// Run executes the whole pipeline for one configuration.
func Run(cfg Config, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	log := o.logger

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// ── Load ──────────────────────────────────────────────────────────────
	ds, err := dataset.Load(cfg.InputPath, cfg.SchemaConfig())
	if err != nil {
		return nil, stageErr(StageLoad, err)
	}
	log.Info("dataset loaded",
		zap.String("input", cfg.InputPath),
		zap.Int("records", ds.Len()),
		zap.Int("attributes", ds.NumAttributes()))

	// ── Distance ──────────────────────────────────────────────────────────
	diss, err := gower.Matrix(ds)
	if err != nil {
		return nil, stageErr(StageDistance, err)
	}
	log.Info("dissimilarity matrix computed", zap.Int("size", diss.SymmetricDim()))

	// ── Cluster ───────────────────────────────────────────────────────────
	tree, err := cluster.Ward(diss)
	if err != nil {
		return nil, stageErr(StageCluster, err)
	}
	labels, err := tree.Cut(cfg.NumClusters)
	if err != nil {
		return nil, stageErr(StageCluster, err)
	}
	if err := ds.AssignClusters(labels); err != nil {
		return nil, stageErr(StageCluster, err)
	}
	log.Info("dendrogram cut", zap.Int("clusters", cfg.NumClusters))

	// ── Project ───────────────────────────────────────────────────────────
	coords, err := project.PCA(diss)
	if err != nil {
		return nil, stageErr(StageProject, err)
	}
	if cfg.PlotPath != "" {
		title := fmt.Sprintf("Cluster map (K=%d, %s/%s)", cfg.NumClusters, cfg.Linkage, cfg.Metric)
		if err := o.renderer(coords, labels, title, cfg.PlotPath, cfg.JitterSeed); err != nil {
			return nil, stageErr(StageProject, err)
		}
		log.Info("scatter plot written", zap.String("path", cfg.PlotPath))
	}

	// ── Summarize ─────────────────────────────────────────────────────────
	profiles, err := summary.Profiles(ds)
	if err != nil {
		return nil, stageErr(StageSummarize, err)
	}
	resultTable := summary.ResultTable(ds.Schema, profiles)
	interpreted := summary.InterpretationTable(profiles, o.notes)

	// ── Export ────────────────────────────────────────────────────────────
	artifact, err := export.Workbook(export.Input{
		Dataset:         ds,
		Summary:         resultTable,
		Interpretations: interpreted,
		Coordinates:     coords,
	}, cfg.OutputDir, o.now())
	if err != nil {
		return nil, stageErr(StageExport, err)
	}
	log.Info("workbook exported", zap.String("path", artifact))

	return &Result{
		Dataset:       ds,
		Dissimilarity: diss,
		Dendrogram:    tree,
		Labels:        labels,
		Profiles:      profiles,
		Summary:       resultTable,
		Interpreted:   interpreted,
		Coordinates:   coords,
		ArtifactPath:  artifact,
		PlotPath:      cfg.PlotPath,
	}, nil
}
