// Package segmenta profiles a binary-attribute dataset into clusters.
//
// Usage:
//
//	import "github.com/segmenta-org/segmenta/pipeline"
//
//	result, err := pipeline.Run(cfg,
//	    pipeline.WithLogger(logger),
//	    pipeline.WithInterpretations(notes),
//	)
//
// The pipeline loads tabular records, computes a Gower dissimilarity
// matrix over the configured binary columns, runs Ward-linkage
// hierarchical clustering, cuts the dendrogram at a fixed cluster
// count, projects the matrix onto two principal components for the
// scatter plot, and exports per-cluster profiles as a four-sheet
// workbook.
//
// Everything is local and synchronous — one sequential pass, fail
// fast, no partial exports. The dissimilarity matrix is O(N²) in
// memory; the pipeline targets small analyst datasets, not bulk data.
package segmenta
