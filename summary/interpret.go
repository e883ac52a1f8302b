package summary

// ============================================================================
// INTERPRETATIONS — Analyst-authored cluster readings
// ============================================================================
// These are domain knowledge keyed by cluster label, supplied by the
// caller and attached verbatim. They are never derived from the data,
// and because the numeric labels are arbitrary, the table must be
// revisited whenever the cluster count or the input population changes.
// ============================================================================

// Interpretations maps a cluster label to its analyst-authored reading.
type Interpretations map[int]string

// For returns the interpretation for a cluster, or a placeholder when
// the analyst has not written one.
func (n Interpretations) For(cluster int) string {
	if s, ok := n[cluster]; ok {
		return s
	}
	return "No interpretation provided."
}
