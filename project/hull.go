package project

import "sort"

// ============================================================================
// CONVEX HULL — Andrew's monotone chain
// ============================================================================
// Feeds the per-cluster polygon overlays. Clusters with fewer than three
// points get no hull — the overlay is simply omitted, never an error.
// ============================================================================

// Hull returns the convex hull of the points in counter-clockwise order,
// or nil when fewer than three points are given (or all are collinear).
func Hull(points []Coordinate) []Coordinate {
	if len(points) < 3 {
		return nil
	}

	pts := make([]Coordinate, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].PC1 != pts[j].PC1 {
			return pts[i].PC1 < pts[j].PC1
		}
		return pts[i].PC2 < pts[j].PC2
	})

	var lower []Coordinate
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []Coordinate
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil
	}
	return hull
}

// cross returns the z-component of (b−a)×(c−a): positive for a left turn.
func cross(a, b, c Coordinate) float64 {
	return (b.PC1-a.PC1)*(c.PC2-a.PC2) - (b.PC2-a.PC2)*(c.PC1-a.PC1)
}
