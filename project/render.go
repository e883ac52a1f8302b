package project

import (
	"fmt"
	"image/color"
	"math/rand"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ============================================================================
// SCATTER RENDER — Cluster plot with convex-hull overlays
// ============================================================================
// Points are jittered for display only; the exported PCA coordinates stay
// exact. Jitter comes from a seeded source so re-renders are identical.
// ============================================================================

// Cluster color palette.
var clusterColors = []color.NRGBA{
	{R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF},
	{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF},
	{R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF},
	{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF},
	{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF},
	{R: 0x06, G: 0xB6, B: 0xD4, A: 0xFF},
	{R: 0xEC, G: 0x48, B: 0x99, A: 0xFF},
	{R: 0x84, G: 0xCC, B: 0x16, A: 0xFF},
}

// jitterScale is the display offset magnitude relative to the data range.
const jitterScale = 0.02

// RenderScatter draws the projected records colored by cluster, with a
// translucent convex-hull polygon per cluster of three or more points,
// and saves the plot to path (format by extension, typically .png).
func RenderScatter(coords []Coordinate, labels []int, title, path string, jitterSeed int64) error {
	if len(coords) != len(labels) {
		return fmt.Errorf("project: %d coordinates for %d labels", len(coords), len(labels))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "PC1"
	p.Y.Label.Text = "PC2"
	p.Add(plotter.NewGrid())

	jittered := jitter(coords, jitterSeed)

	byCluster := make(map[int][]Coordinate)
	maxLabel := 0
	for i, l := range labels {
		byCluster[l] = append(byCluster[l], jittered[i])
		if l > maxLabel {
			maxLabel = l
		}
	}

	for l := 1; l <= maxLabel; l++ {
		pts, ok := byCluster[l]
		if !ok {
			continue
		}
		c := clusterColors[(l-1)%len(clusterColors)]

		if hull := Hull(pts); hull != nil {
			xys := make(plotter.XYs, len(hull))
			for i, h := range hull {
				xys[i].X, xys[i].Y = h.PC1, h.PC2
			}
			poly, err := plotter.NewPolygon(xys)
			if err != nil {
				return fmt.Errorf("project: hull polygon for cluster %d: %w", l, err)
			}
			poly.Color = color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x30}
			poly.LineStyle.Color = c
			poly.LineStyle.Width = vg.Points(1)
			p.Add(poly)
		}

		xys := make(plotter.XYs, len(pts))
		for i, pt := range pts {
			xys[i].X, xys[i].Y = pt.PC1, pt.PC2
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("project: scatter for cluster %d: %w", l, err)
		}
		s.GlyphStyle.Color = c
		s.GlyphStyle.Radius = vg.Points(3.5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("Cluster %d", l), s)
	}

	p.Legend.Top = true
	if err := p.Save(7*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("project: save plot %s: %w", path, err)
	}
	return nil
}

// jitter offsets each coordinate by a small seeded random amount scaled
// to the data range, so identical binary records stay visible as
// separate points.
func jitter(coords []Coordinate, seed int64) []Coordinate {
	rng := rand.New(rand.NewSource(seed))

	var minX, maxX, minY, maxY float64
	for i, c := range coords {
		if i == 0 || c.PC1 < minX {
			minX = c.PC1
		}
		if i == 0 || c.PC1 > maxX {
			maxX = c.PC1
		}
		if i == 0 || c.PC2 < minY {
			minY = c.PC2
		}
		if i == 0 || c.PC2 > maxY {
			maxY = c.PC2
		}
	}
	sx := (maxX - minX) * jitterScale
	sy := (maxY - minY) * jitterScale
	if sx == 0 {
		sx = jitterScale
	}
	if sy == 0 {
		sy = jitterScale
	}

	out := make([]Coordinate, len(coords))
	for i, c := range coords {
		out[i] = Coordinate{
			PC1: c.PC1 + (rng.Float64()*2-1)*sx,
			PC2: c.PC2 + (rng.Float64()*2-1)*sy,
		}
	}
	return out
}
