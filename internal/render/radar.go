package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/dshills/perfwheel/internal/wheel"
)

const (
	// radarFill is the share of the canvas the outer ring spans.
	radarFill = 0.75
	// ringStep is the rating distance between grid rings.
	ringStep = 2
	// labelOffset pushes axis captions past the outer ring.
	labelOffset = 1.12
)

// Point is an SVG coordinate.
type Point struct {
	X, Y float64
}

// Axis is one spoke of the radar with its caption placement.
type Axis struct {
	Label  string
	End    Point
	Text   Point
	Anchor string
}

// RadarChart is the precomputed geometry of a radar chart.
// The first axis points up and the rest follow clockwise in point order.
type RadarChart struct {
	Size     int
	Center   Point
	Radius   float64
	Rings    []string
	Axes     []Axis
	Vertices []Point
	Shape    string
}

// Radar lays out a square radar chart of the given pixel size.
func Radar(points []wheel.ChartPoint, size int) RadarChart {
	c := float64(size) / 2
	chart := RadarChart{
		Size:   size,
		Center: Point{c, c},
		Radius: c * radarFill,
	}
	n := len(points)
	if n == 0 {
		return chart
	}

	scale := wheel.MaxRating
	if points[0].Max > 0 {
		scale = points[0].Max
	}
	for level := ringStep; level <= scale; level += ringStep {
		ring := make([]Point, n)
		for i := range ring {
			ring[i] = chart.at(i, n, float64(level)/float64(scale))
		}
		chart.Rings = append(chart.Rings, polygon(ring))
	}

	for i, p := range points {
		cos, _ := direction(i, n)
		anchor := "middle"
		switch {
		case cos > 0.01:
			anchor = "start"
		case cos < -0.01:
			anchor = "end"
		}
		chart.Axes = append(chart.Axes, Axis{
			Label:  p.Subject,
			End:    chart.at(i, n, 1),
			Text:   chart.at(i, n, labelOffset),
			Anchor: anchor,
		})
		chart.Vertices = append(chart.Vertices, chart.at(i, n, fraction(p)))
	}
	chart.Shape = polygon(chart.Vertices)
	return chart
}

func (c RadarChart) at(i, n int, frac float64) Point {
	cos, sin := direction(i, n)
	return Point{
		X: round1(c.Center.X + c.Radius*frac*cos),
		Y: round1(c.Center.Y + c.Radius*frac*sin),
	}
}

func direction(i, n int) (cos, sin float64) {
	theta := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	return math.Cos(theta), math.Sin(theta)
}

func fraction(p wheel.ChartPoint) float64 {
	if p.Max <= 0 {
		return 0
	}
	return math.Min(math.Max(float64(p.Value)/float64(p.Max), 0), 1)
}

func polygon(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
