// Package plot draws small ASCII charts for the terminal.
package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/msto63/sciops/internal/stats"
)

// DefaultHeight is the number of rows of a Render plot.
const DefaultHeight = 10

// DefaultBarWidth is the width of the longest Histogram bar.
const DefaultBarWidth = 40

// Render plots values as one '*' per column on a grid of height rows, with
// zero on the middle row and the range scaled symmetrically to the largest
// absolute value. The top row comes first.
func Render(values []float64, height int) []string {
	if height < 1 {
		height = DefaultHeight
	}
	if len(values) == 0 {
		return nil
	}

	span := 0.0
	for _, v := range values {
		span = math.Max(span, math.Abs(v))
	}
	if span == 0 {
		span = 1
	}

	levels := make([]int, len(values))
	for i, v := range values {
		ratio := v/(2*span) + 0.5
		levels[i] = int(ratio * float64(height-1))
	}

	lines := make([]string, 0, height)
	for level := height - 1; level >= 0; level-- {
		var b strings.Builder
		b.Grow(len(levels))
		for _, l := range levels {
			if l == level {
				b.WriteByte('*')
			} else {
				b.WriteByte(' ')
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

// Histogram renders one bar per bin, scaled so the fullest bin is width
// characters long.
func Histogram(bins []stats.Bin, width int) []string {
	if width < 1 {
		width = DefaultBarWidth
	}
	maxCount := 0
	for _, b := range bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	lines := make([]string, 0, len(bins))
	for _, b := range bins {
		n := 0
		if maxCount > 0 {
			n = int(float64(b.Count) / float64(maxCount) * float64(width))
		}
		lines = append(lines, fmt.Sprintf("% .4g – % .4g | %s (%d)", b.Lo, b.Hi, strings.Repeat("*", n), b.Count))
	}
	return lines
}
