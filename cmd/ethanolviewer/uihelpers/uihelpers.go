package uihelpers

import (
	"math"
	"strconv"
)

// Frame proportions follow a 10x6 figure.
const (
	minFrameWidth  = 640
	minFrameHeight = 360
	maxFrameHeight = 720
	frameAspect    = 0.6
)

// SecondaryHeadroom scales the largest quantity to get the secondary axis max.
const SecondaryHeadroom = 1.1

// ComputeChartDimensions applies width/height clamp rules used for the live frame.
// Input: raw available width (e.g., canvas width). Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < minFrameWidth {
		w = minFrameWidth
	}
	h := int(float32(w) * frameAspect)
	if h < minFrameHeight {
		h = minFrameHeight
	}
	if h > maxFrameHeight {
		h = maxFrameHeight
	}
	return w, h
}

// SecondaryAxisMax returns the upper bound of the quantity axis for the largest value
// observed so far. Falls back to 1 before any data so the range is never empty.
func SecondaryAxisMax(maxObserved float64) float64 {
	if maxObserved <= 0 || math.IsNaN(maxObserved) || math.IsInf(maxObserved, 0) {
		return 1
	}
	return maxObserved * SecondaryHeadroom
}

// TimeAxisMax is the right edge of the time-step axis for n recorded steps.
// Keeps a non-zero span for the first step.
func TimeAxisMax(n int) float64 {
	if n < 2 {
		return 1
	}
	return float64(n - 1)
}

// BuildAxisTicks returns up to n tick positions inside [min,max] using a 1,2,2.5,5 x 10^k step.
// Both ends are always present so fixed ranges keep their labelled bounds.
func BuildAxisTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		diff := math.Abs(math.Floor(span/step) + 1 - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	out := []float64{round6(min)}
	for v := math.Floor(min/bestStep)*bestStep + bestStep; v < max-bestStep*0.5; v += bestStep {
		if v > min+bestStep*0.5 {
			out = append(out, round6(v))
		}
	}
	return append(out, round6(max))
}

// round6 rounds to 6 decimal places to stabilize labels and comparisons.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// FormatNumericTick provides a compact tick label.
func FormatNumericTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av == 0:
		return "0"
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}
