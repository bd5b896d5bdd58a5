package ethanol

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfOrder is returned when an Observation does not belong at the end of the History.
var ErrOutOfOrder = errors.New("observation out of order")

// History keeps every Observation of a run as parallel, index-aligned sequences.
// It is not safe for concurrent use; a run loop owns it exclusively.
type History struct {
	TimeSteps         []int
	Efficiencies      []float64
	SugarTypes        []SugarType
	YeastTypes        []YeastType
	SugarAmounts      []float64
	YeastAmounts      []float64
	FermentationTimes []float64
	DistillationTemps []float64

	maxQuantity float64
}

// NewHistory returns an empty History with room for capacity steps.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{
		TimeSteps:         make([]int, 0, capacity),
		Efficiencies:      make([]float64, 0, capacity),
		SugarTypes:        make([]SugarType, 0, capacity),
		YeastTypes:        make([]YeastType, 0, capacity),
		SugarAmounts:      make([]float64, 0, capacity),
		YeastAmounts:      make([]float64, 0, capacity),
		FermentationTimes: make([]float64, 0, capacity),
		DistillationTemps: make([]float64, 0, capacity),
	}
}

// Len is the number of recorded steps.
func (h *History) Len() int { return len(h.TimeSteps) }

// Append records o. o.TimeStep must equal Len().
func (h *History) Append(o Observation) error {
	if o.TimeStep != h.Len() {
		return fmt.Errorf("append step %d at position %d: %w", o.TimeStep, h.Len(), ErrOutOfOrder)
	}
	h.TimeSteps = append(h.TimeSteps, o.TimeStep)
	h.Efficiencies = append(h.Efficiencies, o.Efficiency)
	h.SugarTypes = append(h.SugarTypes, o.SugarType)
	h.YeastTypes = append(h.YeastTypes, o.YeastType)
	h.SugarAmounts = append(h.SugarAmounts, o.SugarAmount)
	h.YeastAmounts = append(h.YeastAmounts, o.YeastAmount)
	h.FermentationTimes = append(h.FermentationTimes, o.FermentationTime)
	h.DistillationTemps = append(h.DistillationTemps, o.DistillationTemp)
	h.maxQuantity = math.Max(h.maxQuantity, math.Max(o.SugarAmount, math.Max(o.YeastAmount, o.FermentationTime)))
	return nil
}

// At rebuilds the Observation recorded at index i.
func (h *History) At(i int) (Observation, bool) {
	if i < 0 || i >= h.Len() {
		return Observation{}, false
	}
	return Observation{
		TimeStep:   h.TimeSteps[i],
		Efficiency: h.Efficiencies[i],
		Inputs: Inputs{
			SugarType:        h.SugarTypes[i],
			YeastType:        h.YeastTypes[i],
			SugarAmount:      h.SugarAmounts[i],
			YeastAmount:      h.YeastAmounts[i],
			FermentationTime: h.FermentationTimes[i],
			DistillationTemp: h.DistillationTemps[i],
		},
	}, true
}

// Last returns the most recent Observation.
func (h *History) Last() (Observation, bool) { return h.At(h.Len() - 1) }

// MaxQuantity is the largest sugar amount, yeast amount or fermentation time seen so far
// (0 when empty). These three share the chart's secondary axis.
func (h *History) MaxQuantity() float64 { return h.maxQuantity }

// MeanEfficiency averages all recorded scores (NaN when empty).
func (h *History) MeanEfficiency() float64 {
	if h.Len() == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range h.Efficiencies {
		sum += v
	}
	return sum / float64(h.Len())
}
