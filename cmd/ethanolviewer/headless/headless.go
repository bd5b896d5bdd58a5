// Package headless runs the simulation without a display and reports through the log.
package headless

import (
	"strings"

	"github.com/iafilius/EthanolSim/src/ethanol"
)

// Summary is what a headless run reports at the end.
type Summary struct {
	Steps          int
	MeanEfficiency float64
	MaxQuantity    float64
	Ratings        map[ethanol.Rating]int
}

// Run runs the loop without a display or frame delay, logging each step.
func Run(sampler *ethanol.Sampler, steps int) Summary {
	h := ethanol.NewHistory(steps)
	sum := Summary{Ratings: map[ethanol.Rating]int{}}
	n, err := ethanol.Run(ethanol.RunConfig{Steps: steps}, sampler, h, func(_ *ethanol.History, o ethanol.Observation) {
		r := ethanol.Rate(o.Efficiency)
		sum.Ratings[r]++
		ethanol.Infof("[step %d] sugar=%s yeast=%s sugar_g=%.2f yeast_g=%.2f ferment_h=%.2f distill_c=%.2f efficiency=%.2f%% (%s)",
			o.TimeStep, o.SugarType, o.YeastType, o.SugarAmount, o.YeastAmount, o.FermentationTime, o.DistillationTemp, o.Efficiency, r)
		if tips := ethanol.Suggestions(o.Inputs); len(tips) > 0 {
			ethanol.Infof("[step %d] suggestions: %s", o.TimeStep, strings.Join(tips, "; "))
		}
	})
	if err != nil {
		ethanol.Errorf("[headless] simulation aborted after %d steps: %v", n, err)
	}
	sum.Steps = n
	sum.MeanEfficiency = h.MeanEfficiency()
	sum.MaxQuantity = h.MaxQuantity()
	ethanol.Infof("[headless] steps=%d mean_efficiency=%.2f%% optimal=%d satisfactory=%d low=%d max_quantity=%.2f",
		sum.Steps, sum.MeanEfficiency, sum.Ratings[ethanol.RatingOptimal], sum.Ratings[ethanol.RatingSatisfactory], sum.Ratings[ethanol.RatingLow], sum.MaxQuantity)
	return sum
}
