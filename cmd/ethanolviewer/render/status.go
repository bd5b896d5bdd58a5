package render

import (
	"fmt"
	"strings"

	"github.com/iafilius/EthanolSim/src/ethanol"
)

// StatusText is the one-line summary shown under the frame. Non-optimal steps carry the
// tuning suggestions for their inputs.
func StatusText(o ethanol.Observation, h *ethanol.History, steps int) string {
	line := fmt.Sprintf("Step %d/%d | %s + %s | sugar %.1f g, yeast %.1f g, fermentation %.1f h, distillation %.1f °C | efficiency %.2f%% (%s) | mean %.2f%%",
		o.TimeStep+1, steps, o.SugarType, o.YeastType, o.SugarAmount, o.YeastAmount, o.FermentationTime, o.DistillationTemp,
		o.Efficiency, ethanol.Rate(o.Efficiency), h.MeanEfficiency())
	if tips := ethanol.Suggestions(o.Inputs); len(tips) > 0 {
		line += "\nSuggestions: " + strings.Join(tips, "; ")
	}
	return line
}
