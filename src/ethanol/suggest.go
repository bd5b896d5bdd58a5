package ethanol

import "fmt"

// yeastProfile is the per-organism operating window used for tuning advice. It does not
// feed into Efficiency.
type yeastProfile struct {
	OptimalFermentationHours float64
	TempToleranceMin         float64
	TempToleranceMax         float64
}

// fermentationSlack is how far (hours) fermentation may drift from a yeast's optimum.
const fermentationSlack = 10.0

var yeastProfiles = map[YeastType]yeastProfile{
	SaccharomycesCerevisiae:  {OptimalFermentationHours: 48, TempToleranceMin: 15, TempToleranceMax: 35},
	KluyveromycesLactis:      {OptimalFermentationHours: 36, TempToleranceMin: 20, TempToleranceMax: 30},
	ZymomonasMobilis:         {OptimalFermentationHours: 40, TempToleranceMin: 25, TempToleranceMax: 40},
	SchizosaccharomycesPombe: {OptimalFermentationHours: 60, TempToleranceMin: 18, TempToleranceMax: 32},
}

// Suggestions returns tuning advice for inputs whose score is not optimal. Optimal
// inputs, and inputs already inside the yeast's windows, get none.
func Suggestions(in Inputs) []string {
	if Rate(Efficiency(in)) == RatingOptimal {
		return nil
	}
	p, ok := yeastProfiles[in.YeastType]
	if !ok {
		return []string{fmt.Sprintf("unknown yeast type %q; choose one of the known yeasts", in.YeastType)}
	}
	var out []string
	if in.DistillationTemp < p.TempToleranceMin || in.DistillationTemp > p.TempToleranceMax {
		out = append(out, fmt.Sprintf("distillation at %.1f °C is outside %s tolerance (%.0f-%.0f °C); consider another yeast",
			in.DistillationTemp, in.YeastType, p.TempToleranceMin, p.TempToleranceMax))
	}
	if in.FermentationTime < p.OptimalFermentationHours-fermentationSlack || in.FermentationTime > p.OptimalFermentationHours+fermentationSlack {
		out = append(out, fmt.Sprintf("move fermentation time closer to %.0f h for %s", p.OptimalFermentationHours, in.YeastType))
	}
	return out
}
