package ethanol

// Sampling ranges. Amounts in grams, time in hours, temperature in Celsius.
const (
	SugarAmountMin      = 80.0
	SugarAmountMax      = 120.0
	YeastAmountMin      = 20.0
	YeastAmountMax      = 40.0
	FermentationTimeMin = 40.0
	FermentationTimeMax = 60.0
	DistillationTempMin = 20.0
	DistillationTempMax = 40.0
)

var sugarEfficiency = map[SugarType]float64{
	Glucose:  1.2,
	Sucrose:  1.1,
	Fructose: 1.3,
	Maltose:  1.0,
	Lactose:  0.8,
}

var yeastEfficiency = map[YeastType]float64{
	SaccharomycesCerevisiae:  1.0,
	KluyveromycesLactis:      0.8,
	ZymomonasMobilis:         1.1,
	SchizosaccharomycesPombe: 0.9,
}

// Fallbacks for values outside the known sets (Efficiency is exported and accepts any string).
const (
	defaultSugarFactor = 0.9
	defaultYeastFactor = 0.8
)

// Optimal windows, inclusive on both ends.
const (
	fermentationOptimalMin = 45.0
	fermentationOptimalMax = 55.0
	distillationOptimalMin = 25.0
	distillationOptimalMax = 35.0
)

// Factors holds the four multipliers behind an efficiency score.
type Factors struct {
	Sugar        float64
	Yeast        float64
	Fermentation float64
	Distillation float64
}

// Product returns the efficiency score (percent) for these factors.
func (f Factors) Product() float64 {
	return f.Sugar * f.Yeast * f.Fermentation * f.Distillation * 100
}

// FactorsFor looks up and thresholds the multipliers for the given inputs.
func FactorsFor(in Inputs) Factors {
	f := Factors{Sugar: defaultSugarFactor, Yeast: defaultYeastFactor, Fermentation: 0.7, Distillation: 0.5}
	if v, ok := sugarEfficiency[in.SugarType]; ok {
		f.Sugar = v
	}
	if v, ok := yeastEfficiency[in.YeastType]; ok {
		f.Yeast = v
	}
	if in.FermentationTime >= fermentationOptimalMin && in.FermentationTime <= fermentationOptimalMax {
		f.Fermentation = 1.3
	}
	if in.DistillationTemp >= distillationOptimalMin && in.DistillationTemp <= distillationOptimalMax {
		f.Distillation = 1.2
	}
	return f
}

// Efficiency is the heuristic score for in, in percent.
func Efficiency(in Inputs) float64 { return FactorsFor(in).Product() }

// AllEfficiencies enumerates the score of every input combination reachable from the
// known sugar and yeast sets (5 x 4 x 2 x 2 = 80 combinations, in table order). Some
// scores repeat across combinations.
func AllEfficiencies() []float64 {
	out := make([]float64, 0, len(SugarTypes)*len(YeastTypes)*4)
	for _, s := range SugarTypes {
		for _, y := range YeastTypes {
			for _, fe := range []float64{1.3, 0.7} {
				for _, di := range []float64{1.2, 0.5} {
					f := Factors{Sugar: sugarEfficiency[s], Yeast: yeastEfficiency[y], Fermentation: fe, Distillation: di}
					out = append(out, f.Product())
				}
			}
		}
	}
	return out
}
