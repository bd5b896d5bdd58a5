// Package ethanol simulates a fictitious ethanol production process: random sugar/yeast
// selection, random quantities and a heuristic efficiency score per time step.
//
// Design notes:
//   - Sampler draws from a pluggable Source so runs can be seeded and replayed in tests.
//   - History is append-only; index i always belongs to time step i.
//   - Run drives the fixed-count loop and hands the whole History to a frame callback,
//     so rendering never depends on hidden plotting state.
package ethanol

// SugarType is the fermentable sugar used in a step.
type SugarType string

const (
	Glucose  SugarType = "glucose"
	Sucrose  SugarType = "sucrose"
	Fructose SugarType = "fructose"
	Maltose  SugarType = "maltose"
	Lactose  SugarType = "lactose"
)

// SugarTypes lists every sugar in selection order.
var SugarTypes = []SugarType{Glucose, Sucrose, Fructose, Maltose, Lactose}

// YeastType is the organism doing the fermentation.
type YeastType string

const (
	SaccharomycesCerevisiae  YeastType = "Saccharomyces cerevisiae"
	KluyveromycesLactis      YeastType = "Kluyveromyces lactis"
	ZymomonasMobilis         YeastType = "Zymomonas mobilis"
	SchizosaccharomycesPombe YeastType = "Schizosaccharomyces pombe"
)

// YeastTypes lists every yeast in selection order.
var YeastTypes = []YeastType{SaccharomycesCerevisiae, KluyveromycesLactis, ZymomonasMobilis, SchizosaccharomycesPombe}

// Inputs are the sampled process parameters of one step.
type Inputs struct {
	SugarType        SugarType `json:"sugar_type"`
	YeastType        YeastType `json:"yeast_type"`
	SugarAmount      float64   `json:"sugar_amount_g"`
	YeastAmount      float64   `json:"yeast_amount_g"`
	FermentationTime float64   `json:"fermentation_time_h"`
	DistillationTemp float64   `json:"distillation_temp_c"`
}

// Observation is one simulated time step: the sampled inputs plus the derived score.
type Observation struct {
	TimeStep   int     `json:"time_step"`
	Efficiency float64 `json:"efficiency"`
	Inputs
}

// Rating buckets an efficiency score.
type Rating string

const (
	RatingOptimal      Rating = "optimal"
	RatingSatisfactory Rating = "satisfactory"
	RatingLow          Rating = "low"
)

// Rate classifies an efficiency score: above 100 is optimal, 70 and up satisfactory.
func Rate(efficiency float64) Rating {
	switch {
	case efficiency > 100:
		return RatingOptimal
	case efficiency >= 70:
		return RatingSatisfactory
	default:
		return RatingLow
	}
}
