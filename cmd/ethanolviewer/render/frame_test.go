package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"strings"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/EthanolSim/src/ethanol"
)

func seededHistory(t *testing.T, steps int, seed int64) *ethanol.History {
	t.Helper()
	ethanol.SetLogOutput(io.Discard)
	h := ethanol.NewHistory(steps)
	if _, err := ethanol.Run(ethanol.RunConfig{Steps: steps}, ethanol.NewSeededSampler(seed), h, nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	return h
}

func assertBounds(t *testing.T, img image.Image, w, h int) {
	t.Helper()
	if img == nil {
		t.Fatalf("nil frame")
	}
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("frame size %dx%d want %dx%d", b.Dx(), b.Dy(), w, h)
	}
}

func TestRenderFrame_EmptyHistoryIsBlank(t *testing.T) {
	cs := DefaultState()
	img := Frame(ethanol.NewHistory(0), cs)
	assertBounds(t, img, cs.Width, cs.Height)
	r, g, b, _ := img.At(cs.Width/2, cs.Height/2).RGBA()
	if r>>8 != 18 || g>>8 != 18 || b>>8 != 18 {
		t.Fatalf("expected blank background pixel, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
	assertBounds(t, Frame(nil, cs), cs.Width, cs.Height)
}

func TestRenderFrame_SinglePoint(t *testing.T) {
	cs := DefaultState()
	cs.ShowCaption = false
	img := Frame(seededHistory(t, 1, 11), cs)
	assertBounds(t, img, cs.Width, cs.Height)
	// a real chart is mostly white background, unlike the dark blank fallback
	if share := lightPixelShare(img); share < 0.5 {
		t.Fatalf("expected a rendered chart, light pixel share %.2f (blank fallback?)", share)
	}
}

func lightPixelShare(img image.Image) float64 {
	b := img.Bounds()
	light := 0
	for y := b.Min.Y; y < b.Max.Y; y += 4 {
		for x := b.Min.X; x < b.Max.X; x += 4 {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r>>8 > 200 && g>>8 > 200 && bl>>8 > 200 {
				light++
			}
		}
	}
	total := ((b.Dy() + 3) / 4) * ((b.Dx() + 3) / 4)
	return float64(light) / float64(total)
}

func TestRenderFrame_FullRun(t *testing.T) {
	cs := State{Width: 900, Height: 540, TotalSteps: 100, ShowCaption: true}
	img := Frame(seededHistory(t, 100, 12), cs)
	assertBounds(t, img, 900, 540)
	if share := lightPixelShare(img); share < 0.5 {
		t.Fatalf("expected a rendered chart, light pixel share %.2f", share)
	}
}

func TestBuildChart_AxesAndSeries(t *testing.T) {
	h := seededHistory(t, 25, 13)
	ch := BuildChart(h, DefaultState())

	if ch.Title != "Real-Time Ethanol Production Efficiency" {
		t.Fatalf("unexpected title %q", ch.Title)
	}
	if ch.XAxis.Name != "Time Step" || ch.YAxis.Name != "Efficiency (%)" || ch.YAxisSecondary.Name != "Amount / Time" {
		t.Fatalf("unexpected axis names: %q %q %q", ch.XAxis.Name, ch.YAxis.Name, ch.YAxisSecondary.Name)
	}
	pr := ch.YAxis.Range.(*chart.ContinuousRange)
	if pr.Min != 0 || pr.Max != 120 {
		t.Fatalf("efficiency axis must be [0,120], got [%v,%v]", pr.Min, pr.Max)
	}
	sr := ch.YAxisSecondary.Range.(*chart.ContinuousRange)
	if sr.Min != 0 || math.Abs(sr.Max-1.1*h.MaxQuantity()) > 1e-9 {
		t.Fatalf("quantity axis must be [0,1.1*max]=[0,%v], got [%v,%v]", 1.1*h.MaxQuantity(), sr.Min, sr.Max)
	}
	xr := ch.XAxis.Range.(*chart.ContinuousRange)
	if xr.Min != 0 || xr.Max != 24 {
		t.Fatalf("time axis must span the recorded steps, got [%v,%v]", xr.Min, xr.Max)
	}

	if len(ch.Series) != 4 {
		t.Fatalf("expected 4 series, got %d", len(ch.Series))
	}
	want := []struct {
		name      string
		secondary bool
		values    []float64
	}{
		{"Efficiency", false, h.Efficiencies},
		{"Sugar Amount (grams)", true, h.SugarAmounts},
		{"Yeast Amount (grams)", true, h.YeastAmounts},
		{"Fermentation Time (hrs)", true, h.FermentationTimes},
	}
	dashes := map[string]bool{}
	colors := map[string]bool{}
	for i, w := range want {
		cs, ok := ch.Series[i].(chart.ContinuousSeries)
		if !ok {
			t.Fatalf("series %d: unexpected type %T", i, ch.Series[i])
		}
		if cs.Name != w.name {
			t.Fatalf("series %d name %q want %q", i, cs.Name, w.name)
		}
		if (cs.YAxis == chart.YAxisSecondary) != w.secondary {
			t.Fatalf("series %q secondary=%v want %v", cs.Name, cs.YAxis == chart.YAxisSecondary, w.secondary)
		}
		if len(cs.XValues) != h.Len() || len(cs.YValues) != h.Len() {
			t.Fatalf("series %q lengths x=%d y=%d want %d", cs.Name, len(cs.XValues), len(cs.YValues), h.Len())
		}
		for j := range w.values {
			if cs.YValues[j] != w.values[j] || cs.XValues[j] != float64(j) {
				t.Fatalf("series %q point %d mismatch", cs.Name, j)
			}
		}
		dashes[formatDash(cs.Style.StrokeDashArray)] = true
		colors[fmt.Sprintf("%v", cs.Style.StrokeColor)] = true
	}
	if len(dashes) != 4 || len(colors) != 4 {
		t.Fatalf("expected four distinct line styles and colors, got %d styles %d colors", len(dashes), len(colors))
	}
	if len(ch.Elements) != 2 {
		t.Fatalf("expected one legend per axis, got %d elements", len(ch.Elements))
	}
}

func TestBuildChart_SinglePointPadded(t *testing.T) {
	h := seededHistory(t, 1, 14)
	ch := BuildChart(h, DefaultState())
	for _, s := range ch.Series {
		cs := s.(chart.ContinuousSeries)
		if len(cs.XValues) != 2 || len(cs.YValues) != 2 {
			t.Fatalf("series %q not padded: x=%v y=%v", cs.Name, cs.XValues, cs.YValues)
		}
		if cs.YValues[0] != cs.YValues[1] {
			t.Fatalf("padding should repeat the single value: %v", cs.YValues)
		}
	}
	xr := ch.XAxis.Range.(*chart.ContinuousRange)
	if xr.Max <= xr.Min {
		t.Fatalf("time axis must have a non-zero span, got [%v,%v]", xr.Min, xr.Max)
	}
	// padding must not leak into the history itself
	if len(h.Efficiencies) != 1 {
		t.Fatalf("history mutated by padding: %v", h.Efficiencies)
	}
}

func TestCaptionText(t *testing.T) {
	o := ethanol.Observation{
		TimeStep:   41,
		Efficiency: 223.08,
		Inputs:     ethanol.Inputs{SugarType: ethanol.Fructose, YeastType: ethanol.ZymomonasMobilis},
	}
	got := captionText(o, 100)
	for _, part := range []string{"step 42/100", "fructose + Zymomonas mobilis", "223.08%", "(optimal)"} {
		if !strings.Contains(got, part) {
			t.Fatalf("caption %q missing %q", got, part)
		}
	}
}

func TestDrawCaption(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 100))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	out := drawCaption(src, "step 1/100")
	if out.Bounds() != src.Bounds() {
		t.Fatalf("caption changed bounds")
	}
	// caption box sits bottom-left over a dark background
	r, _, _, _ := out.At(10, 95).RGBA()
	if r>>8 > 128 {
		t.Fatalf("expected dark caption background at bottom-left, got r=%d", r>>8)
	}
	// source untouched
	if src.Pix[0] != 255 {
		t.Fatalf("source image modified")
	}
	if drawCaption(src, "   ") != image.Image(src) {
		t.Fatalf("empty caption should return the input image")
	}
}

func formatDash(d []float64) string {
	var b strings.Builder
	for _, v := range d {
		b.WriteString(chart.FloatValueFormatter(v))
		b.WriteByte(',')
	}
	return b.String()
}

func TestTimeAxisTicks(t *testing.T) {
	for _, xMax := range []float64{1, 2, 7, 24, 99} {
		ticks := timeAxisTicks(xMax)
		if len(ticks) < 2 {
			t.Fatalf("xMax=%v: expected >=2 ticks, got %v", xMax, ticks)
		}
		if ticks[0].Value != 0 || ticks[len(ticks)-1].Value != xMax {
			t.Fatalf("xMax=%v: ticks must span [0,%v], got %v", xMax, xMax, ticks)
		}
		for _, tk := range ticks {
			if tk.Value != math.Trunc(tk.Value) || tk.Label != fmt.Sprintf("%d", int(tk.Value)) {
				t.Fatalf("xMax=%v: non-integer tick %+v", xMax, tk)
			}
		}
	}
}

func TestLegendEntriesPerAxis(t *testing.T) {
	ch := BuildChart(seededHistory(t, 5, 15), DefaultState())
	primary, primaryLines := legendEntries(&ch, chart.YAxisPrimary)
	if len(primary) != 1 || primary[0] != "Efficiency" || len(primaryLines) != 1 {
		t.Fatalf("primary legend %v", primary)
	}
	secondary, _ := legendEntries(&ch, chart.YAxisSecondary)
	want := []string{"Sugar Amount (grams)", "Yeast Amount (grams)", "Fermentation Time (hrs)"}
	if strings.Join(secondary, "|") != strings.Join(want, "|") {
		t.Fatalf("secondary legend %v want %v", secondary, want)
	}
}

func TestAxisLegendsDrawInOppositeCorners(t *testing.T) {
	cs := State{Width: 900, Height: 540, TotalSteps: 100}
	img := Frame(seededHistory(t, 10, 16), cs)
	assertBounds(t, img, 900, 540)
	// both legend boxes have a dark border; look for one in each top quarter of the plot
	dark := func(x0, x1 int) bool {
		for y := 40; y < cs.Height/3; y++ {
			for x := x0; x < x1; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				if r>>8 < 60 && g>>8 < 60 && b>>8 < 60 {
					return true
				}
			}
		}
		return false
	}
	if !dark(cs.Width/8, cs.Width/3) {
		t.Fatalf("no legend drawn at the left")
	}
	if !dark(cs.Width*2/3, cs.Width*7/8) {
		t.Fatalf("no legend drawn at the right")
	}
}
