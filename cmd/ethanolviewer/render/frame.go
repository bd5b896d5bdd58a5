// Package render turns an ethanol History into chart frames for the viewer. It has no
// display dependency, so frames can be built and checked anywhere.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/iafilius/EthanolSim/cmd/ethanolviewer/uihelpers"
	"github.com/iafilius/EthanolSim/src/ethanol"
)

const (
	frameTitle         = "Real-Time Ethanol Production Efficiency"
	efficiencyAxisName = "Efficiency (%)"
	quantityAxisName   = "Amount / Time"
	timeAxisName       = "Time Step"
	efficiencyAxisMax  = 120.0
)

// series names as shown in the legend
const (
	seriesEfficiency   = "Efficiency"
	seriesSugarAmount  = "Sugar Amount (grams)"
	seriesYeastAmount  = "Yeast Amount (grams)"
	seriesFermentation = "Fermentation Time (hrs)"
)

var colorPurple = drawing.ColorFromHex("800080")

// State is everything a frame needs besides the History. It is passed by value to
// Frame, which builds each frame from scratch.
type State struct {
	Width       int
	Height      int
	TotalSteps  int
	ShowCaption bool
}

// DefaultState sizes frames for a 1000px wide window.
func DefaultState() State {
	w, h := uihelpers.ComputeChartDimensions(1000)
	return State{Width: w, Height: h, TotalSteps: ethanol.DefaultSteps, ShowCaption: true}
}

func lineStyle(col drawing.Color, dash []float64) chart.Style {
	return chart.Style{
		StrokeColor:     col,
		StrokeWidth:     2,
		StrokeDashArray: dash,
	}
}

// xsAndPad returns the time-step X values for the history. go-chart cannot render a
// zero-width X range, so a single point is stretched to two.
func xsAndPad(h *ethanol.History) []float64 {
	xs := make([]float64, h.Len())
	for i, t := range h.TimeSteps {
		xs[i] = float64(t)
	}
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
	}
	return xs
}

func padYs(ys []float64) []float64 {
	out := append([]float64(nil), ys...)
	if len(out) == 1 {
		out = append(out, out[0])
	}
	return out
}

func axisTicks(min, max float64, n int) []chart.Tick {
	vals := uihelpers.BuildAxisTicks(min, max, n)
	ticks := make([]chart.Tick, 0, len(vals))
	for _, v := range vals {
		ticks = append(ticks, chart.Tick{Value: v, Label: uihelpers.FormatNumericTick(v)})
	}
	return ticks
}

// timeAxisTicks labels whole time steps only; fractional tick positions are dropped.
func timeAxisTicks(xMax float64) []chart.Tick {
	n := int(xMax) + 1
	if n > 11 {
		n = 11
	}
	var ticks []chart.Tick
	for _, v := range uihelpers.BuildAxisTicks(0, xMax, n) {
		if v != math.Trunc(v) {
			continue
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}
	return ticks
}

// BuildChart assembles the dual-axis chart for the history. The history must not be empty.
func BuildChart(h *ethanol.History, cs State) chart.Chart {
	xs := xsAndPad(h)
	secMax := uihelpers.SecondaryAxisMax(h.MaxQuantity())
	xMax := uihelpers.TimeAxisMax(h.Len())
	padBottom := 32
	if cs.ShowCaption {
		padBottom += 20
	}
	ch := chart.Chart{
		Title:      frameTitle,
		Width:      cs.Width,
		Height:     cs.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: padBottom}},
		XAxis: chart.XAxis{
			Name:  timeAxisName,
			Range: &chart.ContinuousRange{Min: 0, Max: xMax},
			Ticks: timeAxisTicks(xMax),
		},
		YAxis: chart.YAxis{
			Name:  efficiencyAxisName,
			Range: &chart.ContinuousRange{Min: 0, Max: efficiencyAxisMax},
			Ticks: axisTicks(0, efficiencyAxisMax, 7),
		},
		YAxisSecondary: chart.YAxis{
			Name:  quantityAxisName,
			Range: &chart.ContinuousRange{Min: 0, Max: secMax},
			Ticks: axisTicks(0, secMax, 6),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: seriesEfficiency, XValues: xs, YValues: padYs(h.Efficiencies), Style: lineStyle(chart.ColorBlue, nil)},
			chart.ContinuousSeries{Name: seriesSugarAmount, YAxis: chart.YAxisSecondary, XValues: xs, YValues: padYs(h.SugarAmounts), Style: lineStyle(chart.ColorRed, []float64{6, 4})},
			chart.ContinuousSeries{Name: seriesYeastAmount, YAxis: chart.YAxisSecondary, XValues: xs, YValues: padYs(h.YeastAmounts), Style: lineStyle(chart.ColorGreen, []float64{8, 4, 2, 4})},
			chart.ContinuousSeries{Name: seriesFermentation, YAxis: chart.YAxisSecondary, XValues: xs, YValues: padYs(h.FermentationTimes), Style: lineStyle(colorPurple, []float64{2, 3})},
		},
	}
	ch.Elements = []chart.Renderable{
		axisLegend(&ch, chart.YAxisPrimary, false),
		axisLegend(&ch, chart.YAxisSecondary, true),
	}
	return ch
}

// Frame draws the whole history into a new image. Empty histories and render
// errors yield a blank frame so the window always has something to show.
func Frame(h *ethanol.History, cs State) image.Image {
	if h == nil || h.Len() == 0 {
		return Blank(cs.Width, cs.Height)
	}
	ch := BuildChart(h, cs)
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		ethanol.Warnf("[viewer] frame render error at step %d: %v; showing blank fallback", h.Len()-1, err)
		return Blank(cs.Width, cs.Height)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		ethanol.Warnf("[viewer] frame decode error at step %d: %v; showing blank fallback", h.Len()-1, err)
		return Blank(cs.Width, cs.Height)
	}
	if cs.ShowCaption {
		if last, ok := h.Last(); ok {
			return drawCaption(img, captionText(last, cs.TotalSteps))
		}
	}
	return img
}

// captionText summarizes the categorical inputs of the latest step, which the lines can't show.
func captionText(o ethanol.Observation, totalSteps int) string {
	return fmt.Sprintf("step %d/%d  %s + %s  efficiency %.2f%% (%s)",
		o.TimeStep+1, totalSteps, o.SugarType, o.YeastType, o.Efficiency, ethanol.Rate(o.Efficiency))
}

// drawCaption draws a small caption string onto the image near the bottom-left.
func drawCaption(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	face := basicfont.Face7x13
	pad := 6
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

// Blank is the dark placeholder frame.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 18, G: 18, B: 18, A: 255}), image.Point{}, draw.Src)
	return img
}
