// Ethanol viewer entrypoint.
//
// Two modes:
//  1. Window mode (default): a fyne window shows a dual-axis chart that is rebuilt from the
//     accumulated History after every simulated step; the last frame stays up until the
//     window is closed.
//  2. Headless mode (--headless): same loop without a display, one log line per step and a
//     closing summary.
//
// Design notes:
//   - The simulation goroutine owns the History; the UI thread only ever receives finished
//     images through fyne.Do.
//   - Frames are rendered with go-chart into PNG and decoded into an image.Image, so they can
//     be checked in tests without a display.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/iafilius/EthanolSim/cmd/ethanolviewer/headless"
	"github.com/iafilius/EthanolSim/cmd/ethanolviewer/render"
	"github.com/iafilius/EthanolSim/cmd/ethanolviewer/uihelpers"
	"github.com/iafilius/EthanolSim/src/ethanol"
)

type viewerState struct {
	app    fyne.App
	window fyne.Window
	runID  string
	seed   int64
	steps  int

	// widgets
	frameCanvas *canvas.Image
	statusLabel *widget.Label
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var seed int64
	var logLevel string
	var headlessMode bool
	flag.Int64Var(&seed, "seed", 0, "Random seed for the sampler (0 = time based)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.BoolVar(&headlessMode, "headless", false, "Run the simulation without a window and log each step")
	flag.Parse()

	if err := ethanol.SetLogLevel(logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runID := uuid.New().String()
	ethanol.SetRunTag(runID[:8])
	ethanol.Infof("[init] run_id=%s seed=%d steps=%d frame_delay=%s", runID, seed, ethanol.DefaultSteps, ethanol.DefaultFrameDelay)

	sampler := ethanol.NewSeededSampler(seed)
	if headlessMode {
		headless.Run(sampler, ethanol.DefaultSteps)
		return
	}

	a := app.NewWithID("com.ethanolsim.viewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Ethanol Production Simulator")
	w.Resize(fyne.NewSize(1100, 760))

	state := &viewerState{
		app:    a,
		window: w,
		runID:  runID,
		seed:   seed,
		steps:  ethanol.DefaultSteps,
	}
	cs := chartStateFor(state)
	state.frameCanvas = canvas.NewImageFromImage(render.Blank(cs.Width, cs.Height))
	state.frameCanvas.FillMode = canvas.ImageFillContain
	state.frameCanvas.SetMinSize(fyne.NewSize(float32(cs.Width), float32(cs.Height)))
	state.statusLabel = widget.NewLabel(fmt.Sprintf("Waiting for first step… (seed %d)", seed))

	top := container.NewHBox(
		widget.NewLabel("Run:"), widget.NewLabel(runID[:8]),
		widget.NewLabel("Seed:"), widget.NewLabel(fmt.Sprintf("%d", seed)),
	)
	content := container.NewBorder(top, state.statusLabel, nil, nil, container.NewVScroll(state.frameCanvas))
	w.SetContent(content)

	done := make(chan struct{})
	w.SetOnClosed(func() { close(done) })
	startSimulation(state, sampler, done)

	w.ShowAndRun()
}

// chartStateFor sizes frames from the current window width.
func chartStateFor(state *viewerState) render.State {
	cs := render.DefaultState()
	if state == nil {
		return cs
	}
	if state.steps > 0 {
		cs.TotalSteps = state.steps
	}
	if state.window == nil || state.window.Canvas() == nil {
		return cs
	}
	// ~95% of the available width, minus a small margin for scrollbars/padding
	raw := int(state.window.Canvas().Size().Width*0.95) - 12
	cs.Width, cs.Height = uihelpers.ComputeChartDimensions(raw)
	return cs
}

// startSimulation runs the sampling loop on its own goroutine and pushes each frame to the
// window. After the last step it keeps the final frame sized to the window until done.
func startSimulation(state *viewerState, sampler *ethanol.Sampler, done <-chan struct{}) {
	go func() {
		h := ethanol.NewHistory(state.steps)
		cfg := ethanol.RunConfig{Steps: state.steps, FrameDelay: ethanol.DefaultFrameDelay, Done: done}
		n, err := ethanol.Run(cfg, sampler, h, func(h *ethanol.History, o ethanol.Observation) {
			publishFrame(state, render.Frame(h, chartStateFor(state)), render.StatusText(o, h, state.steps))
		})
		if err != nil {
			ethanol.Errorf("[viewer] simulation aborted after %d steps: %v", n, err)
			return
		}
		if n < state.steps {
			return
		}
		ethanol.Infof("[viewer] run complete steps=%d mean_efficiency=%.2f%%", n, h.MeanEfficiency())
		holdFinalFrame(state, h, done)
	}()
}

// publishFrame hands a finished frame to the UI thread.
func publishFrame(state *viewerState, img image.Image, status string) {
	fyne.Do(func() {
		if state.frameCanvas != nil {
			b := img.Bounds()
			state.frameCanvas.Image = img
			state.frameCanvas.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
			state.frameCanvas.Refresh()
		}
		if state.statusLabel != nil {
			state.statusLabel.SetText(status)
		}
	})
}

// holdFinalFrame re-renders the finished history whenever the window width changes.
func holdFinalFrame(state *viewerState, h *ethanol.History, done <-chan struct{}) {
	prevW := chartStateFor(state).Width
	t := time.NewTicker(300 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			cs := chartStateFor(state)
			if cs.Width == prevW {
				continue
			}
			prevW = cs.Width
			ethanol.Debugf("[viewer] window resized; redrawing final frame at %dx%d", cs.Width, cs.Height)
			last, _ := h.Last()
			publishFrame(state, render.Frame(h, cs), render.StatusText(last, h, state.steps))
		}
	}
}
