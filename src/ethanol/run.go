package ethanol

import (
	"time"
)

const (
	DefaultSteps      = 100
	DefaultFrameDelay = 100 * time.Millisecond
)

// RunConfig controls the simulation loop.
type RunConfig struct {
	Steps      int
	FrameDelay time.Duration
	// Done stops the loop early when closed (e.g. the window went away). May be nil.
	Done <-chan struct{}
}

// FrameFunc receives the History after each appended Observation. It runs on the
// loop goroutine and must not retain h beyond the call if another goroutine reads it.
type FrameFunc func(h *History, o Observation)

// Run samples cfg.Steps observations into h, calling frame after each one and pausing
// cfg.FrameDelay between steps. It returns the number of completed steps.
func Run(cfg RunConfig, s *Sampler, h *History, frame FrameFunc) (int, error) {
	steps := cfg.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}
	defer TimeTrack(time.Now(), "simulation run")
	start := h.Len()
	for t := start; t < start+steps; t++ {
		if stopped(cfg.Done) {
			Infof("run stopped at step %d of %d", t-start, steps)
			return t - start, nil
		}
		o := s.Sample(t)
		if err := h.Append(o); err != nil {
			return t - start, err
		}
		Debugf("step=%d sugar=%s yeast=%s sugar_g=%.2f yeast_g=%.2f ferment_h=%.2f distill_c=%.2f efficiency=%.2f%% (%s)",
			o.TimeStep, o.SugarType, o.YeastType, o.SugarAmount, o.YeastAmount, o.FermentationTime, o.DistillationTemp, o.Efficiency, Rate(o.Efficiency))
		if frame != nil {
			frame(h, o)
		}
		if cfg.FrameDelay > 0 && !pause(cfg.FrameDelay, cfg.Done) {
			Infof("run stopped at step %d of %d", t-start+1, steps)
			return t - start + 1, nil
		}
	}
	return steps, nil
}

func stopped(done <-chan struct{}) bool {
	if done == nil {
		return false
	}
	select {
	case <-done:
		return true
	default:
		return false
	}
}

// pause waits d; false means done closed first.
func pause(d time.Duration, done <-chan struct{}) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-done:
		return false
	}
}
