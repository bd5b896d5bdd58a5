package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// legendEntries returns the visible series plotted against axis, in chart order.
func legendEntries(c *chart.Chart, axis chart.YAxisType) (labels []string, lines []chart.Style) {
	for _, s := range c.Series {
		if s.GetYAxis() != axis || s.GetStyle().Hidden || s.GetName() == "" {
			continue
		}
		labels = append(labels, s.GetName())
		lines = append(lines, s.GetStyle())
	}
	return labels, lines
}

// axisLegend is chart.Legend limited to one Y axis. The primary legend sits top-left
// inside the plot, the secondary one top-right next to its axis.
func axisLegend(c *chart.Chart, axis chart.YAxisType, alignRight bool) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
		labels, lines := legendEntries(c, axis)
		if len(labels) == 0 {
			return
		}
		style := chartDefaults.InheritFrom(chart.Style{
			FillColor:   drawing.ColorWhite,
			FontColor:   chart.DefaultTextColor,
			FontSize:    8.0,
			StrokeColor: chart.DefaultAxisColor,
			StrokeWidth: chart.DefaultAxisLineWidth,
		})
		const pad, gap, lineLen = 5, 5, 25

		style.GetTextOptions().WriteToRenderer(r)
		contentW, contentH := 0, 0
		for i, l := range labels {
			tb := r.MeasureText(l)
			if i > 0 {
				contentH += chart.DefaultMinimumTickVerticalSpacing
			}
			contentH += tb.Height()
			if w := tb.Width() + gap + lineLen; w > contentW {
				contentW = w
			}
		}

		box := chart.Box{Top: cb.Top, Left: cb.Left}
		if alignRight {
			box.Left = cb.Right - contentW - 2*pad
		}
		box.Right = box.Left + contentW + 2*pad
		box.Bottom = box.Top + contentH + 2*pad
		chart.Draw.Box(r, box, style)

		style.GetTextOptions().WriteToRenderer(r)
		tx := box.Left + pad
		y := box.Top + pad
		for i, l := range labels {
			if i > 0 {
				y += chart.DefaultMinimumTickVerticalSpacing
			}
			tb := r.MeasureText(l)
			ty := y + tb.Height()
			r.Text(l, tx, ty)

			ly := ty - tb.Height()>>1
			r.SetStrokeColor(lines[i].GetStrokeColor())
			r.SetStrokeWidth(lines[i].GetStrokeWidth())
			r.SetStrokeDashArray(lines[i].GetStrokeDashArray())
			r.MoveTo(tx+tb.Width()+gap, ly)
			r.LineTo(box.Right-pad, ly)
			r.Stroke()
			y += tb.Height()
		}
	}
}
