package output

import (
	"bytes"
	"fmt"
	"html/template"
	"math"

	"github.com/WouterdeVisser/LangeTermijnBeleggen/internal/domain"
	pkgdecimal "github.com/WouterdeVisser/LangeTermijnBeleggen/pkg/decimal"
)

// HTMLFormatter produces a self-contained HTML report with an SVG chart of
// the percentile curves: a dotted vertical marker at the end of
// accumulation, an optional milestone marker, value labels at both markers
// and a cross where each curve first reaches zero.
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string { return "html" }
func (HTMLFormatter) Ext() string  { return "html" }

// Chart geometry in SVG user units.
const (
	chartWidth   = 1060.0
	chartHeight  = 560.0
	chartLeft    = 90.0
	chartRight   = 30.0
	chartTop     = 40.0
	chartBottom  = 50.0
	plotWidth    = chartWidth - chartLeft - chartRight
	plotHeight   = chartHeight - chartTop - chartBottom
	yTickCount   = 5
	xTickSpacing = 5
)

// curveColors follow the original red-to-green palette, cycled when more
// curves are requested.
var curveColors = []string{"darkred", "red", "orange", "gold", "limegreen", "green", "darkgreen"}

type htmlCurve struct {
	Percentile int
	Color      string
	Points     string
	BuildLabel htmlLabel
	Milestone  *htmlLabel
	Zero       *htmlPoint
	ZeroYear   int
}

type htmlLabel struct {
	X, Y  float64
	Value string
}

type htmlPoint struct {
	X, Y float64
}

type htmlTick struct {
	Pos   float64
	Label string
}

type htmlView struct {
	Title        string
	Subtitle     string
	Width        float64
	Height       float64
	PlotLeft     float64
	PlotTop      float64
	PlotRightX   float64
	PlotBottomY  float64
	Curves       []htmlCurve
	BuildX       float64
	HasMilestone bool
	MilestoneX   float64
	XTicks       []htmlTick
	YTicks       []htmlTick
	NumScenarios int
	Seed         int64
}

func (hf HTMLFormatter) Format(res *domain.SimulationResult, params *domain.Parameters) ([]byte, error) {
	view := buildHTMLView(res, params)
	var buf bytes.Buffer
	if err := chartTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render HTML chart: %w", err)
	}
	return buf.Bytes(), nil
}

func buildHTMLView(res *domain.SimulationResult, params *domain.Parameters) htmlView {
	maxY := 1.0
	for _, curve := range res.Curves {
		for _, v := range curve.Values {
			if v > maxY {
				maxY = v
			}
		}
	}

	lastYear := res.TotalYears - 1
	scaleX := func(t int) float64 {
		if lastYear == 0 {
			return chartLeft
		}
		return chartLeft + float64(t)/float64(lastYear)*plotWidth
	}
	scaleY := func(v float64) float64 {
		return chartTop + (1-v/maxY)*plotHeight
	}

	milestone, hasMilestone := milestoneYear(res, params)
	buildYear := res.Flows.YearsBuild
	if buildYear > lastYear {
		buildYear = lastYear
	}

	view := htmlView{
		Title:        "Monte Carlo vermogenssimulatie",
		Subtitle:     fmt.Sprintf("%d scenarios, %d years, seed %d", res.NumScenarios, res.TotalYears, res.Seed),
		Width:        chartWidth,
		Height:       chartHeight,
		PlotLeft:     chartLeft,
		PlotTop:      chartTop,
		PlotRightX:   chartWidth - chartRight,
		PlotBottomY:  chartHeight - chartBottom,
		BuildX:       scaleX(buildYear),
		NumScenarios: res.NumScenarios,
		Seed:         res.Seed,
	}
	if hasMilestone {
		view.HasMilestone = true
		view.MilestoneX = scaleX(milestone)
	}

	for i, curve := range res.Curves {
		var points bytes.Buffer
		for t, v := range curve.Values {
			if t > 0 {
				points.WriteByte(' ')
			}
			fmt.Fprintf(&points, "%.1f,%.1f", scaleX(t), scaleY(v))
		}

		hc := htmlCurve{
			Percentile: curve.Percentile,
			Color:      curveColors[i%len(curveColors)],
			Points:     points.String(),
			BuildLabel: htmlLabel{
				X:     scaleX(buildYear) + 4,
				Y:     scaleY(curve.Values[buildYear]) - 4,
				Value: pkgdecimal.FormatFloat(curve.Values[buildYear]),
			},
		}
		if hasMilestone {
			hc.Milestone = &htmlLabel{
				X:     scaleX(milestone) + 4,
				Y:     scaleY(curve.Values[milestone]) - 4,
				Value: pkgdecimal.FormatFloat(curve.Values[milestone]),
			}
		}
		if zero := res.ZeroCrossings[curve.Percentile]; zero != nil {
			hc.Zero = &htmlPoint{X: scaleX(*zero), Y: scaleY(0)}
			hc.ZeroYear = *zero
		}
		view.Curves = append(view.Curves, hc)
	}

	for t := 0; t <= lastYear; t += xTickSpacing {
		view.XTicks = append(view.XTicks, htmlTick{Pos: scaleX(t), Label: fmt.Sprintf("%d", t)})
	}
	for i := 0; i <= yTickCount; i++ {
		v := maxY * float64(i) / yTickCount
		view.YTicks = append(view.YTicks, htmlTick{
			Pos:   scaleY(v),
			Label: pkgdecimal.FormatFloat(math.Round(v)),
		})
	}
	return view
}

var chartTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html lang="nl">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; margin-bottom: 0.1em; }
.subtitle { color: #666; margin-bottom: 1em; }
.legend span { margin-right: 1.2em; font-size: 0.9em; }
.swatch { display: inline-block; width: 0.9em; height: 0.9em; margin-right: 0.3em; vertical-align: middle; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="subtitle">{{.Subtitle}}</div>
<svg width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
  <rect x="0" y="0" width="{{.Width}}" height="{{.Height}}" fill="white"/>
  {{- range .YTicks}}
  <line x1="{{$.PlotLeft}}" y1="{{.Pos}}" x2="{{$.PlotRightX}}" y2="{{.Pos}}" stroke="#eee"/>
  <text x="{{$.PlotLeft}}" y="{{.Pos}}" dx="-6" dy="4" text-anchor="end" font-size="11">{{.Label}}</text>
  {{- end}}
  {{- range .XTicks}}
  <text x="{{.Pos}}" y="{{$.PlotBottomY}}" dy="16" text-anchor="middle" font-size="11">{{.Label}}</text>
  {{- end}}
  <line x1="{{.BuildX}}" y1="{{.PlotTop}}" x2="{{.BuildX}}" y2="{{.PlotBottomY}}" stroke="black" stroke-dasharray="2,4"/>
  {{- if .HasMilestone}}
  <line x1="{{.MilestoneX}}" y1="{{.PlotTop}}" x2="{{.MilestoneX}}" y2="{{.PlotBottomY}}" stroke="red" stroke-dasharray="6,4"/>
  {{- end}}
  {{- range .Curves}}
  <polyline points="{{.Points}}" fill="none" stroke="{{.Color}}" stroke-width="2"/>
  <text x="{{.BuildLabel.X}}" y="{{.BuildLabel.Y}}" font-size="11" font-weight="bold">{{.BuildLabel.Value}}</text>
  {{- if .Milestone}}
  <text x="{{.Milestone.X}}" y="{{.Milestone.Y}}" font-size="11" font-weight="bold">{{.Milestone.Value}}</text>
  {{- end}}
  {{- if .Zero}}
  <text x="{{.Zero.X}}" y="{{.Zero.Y}}" text-anchor="middle" font-size="16" fill="{{.Color}}">&#x2715;</text>
  {{- end}}
  {{- end}}
  <line x1="{{.PlotLeft}}" y1="{{.PlotBottomY}}" x2="{{.PlotRightX}}" y2="{{.PlotBottomY}}" stroke="#333"/>
  <line x1="{{.PlotLeft}}" y1="{{.PlotTop}}" x2="{{.PlotLeft}}" y2="{{.PlotBottomY}}" stroke="#333"/>
</svg>
<div class="legend">
  {{- range .Curves}}
  <span><span class="swatch" style="background:{{.Color}}"></span>P{{.Percentile}}{{if .Zero}} (op 0 in jaar {{.ZeroYear}}){{end}}</span>
  {{- end}}
</div>
</body>
</html>
`))
