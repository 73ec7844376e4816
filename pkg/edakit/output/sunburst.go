package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"image/color"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/ukaji3/edakit-go/pkg/edakit/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	sunburstSize   = 9 * vg.Inch
	sunburstMargin = 10 * vg.Millimeter
	// sunburstHole is the radius of the empty center relative to the outer radius.
	sunburstHole = 0.15
)

// Palette of the outermost segments; inner rings are lighter tints.
var sunburstPalette = []color.RGBA{
	{R: 84, G: 112, B: 198, A: 255},
	{R: 145, G: 204, B: 117, A: 255},
	{R: 250, G: 200, B: 88, A: 255},
	{R: 238, G: 102, B: 102, A: 255},
	{R: 115, G: 192, B: 222, A: 255},
	{R: 59, G: 162, B: 114, A: 255},
	{R: 252, G: 132, B: 82, A: 255},
	{R: 154, G: 96, B: 180, A: 255},
	{R: 234, G: 124, B: 204, A: 255},
}

var sunburstPage = template.Must(template.New("sunburst").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
body { font-family: sans-serif; margin: 24px; }
h1 { font-size: 20px; font-weight: normal; }
</style>
</head>
<body>
<h1>{{ .Title }}</h1>
{{ .SVG }}
</body>
</html>
`))

// WriteSunburstHTML renders the chart as a standalone HTML page.
// The chart is an inline SVG; the page references no external resources.
func WriteSunburstHTML(w io.Writer, chart *models.SunburstChart) error {
	svg, err := SunburstSVG(chart)
	if err != nil {
		return err
	}
	return sunburstPage.Execute(w, struct {
		Title string
		SVG   template.HTML
	}{
		Title: chart.Title,
		SVG:   template.HTML(svg),
	})
}

// SunburstSVG draws the chart as an SVG document without the XML declaration.
// Segments show their names; with LabelsOnly unset the row count follows the name.
func SunburstSVG(chart *models.SunburstChart) ([]byte, error) {
	c := vgsvg.New(sunburstSize, sunburstSize)
	dc := draw.New(c)

	depth := treeDepth(chart.Roots)
	outer := sunburstSize/2 - sunburstMargin
	inner := vg.Length(float64(outer) * sunburstHole)
	d := &sunburstDrawer{
		c:      dc,
		center: dc.Center(),
		inner:  inner,
		ring:   (outer - inner) / vg.Length(max(depth, 1)),
		labels: !chart.LabelsOnly,
		text: draw.TextStyle{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, 9),
			XAlign:  draw.XCenter,
			YAlign:  draw.YCenter,
			Handler: plot.DefaultTextHandler,
		},
	}

	total := 0
	for _, n := range chart.Roots {
		total += n.Value
	}
	start := math.Pi / 2
	for i, n := range chart.Roots {
		if total == 0 {
			break
		}
		sweep := 2 * math.Pi * float64(n.Value) / float64(total)
		d.segment(n, 0, start, sweep, sunburstPalette[i%len(sunburstPalette)])
		start += sweep
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write svg: %w", err)
	}
	out := buf.Bytes()
	if i := bytes.Index(out, []byte("<svg")); i > 0 {
		out = out[i:]
	}
	return out, nil
}

type sunburstDrawer struct {
	c      draw.Canvas
	center vg.Point
	inner  vg.Length
	ring   vg.Length
	labels bool
	text   draw.TextStyle
}

func (d *sunburstDrawer) segment(n *models.SunburstNode, level int, start, sweep float64, base color.RGBA) {
	r0 := d.inner + vg.Length(level)*d.ring
	r1 := r0 + d.ring

	var p vg.Path
	p.Move(polar(d.center, r0, start))
	p.Arc(d.center, r1, start, sweep)
	p.Line(polar(d.center, r0, start+sweep))
	p.Arc(d.center, r0, start+sweep, -sweep)
	p.Close()

	d.c.SetColor(tint(base, level))
	d.c.Fill(p)
	d.c.SetColor(color.White)
	d.c.SetLineWidth(vg.Points(1))
	d.c.Stroke(p)

	mid := (r0 + r1) / 2
	if sweep*float64(mid) >= 2*float64(d.text.Font.Size) {
		label := n.Name
		if d.labels {
			label = fmt.Sprintf("%s (%d)", n.Name, n.Value)
		}
		d.c.FillText(d.text, polar(d.center, mid, start+sweep/2), label)
	}

	if n.Value == 0 {
		return
	}
	childStart := start
	for _, child := range n.Children {
		childSweep := sweep * float64(child.Value) / float64(n.Value)
		d.segment(child, level+1, childStart, childSweep, base)
		childStart += childSweep
	}
}

func polar(center vg.Point, r vg.Length, angle float64) vg.Point {
	sin, cos := math.Sincos(angle)
	return vg.Point{X: center.X + r*vg.Length(cos), Y: center.Y + r*vg.Length(sin)}
}

// tint blends c toward white, more for deeper rings.
func tint(c color.RGBA, level int) color.RGBA {
	f := math.Min(0.18*float64(level), 0.7)
	blend := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*f)
	}
	return color.RGBA{R: blend(c.R), G: blend(c.G), B: blend(c.B), A: 255}
}

func treeDepth(nodes []*models.SunburstNode) int {
	depth := 0
	for _, n := range nodes {
		if d := 1 + treeDepth(n.Children); d > depth {
			depth = d
		}
	}
	return depth
}

// SunburstOption builds the ECharts sunburst for the chart.
func SunburstOption(chart *models.SunburstChart) *charts.Sunburst {
	sb := charts.NewSunburst()
	sb.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: chart.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(!chart.LabelsOnly)}),
	)

	label := opts.Label{Show: opts.Bool(true)}
	if chart.LabelsOnly {
		label.Formatter = "{b}"
	}
	sb.AddSeries(chart.Partition, SunburstData(chart.Roots), charts.WithLabelOpts(label))
	return sb
}

// WriteSunburstOption writes the ECharts option object as indented JSON,
// ready to pass to echarts setOption.
func WriteSunburstOption(w io.Writer, chart *models.SunburstChart) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(SunburstOption(chart).JSON())
}

// SunburstData converts chart nodes to echarts sunburst data.
func SunburstData(nodes []*models.SunburstNode) []opts.SunBurstData {
	data := make([]opts.SunBurstData, 0, len(nodes))
	for _, n := range nodes {
		data = append(data, toSunburstData(n))
	}
	return data
}

func toSunburstData(n *models.SunburstNode) opts.SunBurstData {
	d := opts.SunBurstData{
		Name:  n.Name,
		Value: float64(n.Value),
	}
	for _, c := range n.Children {
		child := toSunburstData(c)
		d.Children = append(d.Children, &child)
	}
	return d
}
