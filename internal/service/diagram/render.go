package diagram

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"strings"
	"text/template"
)

const (
	canvasWidth  = 800
	canvasHeight = 600
	boxWidth     = 140
	boxHeight    = 60
	boxSpacing   = 20
	originX      = 50
	originY      = 50
	perRow       = 3
)

// phaseColors cycle over the phases of a chain.
var phaseColors = []string{
	"#ef4444", "#f97316", "#eab308", "#22c55e", "#06b6d4",
	"#8b5cf6", "#ec4899", "#f59e0b", "#10b981", "#6366f1",
}

type box struct {
	X, Y  int
	TextX int
	TextY int
	Fill  string
	Label string
	Arrow *line
}

type line struct {
	X1, Y1, X2, Y2 int
}

var svgTmpl = template.Must(template.New("killchain").Funcs(template.FuncMap{
	"esc": html.EscapeString,
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}">
<rect width="100%" height="100%" fill="#f8fafc"/>
<text x="{{.TitleX}}" y="30" font-family="sans-serif" font-size="20" font-weight="bold" fill="#1f2937" text-anchor="middle">{{esc .Title}}</text>
{{- range .Boxes}}
<rect x="{{.X}}" y="{{.Y}}" width="{{$.BoxW}}" height="{{$.BoxH}}" rx="8" ry="8" fill="{{.Fill}}" stroke="#374151" stroke-width="2"/>
<text x="{{.TextX}}" y="{{.TextY}}" font-family="sans-serif" font-size="12" font-weight="bold" fill="#ffffff" text-anchor="middle" dominant-baseline="middle">{{esc .Label}}</text>
{{- with .Arrow}}
<line x1="{{.X1}}" y1="{{.Y1}}" x2="{{.X2}}" y2="{{.Y2}}" stroke="#374151" stroke-width="2"/>
{{- end}}
{{- end}}
</svg>
`))

// layout places each phase on a grid of perRow columns. A phase is joined to
// the next by a horizontal arrow within a row and a down arrow at row end.
func layout(phases []string) []box {
	boxes := make([]box, len(phases))
	for i, phase := range phases {
		row, col := i/perRow, i%perRow
		x := originX + col*(boxWidth+boxSpacing)
		y := originY + row*(boxHeight+boxSpacing*2)

		b := box{
			X:     x,
			Y:     y,
			TextX: x + boxWidth/2,
			TextY: y + boxHeight/2,
			Fill:  phaseColors[i%len(phaseColors)],
			Label: fmt.Sprintf("%d. %s", i+1, phase),
		}

		if i < len(phases)-1 {
			if (i+1)/perRow == row {
				b.Arrow = &line{x + boxWidth + 5, y + boxHeight/2, x + boxWidth + boxSpacing - 5, y + boxHeight/2}
			} else {
				b.Arrow = &line{x + boxWidth/2, y + boxHeight + 5, x + boxWidth/2, y + boxHeight + boxSpacing - 5}
			}
		}
		boxes[i] = b
	}
	return boxes
}

// RenderSVG draws the template's kill chain as an SVG document.
func RenderSVG(t Template) ([]byte, error) {
	var buf bytes.Buffer
	err := svgTmpl.Execute(&buf, struct {
		Width, Height int
		TitleX        int
		Title         string
		BoxW, BoxH    int
		Boxes         []box
	}{
		Width:  canvasWidth,
		Height: canvasHeight,
		TitleX: canvasWidth / 2,
		Title:  strings.ToUpper(string(t.Name)) + " Kill Chain",
		BoxW:   boxWidth,
		BoxH:   boxHeight,
		Boxes:  layout(t.Phases),
	})
	if err != nil {
		return nil, fmt.Errorf("render %s diagram: %w", t.Name, err)
	}
	return buf.Bytes(), nil
}

// Render returns the template's kill chain as an SVG data reference.
func Render(t Template) (string, error) {
	svg, err := RenderSVG(t)
	if err != nil {
		return "", err
	}
	return svgDataPrefix + base64.StdEncoding.EncodeToString(svg), nil
}
