package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"strings"
	"text/template"

	"gitwrapped/internal/app"
)

const (
	svgWidth  = 1200
	svgHeight = 630
)

//go:embed templates/slide.svg.tmpl
var slideTemplate string

var slideTmpl = template.Must(
	template.New("slide").
		Funcs(template.FuncMap{
			"div": func(a, b int) int { return a / b },
			"sub": func(a, b int) int { return a - b },
		}).
		Parse(slideTemplate),
)

type slideViewModel struct {
	Width  int
	Height int

	Title       string
	Subtitle    string
	Description string
	Footer      string

	TitleSize    int
	TitleY       int
	SubtitleY    int
	DescriptionY int

	Background Gradient
}

// SlideSVG renders one slide of the wrapped as a 1200x630 SVG document.
func SlideSVG(slide int, stats app.Stats, year int) ([]byte, error) {
	content := SlideContent(slide, stats, year)

	titleY := svgHeight/2 + content.TitleSize/3

	vm := slideViewModel{
		Width:  svgWidth,
		Height: svgHeight,

		Title:       html.EscapeString(content.Title),
		Subtitle:    html.EscapeString(strings.ToUpper(content.Subtitle)),
		Description: html.EscapeString(content.Description),
		Footer:      fmt.Sprintf("Git Wrapped %d", year),

		TitleSize:    content.TitleSize,
		TitleY:       titleY,
		SubtitleY:    titleY - content.TitleSize - 20,
		DescriptionY: titleY + 70,

		Background: content.Background,
	}

	var buf bytes.Buffer
	if err := slideTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render slide svg: %w", err)
	}

	return buf.Bytes(), nil
}
