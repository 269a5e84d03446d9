// Package web renders the HTML dashboard.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/f1dash/laptime"
	"github.com/padraicbc/f1dash/season"
)

// DashboardTemplate is the template name of the dashboard page.
const DashboardTemplate = "dashboard"

//go:embed templates/*.html
var templates embed.FS

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

var funcs = template.FuncMap{
	"laptime": laptime.Format,
	"tick":    laptime.Tick,
	"percent": func(share float64) string {
		return fmt.Sprintf("%.0f%%", share*100)
	},
	"points": func(p float64) string {
		return fmt.Sprintf("%g", p)
	},
	"maxCount": func(rows []season.DriverCount) int {
		top := 0
		for _, r := range rows {
			top = max(top, r.Count)
		}
		return top
	},
}
