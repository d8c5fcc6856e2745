package web

import (
	"embed"
	"html/template"
	"io"
	"perfume-designer/internal/session"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Page is the data every view receives. Name selects the section rendered by
// index.gohtml.
type Page struct {
	Name    string
	Admin   bool
	Flashes []session.Flash
	Data    interface{}
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
