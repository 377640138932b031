// Package web embeds the server-rendered views and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Display formats
const (
	displayDateLayout = "02/01/2006"
)

// Funcs are the helpers available to every view
var Funcs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(displayDateLayout)
	},
	"formatMoney": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"fieldError": func(errs map[string]string, field string) string {
		return errs[field]
	},
	"year": func() int {
		return time.Now().Year()
	},
}

// Templates parses every embedded view. Views are addressed by the names
// they define, such as "seller/index" or "home/error".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}

// MustTemplates is Templates for callers that cannot continue without views
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Static returns the embedded assets rooted at the static directory
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
