package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"prlens/internal/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageFetch     = "fetch.html"
	pagePulls     = "pulls.html"
	pageDashboard = "dashboard.html"
	pageStatus    = "status.html"
)

var funcs = template.FuncMap{
	"maxCount": dashboard.MaxCount,
	"barWidth": barWidth,
	"date": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04")
	},
}

// parsePages builds one template set per page, each sharing the layout.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{pageFetch, pagePulls, pageDashboard, pageStatus} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// barWidth scales count against the largest value in a chart, as a percentage.
func barWidth(count, peak int) int {
	if peak <= 0 {
		return 0
	}
	return count * 100 / peak
}
