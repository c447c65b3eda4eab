package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/csrf"

	"coala/internal/adapters/http/icon"
	homeDomain "coala/internal/domain/home"
	"coala/internal/domain/navigation"
	"coala/internal/domain/user"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// SiteFooter is the copyright line under every page.
const SiteFooter = "(c) 2026 동아리 코알라. All rights reserved."

func staticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// sharedTemplates are parsed into every page.
var sharedTemplates = []string{"templates/layout.html", "templates/partials.html"}

var (
	pagesOnce sync.Once
	pages     map[string]*template.Template
	pagesErr  error
)

var funcMap = template.FuncMap{
	"icon": func(name string, size int) template.HTML { return icon.SVG(name, size) },
	"add":  func(a, b int) int { return a + b },
	"sub":  func(a, b int) int { return a - b },
	"join": strings.Join,
	"pct": func(v float64) string {
		return fmt.Sprintf("%.0f%%", v)
	},
	"fill": func(current, max int) int {
		if max <= 0 {
			return 0
		}
		p := current * 100 / max
		if p > 100 {
			return 100
		}
		return p
	},
	"gradient": coverGradient,
	"pageQuery": func(page int, board, query, sortMode string) template.URL {
		v := url.Values{}
		v.Set("page", strconv.Itoa(page))
		v.Set("board", board)
		if query != "" {
			v.Set("q", query)
		}
		if sortMode != "" {
			v.Set("sort", sortMode)
		}
		return template.URL("?" + v.Encode())
	},
	"initial": func(name string) string {
		for _, r := range name {
			return string(r)
		}
		return ""
	},
}

// gradientPattern admits the linear gradients used by post covers.
var gradientPattern = regexp.MustCompile(`^linear-gradient\(\d{1,3}deg(, #[0-9a-fA-F]{3,8} \d{1,3}%)+\)$`)

// coverGradient marks a cover gradient safe for a style attribute. Anything
// else renders as no background.
func coverGradient(value string) template.CSS {
	if !gradientPattern.MatchString(value) {
		return ""
	}
	return template.CSS("background: " + value)
}

func loadPages() (map[string]*template.Template, error) {
	pagesOnce.Do(func() {
		names, err := fs.Glob(templateFiles, "templates/*.html")
		if err != nil {
			pagesErr = err
			return
		}
		pages = make(map[string]*template.Template, len(names))
		for _, name := range names {
			if name == sharedTemplates[0] || name == sharedTemplates[1] {
				continue
			}
			files := append([]string{}, sharedTemplates...)
			files = append(files, name)
			tpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templateFiles, files...)
			if err != nil {
				pagesErr = fmt.Errorf("parse %s: %w", name, err)
				return
			}
			pages[strings.TrimPrefix(name, "templates/")] = tpl
		}
	})
	return pages, pagesErr
}

// layoutData is the shell shared by every page. Page holds the page's own data.
type layoutData struct {
	Title     string
	Route     navigation.Route
	Nav       []navigation.HeaderNavItem
	IsAuth    bool
	Panel     *navigation.ContextPanel
	Profile   homeDomain.ProfileSummary
	User      *user.UserData
	CSRFField template.HTML
	Footer    string
	Page      any
}

func newLayout(r *http.Request, title string, page any) layoutData {
	route := navigation.RouteFromPath(r.URL.Path)
	data := layoutData{
		Title:     title,
		Route:     route,
		Nav:       navigation.HeaderNavItems(),
		IsAuth:    route.IsAuth(),
		CSRFField: csrf.TemplateField(r),
		Footer:    SiteFooter,
		Page:      page,
	}
	if panel, ok := navigation.BuildContextPanel(route, visitorOf(r).Board); ok {
		data.Panel = &panel
	}
	if stores != nil && stores.HomeStore != nil {
		if dash, err := stores.HomeStore.Dashboard(r.Context()); err == nil {
			data.Profile = dash.Profile
		}
	}
	if ra, err := loadAuth(r); err == nil && ra.session.IsLoggedIn() {
		u := ra.session.User()
		data.User = u
		data.Profile.Name = u.DisplayName()
	}
	return data
}

// renderTemplate executes a page inside the layout. Output is buffered so a
// template failure still produces a clean 500.
func renderTemplate(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	set, err := loadPages()
	if err != nil {
		internalError(w, err)
		return
	}
	tpl, ok := set[page]
	if !ok {
		internalError(w, fmt.Errorf("unknown template %q", page))
		return
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, newLayout(r, title, data)); err != nil {
		slog.Error("render_failed", "template", page, "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
