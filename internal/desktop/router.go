package desktop

import (
	"strings"

	"github.com/etbcor/tomo/internal/footer"
)

// Route maps a path to the page it shows.
type Route struct {
	Path  string
	Title string
	Build func(env *Env) *Page
}

var routes = []Route{
	{Path: "/", Title: "Home", Build: Home},
	{Path: "/portfolio", Title: "Portfolio", Build: Portfolio},
	{Path: "/music", Title: "Music", Build: Music},
	{Path: "/tp", Title: "toki pona", Build: TokiPona},
	{Path: "/tp/kalama_sin", Title: "kalama sin", Build: KalamaSin},
	{Path: "/tp/nasin_nanpa", Title: "nasin nanpa", Build: NasinNanpa},
	{Path: "/tp/anpa_nanpa", Title: "anpa nanpa", Build: AnpaNanpa},
	{Path: "/insa", Title: "insa", Build: Insa},
	{Path: "/pakala", Title: "pakala", Build: Pakala},
}

// Routes returns the route table in display order.
func Routes() []Route {
	return append([]Route(nil), routes...)
}

// Clean normalizes a requested path: a leading slash, no trailing slash.
func Clean(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return "/"
	}
	return path
}

func lookup(path string) (Route, bool) {
	path = Clean(path)
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Known reports whether path has a page.
func Known(path string) bool {
	_, ok := lookup(path)
	return ok
}

// Title returns the name of the page at path.
func Title(path string) string {
	if r, ok := lookup(path); ok {
		return r.Title
	}
	return "Page Not Found"
}

// Build instantiates the page at path. Unknown paths get the not found
// page, which keeps the requested path.
func Build(env *Env, path string) *Page {
	r, ok := lookup(path)
	if !ok {
		logger.Debug("no route", "path", path)
		return NotFound(env, Clean(path))
	}
	logger.Debug("building page", "path", r.Path)
	return r.Build(env)
}

// Insa builds /insa, a quiet room with nothing but the way back.
func Insa(env *Env) *Page {
	p := newPage("/insa", 0)
	p.Wallpaper = WallpaperBlack
	loading := newLoadingWindow(env, p.at(20, 20, 225, 170), LoadingHomePageLink)
	p.add(loading)
	p.Footer = footer.New(footer.Item{Label: `"Inspiration"`, Hidden: loading.HiddenCell()})
	return p
}

// NotFound builds the page shown for an unknown path.
func NotFound(env *Env, path string) *Page {
	p := newPage(path, 0)
	p.Wallpaper = WallpaperCyberpunk
	loading := newLoadingWindow(env, p.at(20, 20, 500, 500), LoadingPageNotFound)
	lonely := newLonelyWindow(p.at(555, 20, 300, 150))
	p.add(loading, lonely)
	p.Footer = footer.New(
		footer.Item{Label: "Page Not Found", Hidden: loading.HiddenCell()},
		footer.Item{Label: "A bit lonely...", Hidden: lonely.HiddenCell()},
	)
	return p
}
