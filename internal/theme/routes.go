package theme

import "strings"

// Route binds a path pattern to the theme it selects.
type Route struct {
	Pattern string
	Theme   Theme
}

// routes is evaluated top to bottom; the first match wins.
var routes = [...]Route{
	{Pattern: "/", Theme: Home},
	{Pattern: "/builder", Theme: Builder},
	{Pattern: "/ats-checker", Theme: ATS},
	{Pattern: "/cover-letter", Theme: CoverLetter},
	{Pattern: "/interview-questions", Theme: Interview},
	{Pattern: "/resume-roaster", Theme: Roaster},
}

// Routes returns the route table in priority order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes[:])
	return out
}

// MatchPath is the shared active-path predicate. The root pattern only matches
// the root path; every other pattern matches by prefix.
func MatchPath(pattern, path string) bool {
	if pattern == "/" {
		return path == "/"
	}
	return strings.HasPrefix(path, pattern)
}

// Resolve returns the theme selected by path. Paths that match no route
// resolve to Home.
func Resolve(path string) Theme {
	for _, r := range routes {
		if MatchPath(r.Pattern, path) {
			return r.Theme
		}
	}
	return Home
}

// Active is the read-only theme/config pair exposed to consumers.
type Active struct {
	Theme  Theme
	Config Config
}

// ResolveActive resolves path to its theme together with the theme's config.
func ResolveActive(path string) Active {
	t := Resolve(path)
	cfg, _ := ConfigFor(t)
	return Active{Theme: t, Config: cfg}
}
