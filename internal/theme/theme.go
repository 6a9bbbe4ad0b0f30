package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Theme identifies one of the route-determined visual themes.
type Theme string

const (
	Home        Theme = "home"
	Builder     Theme = "builder"
	ATS         Theme = "ats"
	CoverLetter Theme = "cover-letter"
	Interview   Theme = "interview"
	Roaster     Theme = "roaster"
)

// NavbarStyle is the presentational family of the navigation bar.
type NavbarStyle string

const (
	NavbarDefault  NavbarStyle = "default"
	NavbarMinimal  NavbarStyle = "minimal"
	NavbarBold     NavbarStyle = "bold"
	NavbarElegant  NavbarStyle = "elegant"
	NavbarModern   NavbarStyle = "modern"
	NavbarFloating NavbarStyle = "floating"
	NavbarSidebar  NavbarStyle = "sidebar"
	NavbarRibbon   NavbarStyle = "ribbon"
	NavbarCircular NavbarStyle = "circular"
	NavbarDiagonal NavbarStyle = "diagonal"
	NavbarPlayful  NavbarStyle = "playful"
)

// Palette holds the colors of a theme. The hex values feed the CSS custom
// properties; the remaining fields are utility class names used by the navbar.
type Palette struct {
	Primary   string
	Secondary string
	Accent    string
	Dark      string
	Light     string

	Gradient     string
	NavbarBg     string
	NavbarBorder string
	NavbarText   string
	NavbarActive string
}

// Config is the immutable description of a theme.
type Config struct {
	Name        string
	Palette     Palette
	NavbarStyle NavbarStyle
}

// ErrUnknownTheme is returned when a theme name is not part of the enumeration.
var ErrUnknownTheme = errors.New("unknown theme")

var themes = [...]Theme{Home, Builder, ATS, CoverLetter, Interview, Roaster}

var configs = map[Theme]Config{
	Home: {
		Name: "Home",
		Palette: Palette{
			Primary:      "#4f46e5",
			Secondary:    "#8b5cf6",
			Accent:       "#06b6d4",
			Dark:         "#1e1b4b",
			Light:        "#f8fafc",
			Gradient:     "from-indigo-600 via-violet-600 to-cyan-500",
			NavbarBg:     "bg-white",
			NavbarBorder: "border-indigo-100",
			NavbarText:   "text-slate-700",
			NavbarActive: "from-indigo-600 to-violet-600",
		},
		NavbarStyle: NavbarMinimal,
	},
	Builder: {
		Name: "Builder",
		Palette: Palette{
			Primary:      "#2563eb",
			Secondary:    "#4f46e5",
			Accent:       "#38bdf8",
			Dark:         "#172554",
			Light:        "#eff6ff",
			Gradient:     "from-blue-600 to-indigo-600",
			NavbarBg:     "bg-white",
			NavbarBorder: "border-blue-100",
			NavbarText:   "text-slate-700",
			NavbarActive: "from-blue-600 to-indigo-600",
		},
		NavbarStyle: NavbarMinimal,
	},
	ATS: {
		Name: "ATS Checker",
		Palette: Palette{
			Primary:      "#059669",
			Secondary:    "#0d9488",
			Accent:       "#34d399",
			Dark:         "#022c22",
			Light:        "#ecfdf5",
			Gradient:     "from-emerald-600 to-teal-600",
			NavbarBg:     "bg-white",
			NavbarBorder: "border-emerald-100",
			NavbarText:   "text-slate-700",
			NavbarActive: "from-emerald-600 to-teal-600",
		},
		NavbarStyle: NavbarMinimal,
	},
	CoverLetter: {
		Name: "Cover Letter",
		Palette: Palette{
			Primary:      "#e11d48",
			Secondary:    "#db2777",
			Accent:       "#fb7185",
			Dark:         "#881337",
			Light:        "#fff1f2",
			Gradient:     "from-rose-600 to-pink-600",
			NavbarBg:     "bg-white",
			NavbarBorder: "border-rose-100",
			NavbarText:   "text-slate-700",
			NavbarActive: "from-rose-600 to-pink-600",
		},
		NavbarStyle: NavbarMinimal,
	},
	Interview: {
		Name: "Interview Prep",
		Palette: Palette{
			Primary:      "#d97706",
			Secondary:    "#ea580c",
			Accent:       "#fbbf24",
			Dark:         "#78350f",
			Light:        "#fffbeb",
			Gradient:     "from-amber-500 to-orange-600",
			NavbarBg:     "bg-white",
			NavbarBorder: "border-amber-100",
			NavbarText:   "text-slate-700",
			NavbarActive: "from-amber-500 to-orange-600",
		},
		NavbarStyle: NavbarMinimal,
	},
	Roaster: {
		Name: "Resume Roaster",
		Palette: Palette{
			Primary:      "#c2410c",
			Secondary:    "#b91c1c",
			Accent:       "#fdba74",
			Dark:         "#431407",
			Light:        "#fff7ed",
			Gradient:     "from-orange-600 to-red-600",
			NavbarBg:     "bg-white",
			NavbarBorder: "border-orange-100",
			NavbarText:   "text-slate-700",
			NavbarActive: "from-orange-600 to-red-600",
		},
		NavbarStyle: NavbarMinimal,
	},
}

// All returns every theme in declaration order.
func All() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes[:])
	return out
}

// Parse converts a theme name into a Theme.
func Parse(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := configs[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
	return t, nil
}

// Valid reports whether t is part of the enumeration.
func (t Theme) Valid() bool {
	_, ok := configs[t]
	return ok
}

func (t Theme) String() string { return string(t) }

// ConfigFor returns a copy of the configuration of t. Unknown themes fall back
// to the home configuration and report false.
func ConfigFor(t Theme) (Config, bool) {
	cfg, ok := configs[t]
	if !ok {
		return configs[Home], false
	}
	return cfg, true
}
