// Package nav describes the static navigation links of the site.
package nav

import "github.com/nfrund/resumio/internal/theme"

// Icon names a lucide icon rendered by the components package.
type Icon string

const (
	IconHome          Icon = "home"
	IconFileText      Icon = "file-text"
	IconCheckCircle   Icon = "check-circle-2"
	IconMail          Icon = "mail"
	IconMessageSquare Icon = "message-square"
	IconLaugh         Icon = "laugh"
)

// Link is a navigation entry.
type Link struct {
	Path       string
	Label      string
	ShortLabel string
	Icon       Icon
}

// Home is the logo and home-icon link.
var Home = Link{Path: "/", Label: "Home", ShortLabel: "Home", Icon: IconHome}

var links = [...]Link{
	{Path: "/builder", Label: "Resume Builder", ShortLabel: "Builder", Icon: IconFileText},
	{Path: "/ats-checker", Label: "ATS Checker", ShortLabel: "ATS", Icon: IconCheckCircle},
	{Path: "/cover-letter", Label: "Cover Letter", ShortLabel: "Cover", Icon: IconMail},
	{Path: "/interview-questions", Label: "Interview Prep", ShortLabel: "Interview", Icon: IconMessageSquare},
	{Path: "/resume-roaster", Label: "Resume Roaster", ShortLabel: "Roaster", Icon: IconLaugh},
}

// Links returns the feature links in display order.
func Links() []Link {
	out := make([]Link, len(links))
	copy(out, links[:])
	return out
}

// IsActive reports whether l should be highlighted while currentPath is shown.
// It uses the same predicate as theme resolution.
func IsActive(l Link, currentPath string) bool {
	return theme.MatchPath(l.Path, currentPath)
}
