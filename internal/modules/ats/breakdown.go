package ats

import (
	"sort"

	"github.com/nfrund/resumio/internal/apiclient"
)

// Bar is one sub-score of the breakdown. Scores are percentages.
type Bar struct {
	Label string
	Score float64
}

// Bars returns the five sub-scores in display order.
func Bars(b apiclient.ATSBreakdown) []Bar {
	return []Bar{
		{Label: "Keywords", Score: b.Keywords},
		{Label: "Action Verbs", Score: b.Verbs},
		{Label: "Quantified Results", Score: b.Metrics},
		{Label: "Sections", Score: b.Sections},
		{Label: "Experience", Score: b.Experience},
	}
}

// SectionCheck is a section checklist entry.
type SectionCheck struct {
	Name    string
	Present bool
}

// Sections returns the section checklist sorted by name.
func Sections(details apiclient.ATSDetails) []SectionCheck {
	out := make([]SectionCheck, 0, len(details.Sections))
	for name, present := range details.Sections {
		out = append(out, SectionCheck{Name: name, Present: present})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Grade describes an overall score.
func Grade(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Needs Work"
	default:
		return "Poor"
	}
}

// clamp limits a percentage to [0, 100] for bar widths.
func clamp(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
