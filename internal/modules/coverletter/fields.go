package coverletter

import (
	"strings"

	"github.com/nfrund/resumio/internal/apiclient"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tone is the register the letter is written in.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneEnthusiastic Tone = "Enthusiastic"
	ToneConfident    Tone = "Confident"
	ToneFormal       Tone = "Formal"

	DefaultTone = ToneProfessional
)

// Tones lists the selectable tones in display order.
var Tones = []Tone{ToneProfessional, ToneEnthusiastic, ToneConfident, ToneFormal}

// ParseTone accepts any casing of a known tone. Empty or unknown values fall
// back to DefaultTone.
func ParseTone(s string) Tone {
	t := Tone(cases.Title(language.English).String(strings.TrimSpace(s)))
	for _, known := range Tones {
		if t == known {
			return t
		}
	}
	return DefaultTone
}

// Fields is the submitted cover letter form.
type Fields struct {
	ResumeText     string `form:"resumeText" validate:"notblank"`
	JobDescription string `form:"jobDescription" validate:"notblank"`
	CompanyName    string `form:"companyName" validate:"notblank"`
	JobRole        string `form:"jobRole" validate:"notblank"`
	Tone           string `form:"tone"`
}

// Request converts the form into the backend request.
func (f Fields) Request() apiclient.CoverLetterRequest {
	return apiclient.CoverLetterRequest{
		ResumeText:     f.ResumeText,
		JobDescription: f.JobDescription,
		CompanyName:    strings.TrimSpace(f.CompanyName),
		JobRole:        strings.TrimSpace(f.JobRole),
		Tone:           string(ParseTone(f.Tone)),
	}
}
