package builder

import (
	"strings"

	"github.com/nfrund/resumio/internal/apiclient"
)

// Suggestion count bounds.
const (
	MinSuggestions     = 1
	MaxSuggestions     = 10
	DefaultSuggestions = 3
)

// Fields is the submitted suggestion form.
type Fields struct {
	Task       string `form:"task" validate:"required,oneof=bullet summary skills rewrite"`
	SourceText string `form:"sourceText" validate:"notblank"`
	Role       string `form:"role"`
	Level      string `form:"level" validate:"omitempty,oneof=junior mid senior entry intern"`
	JobDesc    string `form:"jobDesc"`
	Count      int    `form:"count" validate:"min=1,max=10"`
}

// DefaultFields is the initial form.
func DefaultFields() Fields {
	return Fields{Task: string(apiclient.TaskBullet), Count: DefaultSuggestions}
}

// Normalize lowercases the enumerations and fills the default count.
func (f *Fields) Normalize() {
	f.Task = strings.ToLower(strings.TrimSpace(f.Task))
	f.Level = strings.ToLower(strings.TrimSpace(f.Level))
	if f.Count == 0 {
		f.Count = DefaultSuggestions
	}
}

// Request builds the backend request.
func (f Fields) Request() apiclient.SuggestRequest {
	return apiclient.SuggestRequest{
		Task:       apiclient.SuggestTask(f.Task),
		SourceText: f.SourceText,
		Role:       strings.TrimSpace(f.Role),
		Level:      apiclient.SeniorityLevel(f.Level),
		JobDesc:    strings.TrimSpace(f.JobDesc),
		Count:      f.Count,
	}
}
