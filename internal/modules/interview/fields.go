package interview

import (
	"strings"

	"github.com/nfrund/resumio/internal/apiclient"
)

// Question count bounds shared by both modes.
const (
	MinQuestions     = 1
	MaxQuestions     = 20
	DefaultQuestions = 5
)

// Fields is the submitted interview prep form. The file, when present, selects
// file mode and the text fields are then ignored, except the job description.
type Fields struct {
	ResumeText     string `form:"resume_text"`
	JobDescription string `form:"job_description"`
	QuestionType   string `form:"question_type" validate:"omitempty,oneof=technical behavioral mixed"`
	Count          int    `form:"count" validate:"min=1,max=20"`
	NumTechnical   int    `form:"numTechQuestions" validate:"min=1,max=20"`
	NumBehavioral  int    `form:"numBehavioralQuestions" validate:"min=1,max=20"`
}

// TextRequest is the text mode subset that must be present.
type TextRequest struct {
	ResumeText     string `validate:"notblank"`
	JobDescription string `validate:"notblank"`
}

// DefaultFields is the initial form.
func DefaultFields() Fields {
	return Fields{
		QuestionType:  string(apiclient.QuestionsMixed),
		Count:         DefaultQuestions,
		NumTechnical:  DefaultQuestions,
		NumBehavioral: DefaultQuestions,
	}
}

// applyDefaults fills values the form left empty.
func (f *Fields) applyDefaults() {
	f.QuestionType = strings.ToLower(strings.TrimSpace(f.QuestionType))
	if f.QuestionType == "" {
		f.QuestionType = string(apiclient.QuestionsMixed)
	}
	if f.Count == 0 {
		f.Count = DefaultQuestions
	}
	if f.NumTechnical == 0 {
		f.NumTechnical = DefaultQuestions
	}
	if f.NumBehavioral == 0 {
		f.NumBehavioral = DefaultQuestions
	}
}

// Text returns the inputs text mode requires.
func (f Fields) Text() TextRequest {
	return TextRequest{ResumeText: f.ResumeText, JobDescription: f.JobDescription}
}

// Request builds the text mode backend request.
func (f Fields) Request() apiclient.InterviewQuestionsRequest {
	return apiclient.InterviewQuestionsRequest{
		ResumeText:     f.ResumeText,
		JobDescription: f.JobDescription,
		QuestionType:   apiclient.QuestionType(f.QuestionType),
		Count:          f.Count,
	}
}

// FileRequest builds the file mode backend request.
func (f Fields) FileRequest(file apiclient.Upload) apiclient.InterviewFileRequest {
	return apiclient.InterviewFileRequest{
		File:                   file,
		JobDesc:                strings.TrimSpace(f.JobDescription),
		NumTechQuestions:       f.NumTechnical,
		NumBehavioralQuestions: f.NumBehavioral,
	}
}
