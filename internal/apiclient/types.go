package apiclient

import (
	"encoding/json"
	"io"
)

// Upload is a file forwarded to the backend as a multipart part.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CoverLetterRequest is the body of POST /api/cover-letter/generate.
type CoverLetterRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	CompanyName    string `json:"companyName"`
	JobRole        string `json:"jobRole"`
	Tone           string `json:"tone,omitempty"`
}

// CoverLetterResponse is the generated letter.
type CoverLetterResponse struct {
	Content string `json:"content"`
}

// RoastResponse is the body returned by POST /api/roaster/roast.
type RoastResponse struct {
	Roast string `json:"roast"`
}

// SuggestTask selects what kind of text the builder assistant produces.
type SuggestTask string

const (
	TaskBullet  SuggestTask = "bullet"
	TaskSummary SuggestTask = "summary"
	TaskSkills  SuggestTask = "skills"
	TaskRewrite SuggestTask = "rewrite"
)

// SeniorityLevel is the candidate level hint passed to the assistant.
type SeniorityLevel string

const (
	LevelJunior SeniorityLevel = "junior"
	LevelMid    SeniorityLevel = "mid"
	LevelSenior SeniorityLevel = "senior"
	LevelEntry  SeniorityLevel = "entry"
	LevelIntern SeniorityLevel = "intern"
)

// SuggestRequest is the body of POST /api/suggest/.
type SuggestRequest struct {
	Task       SuggestTask    `json:"task"`
	SourceText string         `json:"sourceText"`
	Role       string         `json:"role,omitempty"`
	Level      SeniorityLevel `json:"level,omitempty"`
	JobDesc    string         `json:"jobDesc,omitempty"`
	Count      int            `json:"count,omitempty"`
}

// SuggestResponse lists the generated suggestions.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// QuestionType narrows the generated interview questions.
type QuestionType string

const (
	QuestionsTechnical  QuestionType = "technical"
	QuestionsBehavioral QuestionType = "behavioral"
	QuestionsMixed      QuestionType = "mixed"
)

// InterviewQuestionsRequest is the body of POST /api/interview/generate.
type InterviewQuestionsRequest struct {
	JobDescription string       `json:"job_description"`
	ResumeText     string       `json:"resume_text"`
	QuestionType   QuestionType `json:"question_type"`
	Count          int          `json:"count"`
}

// InterviewFileRequest describes a POST /api/interview/generate-file call.
type InterviewFileRequest struct {
	File                   Upload
	JobDesc                string
	NumTechQuestions       int
	NumBehavioralQuestions int
}

// InterviewQuestion is a single generated question with its suggested answer.
type InterviewQuestion struct {
	Question        string `json:"question"`
	SuggestedAnswer string `json:"suggested_answer"`
	Category        string `json:"category"`
	Difficulty      string `json:"difficulty,omitempty"`
	Context         string `json:"context,omitempty"`
}

// InterviewQuestionsResponse groups the generated questions by category.
type InterviewQuestionsResponse struct {
	TechnicalQuestions  []InterviewQuestion `json:"technical_questions"`
	BehavioralQuestions []InterviewQuestion `json:"behavioral_questions"`
}

// ATSScoreRequest is the body of POST /api/ats/score. Resume is the
// structured resume document owned by the builder, forwarded verbatim.
type ATSScoreRequest struct {
	Resume  json.RawMessage `json:"resume"`
	JobDesc string          `json:"jobDesc,omitempty"`
}

// ATSResponse is the score returned by both ATS endpoints.
type ATSResponse struct {
	Score     float64      `json:"score"`
	Breakdown ATSBreakdown `json:"breakdown"`
	Tips      []string     `json:"tips"`
}

// ATSBreakdown holds the per-category sub-scores.
type ATSBreakdown struct {
	Keywords   float64    `json:"keywords"`
	Verbs      float64    `json:"verbs"`
	Metrics    float64    `json:"metrics"`
	Sections   float64    `json:"sections"`
	Experience float64    `json:"experience"`
	Details    ATSDetails `json:"details"`
}

// ATSDetails explains the sub-scores.
type ATSDetails struct {
	Keywords   KeywordDetails    `json:"keywords"`
	Verbs      CountDetails      `json:"verbs"`
	Metrics    CountDetails      `json:"metrics"`
	Sections   map[string]bool   `json:"sections"`
	Experience ExperienceDetails `json:"experience"`
}

// KeywordDetails reports how many job-description keywords the resume hits.
type KeywordDetails struct {
	MatchedCount    int      `json:"matched_count"`
	TotalKeywords   int      `json:"total_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// CountDetails compares an observed count with the recommended one.
type CountDetails struct {
	Count       int `json:"count"`
	Recommended int `json:"recommended"`
}

// ExperienceDetails summarises the experience section.
type ExperienceDetails struct {
	Count           int  `json:"count"`
	HasDescriptions bool `json:"has_descriptions"`
	HasDates        bool `json:"has_dates"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
	Env    string `json:"env"`
	DB     bool   `json:"db"`
}
