package interview

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/registry"
	"github.com/nfrund/resumio/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	textPath = "/api/interview/generate"
	filePath = "/api/interview/generate-file"
)

func setup(t *testing.T, fb *testutils.FakeBackend) *echo.Echo {
	t.Helper()
	e := testutils.NewEcho(t)
	reg := registry.New(testutils.ConfigForTests(t, nil))
	m := New(Dependencies{Backend: fb.Client()})
	require.NoError(t, m.Register(reg))
	require.NoError(t, m.Boot(t.Context(), e.Group(m.Path()), reg))
	return e
}

func sampleQuestions() apiclient.InterviewQuestionsResponse {
	return apiclient.InterviewQuestionsResponse{
		TechnicalQuestions: []apiclient.InterviewQuestion{
			{Question: "How does the Go scheduler work?", SuggestedAnswer: "It multiplexes goroutines onto threads.", Category: "technical", Difficulty: "hard"},
		},
		BehavioralQuestions: []apiclient.InterviewQuestion{
			{Question: "Tell me about a conflict.", Category: "behavioral", Context: "Teamwork"},
		},
	}
}

var resumeFile = testutils.File{Field: "file", Name: "cv.txt", ContentType: "text/plain", Content: []byte("Go developer")}

func TestGenerate_FileModeTakesPrecedence(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fb.JSON(filePath, http.StatusOK, sampleQuestions())
	fb.JSON(textPath, http.StatusOK, sampleQuestions())
	b := testutils.NewBrowser(t, setup(t, fb))

	fields := map[string]string{
		"resume_text":            "pasted resume",
		"job_description":        "Platform team",
		"numTechQuestions":       "3",
		"numBehavioralQuestions": "",
	}
	rec := b.PostMultipart("/interview-questions/generate", fields, true, resumeFile)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Technical Questions (1)")
	assert.Contains(t, body, "Behavioral Questions (1)")
	assert.Contains(t, body, `data-copy-text="Tell me about a conflict."`)

	assert.Zero(t, fb.Hits(textPath))
	reqs := fb.Requests(filePath)
	require.Len(t, reqs, 1)
	assert.Equal(t, []string{"3"}, reqs[0].Form["numTechQuestions"])
	assert.Equal(t, []string{strconv.Itoa(DefaultQuestions)}, reqs[0].Form["numBehavioralQuestions"])
	assert.Equal(t, []string{"Platform team"}, reqs[0].Form["jobDesc"])
}

func TestGenerate_TextMode(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fb.JSON(textPath, http.StatusOK, sampleQuestions())
	b := testutils.NewBrowser(t, setup(t, fb))

	rec := b.PostMultipart("/interview-questions/generate", map[string]string{
		"resume_text":     "pasted resume",
		"job_description": "Platform team",
		"question_type":   "Technical",
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "How does the Go scheduler work?")

	reqs := fb.Requests(textPath)
	require.Len(t, reqs, 1)
	var sent apiclient.InterviewQuestionsRequest
	require.NoError(t, json.Unmarshal(reqs[0].Body, &sent))
	assert.Equal(t, apiclient.QuestionsTechnical, sent.QuestionType)
	assert.Equal(t, DefaultQuestions, sent.Count)
	assert.Equal(t, "pasted resume", sent.ResumeText)
}

func TestGenerate_Validation(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	b := testutils.NewBrowser(t, setup(t, fb))

	tests := []struct {
		name   string
		fields map[string]string
		files  []testutils.File
		want   string
	}{
		{name: "missing job description", fields: map[string]string{"resume_text": "resume"}, want: MsgRequired},
		{name: "nothing", fields: nil, want: MsgRequired},
		{name: "count too high", fields: map[string]string{"resume_text": "r", "job_description": "j", "count": "21"}, want: MsgCount},
		{name: "negative technical", fields: map[string]string{"numTechQuestions": "-1"}, files: []testutils.File{resumeFile}, want: MsgCount},
		{name: "unknown type", fields: map[string]string{"resume_text": "r", "job_description": "j", "question_type": "trivia"}, want: MsgCount},
		{name: "image", files: []testutils.File{{Field: "file", Name: "me.png", ContentType: "image/png", Content: []byte("png")}}, want: MsgUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := b.PostMultipart("/interview-questions/generate", tt.fields, true, tt.files...)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
	assert.Zero(t, fb.Hits(""))
}

func TestGenerate_FailureKeepsQuestions(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fb.JSON(filePath, http.StatusOK, sampleQuestions())
	b := testutils.NewBrowser(t, setup(t, fb))
	b.PostMultipart("/interview-questions/generate", nil, true, resumeFile)

	fb.JSON(filePath, http.StatusServiceUnavailable, map[string]string{"detail": "quota"})
	rec := b.PostMultipart("/interview-questions/generate", nil, true, resumeFile)
	body := rec.Body.String()
	assert.Contains(t, body, MsgFailed)
	assert.Contains(t, body, "How does the Go scheduler work?")
}

func TestCopyText(t *testing.T) {
	assert.Equal(t, "Q", CopyText(apiclient.InterviewQuestion{Question: "Q"}))
	assert.Equal(t, "Q\n\nA", CopyText(apiclient.InterviewQuestion{Question: "Q", SuggestedAnswer: "A"}))
}
