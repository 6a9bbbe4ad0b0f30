package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/modules/coverletter"
	"github.com/nfrund/resumio/internal/testutils"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against fb with fs as the filesystem.
func run(t *testing.T, fs afero.Fs, fb *testutils.FakeBackend, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(fs)
	root.SetOut(&out)
	root.SetErr(&errOut)
	if fb != nil {
		args = append([]string{"--api-url", fb.Server.URL, "--timeout", "5s"}, args...)
	}
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestVersion(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), nil, "version")
	require.NoError(t, err)
	assert.Equal(t, "Resumio CLI v"+version+"\n", out)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), nil, "theme", "list", "-o", "xml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestHealth(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fb.JSON("/api/health", http.StatusOK, apiclient.HealthResponse{Status: "ok", Env: "test", DB: true})

	out, err := run(t, afero.NewMemMapFs(), fb, "health")
	require.NoError(t, err)
	assert.Equal(t, "Backend: ok (env test, database connected)\n", out)

	out, err = run(t, afero.NewMemMapFs(), fb, "health", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","env":"test","db":true}`, out)
}

func TestHealth_Down(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fb.JSON("/api/health", http.StatusServiceUnavailable, map[string]string{"detail": "down"})

	_, err := run(t, afero.NewMemMapFs(), fb, "health")
	assert.ErrorContains(t, err, "backend unavailable")
}

func TestThemeResolve(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), nil, "theme", "resolve", "/cover-letter", "/nowhere", "-o", "json")
	require.NoError(t, err)

	var got []resolvedView
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "cover-letter", got[0].Theme.Theme)
	assert.Equal(t, "#e11d48", got[0].Theme.Palette.Primary)
	assert.Equal(t, "home", got[1].Theme.Theme)
	assert.Equal(t, []string{"/"}, got[1].Theme.Routes)
}

func TestThemeList(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), nil, "theme", "list")
	require.NoError(t, err)
	for _, want := range []string{"home", "builder", "ats", "cover-letter", "interview", "roaster", "/resume-roaster", "#4f46e5"} {
		assert.Contains(t, out, want)
	}
}

func TestCoverLetter(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "resume.txt", "Go developer")
	writeFile(t, fs, "job.txt", "Backend role")

	t.Run("missing company blocks the request", func(t *testing.T) {
		fb := testutils.NewFakeBackend(t)
		_, err := run(t, fs, fb, "cover-letter", "--resume", "resume.txt", "--job", "job.txt", "--role", "Engineer")
		require.Error(t, err)
		assert.Contains(t, err.Error(), coverletter.MsgRequired)
		assert.Contains(t, err.Error(), "CompanyName")
		assert.Zero(t, fb.Hits(""))
	})

	t.Run("success saves the letter", func(t *testing.T) {
		fb := testutils.NewFakeBackend(t)
		fb.JSON("/api/cover-letter/generate", http.StatusOK, apiclient.CoverLetterResponse{Content: "Dear Acme,"})

		out, err := run(t, fs, fb, "cover-letter", "--resume", "resume.txt", "--job", "job.txt",
			"--company", "Acme", "--role", "Engineer", "--tone", "confident", "--out", "out/letter.txt")
		require.NoError(t, err)
		assert.Equal(t, "Saved to out/letter.txt\n", out)

		saved, err := afero.ReadFile(fs, "out/letter.txt")
		require.NoError(t, err)
		assert.Equal(t, "Dear Acme,", string(saved))

		reqs := fb.Requests("/api/cover-letter/generate")
		require.Len(t, reqs, 1)
		var body apiclient.CoverLetterRequest
		require.NoError(t, json.Unmarshal(reqs[0].Body, &body))
		assert.Equal(t, "Confident", body.Tone)
		assert.Equal(t, "Go developer", body.ResumeText)
	})

	t.Run("backend failure", func(t *testing.T) {
		fb := testutils.NewFakeBackend(t)
		fb.JSON("/api/cover-letter/generate", http.StatusInternalServerError, map[string]string{"detail": "boom"})

		_, err := run(t, fs, fb, "cover-letter", "--resume", "resume.txt", "--job", "job.txt", "--company", "Acme", "--role", "Engineer")
		assert.ErrorContains(t, err, coverletter.MsgFailed)
	})
}

func TestRoast(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "resume.txt", "Ten years of YAML")
	writeFile(t, fs, "photo.png", "\x89PNG\r\n\x1a\n0000")

	fb := testutils.NewFakeBackend(t)
	fb.JSON("/api/roaster/roast", http.StatusOK, apiclient.RoastResponse{Roast: "Bold choice."})

	out, err := run(t, fs, fb, "roast", "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Bold choice.\n", out)
	reqs := fb.Requests("/api/roaster/roast")
	require.Len(t, reqs, 1)
	assert.Equal(t, "resume.txt", reqs[0].FileName)
	assert.Equal(t, "Ten years of YAML", string(reqs[0].FileBody))

	_, err = run(t, fs, fb, "roast", "photo.png")
	assert.Error(t, err)
	assert.Equal(t, 1, fb.Hits("/api/roaster/roast"), "unsupported file must not reach the backend")
}

func TestATS(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "resume.json", `{"name":"Ada"}`)
	writeFile(t, fs, "broken.json", `{"name":`)
	writeFile(t, fs, "job.txt", "  Go, Kubernetes  ")

	resp := apiclient.ATSResponse{
		Score: 82,
		Breakdown: apiclient.ATSBreakdown{
			Keywords: 90,
			Details: apiclient.ATSDetails{
				Keywords: apiclient.KeywordDetails{MatchedCount: 3, TotalKeywords: 4, MissingKeywords: []string{"Terraform"}},
				Sections: map[string]bool{"experience": true, "skills": false},
			},
		},
		Tips: []string{"Add Terraform"},
	}
	fb := testutils.NewFakeBackend(t)
	fb.JSON("/api/ats/score", http.StatusOK, resp)

	out, err := run(t, fs, fb, "ats", "--resume-json", "resume.json", "--job-desc", "job.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "ATS score: 82% (Excellent)")
	assert.Contains(t, out, "3 of 4 job keywords found")
	assert.Contains(t, out, "Missing: Terraform")
	assert.Contains(t, out, "Section skills: missing")
	assert.Contains(t, out, "- Add Terraform")

	reqs := fb.Requests("/api/ats/score")
	require.Len(t, reqs, 1)
	var body apiclient.ATSScoreRequest
	require.NoError(t, json.Unmarshal(reqs[0].Body, &body))
	assert.JSONEq(t, `{"name":"Ada"}`, string(body.Resume))
	assert.Equal(t, "Go, Kubernetes", body.JobDesc)

	_, err = run(t, fs, fb, "ats", "--resume-json", "broken.json")
	assert.ErrorContains(t, err, "not valid JSON")

	_, err = run(t, fs, fb, "ats")
	assert.ErrorContains(t, err, "Please upload your resume first")
	assert.Equal(t, 1, fb.Hits(""))
}

func TestInterview(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "resume.txt", "Go developer")
	writeFile(t, fs, "job.txt", "Backend role")

	resp := apiclient.InterviewQuestionsResponse{
		TechnicalQuestions:  []apiclient.InterviewQuestion{{Question: "What is a goroutine?", SuggestedAnswer: "A lightweight thread.", Category: "technical"}},
		BehavioralQuestions: []apiclient.InterviewQuestion{{Question: "Tell me about a conflict.", SuggestedAnswer: "Use STAR.", Category: "behavioral"}},
	}

	t.Run("file mode", func(t *testing.T) {
		fb := testutils.NewFakeBackend(t)
		fb.JSON("/api/interview/generate-file", http.StatusOK, resp)

		out, err := run(t, fs, fb, "interview", "--resume", "resume.txt", "--tech", "3", "--behavioral", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "Technical questions")
		assert.Contains(t, out, "1. What is a goroutine?")
		assert.Contains(t, out, "Use STAR.")
		assert.Equal(t, 1, fb.Hits("/api/interview/generate-file"))
	})

	t.Run("text mode", func(t *testing.T) {
		fb := testutils.NewFakeBackend(t)
		fb.JSON("/api/interview/generate", http.StatusOK, resp)

		_, err := run(t, fs, fb, "interview", "--resume-text", "resume.txt", "--job-desc", "job.txt", "--type", "technical", "--count", "8")
		require.NoError(t, err)
		reqs := fb.Requests("/api/interview/generate")
		require.Len(t, reqs, 1)
		var body apiclient.InterviewQuestionsRequest
		require.NoError(t, json.Unmarshal(reqs[0].Body, &body))
		assert.Equal(t, apiclient.QuestionsTechnical, body.QuestionType)
		assert.Equal(t, 8, body.Count)
	})

	t.Run("text mode needs a job description", func(t *testing.T) {
		fb := testutils.NewFakeBackend(t)
		_, err := run(t, fs, fb, "interview", "--resume-text", "resume.txt")
		assert.ErrorContains(t, err, "Please upload your resume")
		assert.Zero(t, fb.Hits(""))
	})

	t.Run("count out of range", func(t *testing.T) {
		fb := testutils.NewFakeBackend(t)
		_, err := run(t, fs, fb, "interview", "--resume", "resume.txt", "--tech", "21")
		assert.ErrorContains(t, err, "between 1 and 20")
		assert.Zero(t, fb.Hits(""))
	})
}

func TestSuggest(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fb.JSON("/api/suggest/", http.StatusOK, apiclient.SuggestResponse{Suggestions: []string{"Led on-call", "Cut paging by 40%"}})

	out, err := run(t, afero.NewMemMapFs(), fb, "suggest", "--task", "Bullet", "--text", "Ran on-call", "--level", "senior")
	require.NoError(t, err)
	assert.Equal(t, "1. Led on-call\n2. Cut paging by 40%\n", out)

	_, err = run(t, afero.NewMemMapFs(), fb, "suggest", "--text", "Ran on-call", "--count", "11")
	assert.ErrorContains(t, err, "between 1 and 10")

	_, err = run(t, afero.NewMemMapFs(), fb, "suggest", "--text", "  ")
	assert.ErrorContains(t, err, "Please choose a task")
	assert.Equal(t, 1, fb.Hits(""))
}
