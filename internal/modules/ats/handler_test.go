package ats

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/registry"
	"github.com/nfrund/resumio/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scorePath = "/api/ats/score-file"

func setup(t *testing.T, fb *testutils.FakeBackend) *echo.Echo {
	t.Helper()
	e := testutils.NewEcho(t)
	reg := registry.New(testutils.ConfigForTests(t, nil))
	m := New(Dependencies{Backend: fb.Client()})
	require.NoError(t, m.Register(reg))
	require.NoError(t, m.Boot(t.Context(), e.Group(m.Path()), reg))
	return e
}

func sampleScore() apiclient.ATSResponse {
	return apiclient.ATSResponse{
		Score: 72.4,
		Breakdown: apiclient.ATSBreakdown{
			Keywords: 65, Verbs: 80, Metrics: 40, Sections: 100, Experience: 75,
			Details: apiclient.ATSDetails{
				Keywords:   apiclient.KeywordDetails{MatchedCount: 13, TotalKeywords: 20, MissingKeywords: []string{"kubernetes", "grpc"}},
				Verbs:      apiclient.CountDetails{Count: 8, Recommended: 10},
				Metrics:    apiclient.CountDetails{Count: 2, Recommended: 5},
				Sections:   map[string]bool{"skills": true, "education": false, "work_experience": true},
				Experience: apiclient.ExperienceDetails{Count: 3, HasDescriptions: true},
			},
		},
		Tips: []string{"Add numbers to your achievements"},
	}
}

var resumeFile = testutils.File{Field: "file", Name: "cv.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4 resume")}

func TestScore_RendersReport(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fb.JSON(scorePath, http.StatusOK, sampleScore())
	b := testutils.NewBrowser(t, setup(t, fb))

	rec := b.PostMultipart("/ats-checker/score", map[string]string{"jobDesc": "Go, gRPC, Kubernetes"}, true, resumeFile)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-score="72"`)
	assert.Contains(t, body, "Good")
	assert.Contains(t, body, "13 of 20 job keywords found")
	assert.Contains(t, body, "kubernetes")
	assert.Contains(t, body, "Action verbs: 8 (recommended 10)")
	assert.Contains(t, body, "Work experience")
	assert.Contains(t, body, "Add numbers to your achievements")
	for _, label := range []string{"Keywords", "Action Verbs", "Quantified Results", "Sections", "Experience"} {
		assert.Contains(t, body, label)
	}

	reqs := fb.Requests(scorePath)
	require.Len(t, reqs, 1)
	assert.Equal(t, []string{"Go, gRPC, Kubernetes"}, reqs[0].Form["jobDesc"])
	assert.Equal(t, "cv.pdf", reqs[0].FileName)
}

func TestScore_OmitsEmptyJobDescription(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fb.JSON(scorePath, http.StatusOK, sampleScore())
	b := testutils.NewBrowser(t, setup(t, fb))

	b.PostMultipart("/ats-checker/score", map[string]string{"jobDesc": "  "}, true, resumeFile)
	reqs := fb.Requests(scorePath)
	require.Len(t, reqs, 1)
	assert.NotContains(t, reqs[0].Form, "jobDesc")
}

func TestScore_Validation(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	b := testutils.NewBrowser(t, setup(t, fb))

	rec := b.PostMultipart("/ats-checker/score", nil, true)
	assert.Contains(t, rec.Body.String(), MsgSelectFirst)

	img := testutils.File{Field: "file", Name: "cv.png", ContentType: "image/png", Content: []byte("\x89PNG")}
	rec = b.PostMultipart("/ats-checker/score", nil, true, img)
	assert.Contains(t, rec.Body.String(), MsgUnsupported)
	assert.Zero(t, fb.Hits(""))
}

func TestScore_FailureClearsPreviousScore(t *testing.T) {
	fb := testutils.NewFakeBackend(t)
	fb.JSON(scorePath, http.StatusOK, sampleScore())
	b := testutils.NewBrowser(t, setup(t, fb))
	b.PostMultipart("/ats-checker/score", nil, true, resumeFile)

	fb.JSON(scorePath, http.StatusInternalServerError, map[string]string{"detail": "boom"})
	rec := b.PostMultipart("/ats-checker/score", nil, true, resumeFile)
	body := rec.Body.String()
	assert.Contains(t, body, MsgFailed)
	assert.NotContains(t, body, "data-score")
	assert.NotContains(t, body, "boom")
}

func TestBreakdownHelpers(t *testing.T) {
	bars := Bars(sampleScore().Breakdown)
	require.Len(t, bars, 5)
	assert.Equal(t, Bar{Label: "Quantified Results", Score: 40}, bars[2])

	sections := Sections(sampleScore().Breakdown.Details)
	assert.Equal(t, []SectionCheck{
		{Name: "education", Present: false},
		{Name: "skills", Present: true},
		{Name: "work_experience", Present: true},
	}, sections)

	assert.Equal(t, "Excellent", Grade(80))
	assert.Equal(t, "Needs Work", Grade(59.9))
	assert.Equal(t, "Poor", Grade(0))
	assert.Equal(t, float64(100), clamp(140))
	assert.Equal(t, float64(0), clamp(-3))
}
