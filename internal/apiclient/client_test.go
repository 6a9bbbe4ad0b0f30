package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
	errs  []error
}

func (o *recordingObserver) ObserveRequest(endpoint string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, endpoint)
	o.errs = append(o.errs, err)
}

func newTestClient(t *testing.T, h http.HandlerFunc, opts Options) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts.BaseURL = srv.URL + "/"
	opts.HTTPClient = srv.Client()
	return New(opts)
}

func textUpload(name, body string) Upload {
	return Upload{Filename: name, ContentType: "text/plain", Size: int64(len(body)), Content: strings.NewReader(body)}
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Nil(t, c.Breaker())

	c = New(Options{BaseURL: " http://api.example.com/ "})
	assert.Equal(t, "http://api.example.com", c.BaseURL())
}

func TestGenerateCoverLetter(t *testing.T) {
	var got CoverLetterRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/cover-letter/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"content":"Dear Hiring Manager"}`)
	}, Options{})

	resp, err := c.GenerateCoverLetter(context.Background(), CoverLetterRequest{
		ResumeText:     "resume",
		JobDescription: "job",
		CompanyName:    "Acme",
		JobRole:        "Engineer",
		Tone:           "Professional",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Manager", resp.Content)
	assert.Equal(t, "Acme", got.CompanyName)
	assert.Equal(t, "Professional", got.Tone)
}

func TestRoastResume_SendsMultipartWithContentType(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/roaster/roast", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		body, _ := io.ReadAll(file)
		assert.Equal(t, "cv.txt", header.Filename)
		assert.Equal(t, "text/plain", header.Header.Get("Content-Type"))
		assert.Equal(t, "my resume", string(body))
		_, _ = io.WriteString(w, `{"roast":"ouch"}`)
	}, Options{})

	resp, err := c.RoastResume(context.Background(), textUpload("cv.txt", "my resume"))
	require.NoError(t, err)
	assert.Equal(t, "ouch", resp.Roast)
}

func TestGenerateInterviewQuestionsFromFile_Fields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/interview/generate-file", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "backend role", r.FormValue("jobDesc"))
		assert.Equal(t, "5", r.FormValue("numTechQuestions"))
		assert.Equal(t, "5", r.FormValue("numBehavioralQuestions"))
		_, _ = io.WriteString(w, `{"technical_questions":[{"question":"Q1","suggested_answer":"A1","category":"technical"}],"behavioral_questions":[]}`)
	}, Options{})

	resp, err := c.GenerateInterviewQuestionsFromFile(context.Background(), InterviewFileRequest{
		File:                   textUpload("cv.txt", "resume"),
		JobDesc:                "backend role",
		NumTechQuestions:       5,
		NumBehavioralQuestions: 5,
	})
	require.NoError(t, err)
	require.Len(t, resp.TechnicalQuestions, 1)
	assert.Equal(t, "A1", resp.TechnicalQuestions[0].SuggestedAnswer)
	assert.Empty(t, resp.BehavioralQuestions)
}

func TestScoreATSFromFile_OmitsEmptyJobDesc(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, present := r.MultipartForm.Value["jobDesc"]
		assert.False(t, present)
		_, _ = io.WriteString(w, `{"score":72.5,"breakdown":{"keywords":20,"details":{"keywords":{"matched_count":4,"total_keywords":10,"missing_keywords":["go"]}}},"tips":["Add metrics"]}`)
	}, Options{})

	resp, err := c.ScoreATSFromFile(context.Background(), textUpload("cv.txt", "resume"), "")
	require.NoError(t, err)
	assert.InDelta(t, 72.5, resp.Score, 0.001)
	assert.Equal(t, []string{"go"}, resp.Breakdown.Details.Keywords.MissingKeywords)
	assert.Equal(t, []string{"Add metrics"}, resp.Tips)
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/health", r.URL.Path)
		_, _ = io.WriteString(w, `{"status":"ok","env":"test","db":true}`)
	}, Options{})

	resp, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.DB)
}

func TestStatusError_Detail(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{"string detail", http.StatusBadRequest, `{"detail":"Only PDF or text files are supported"}`, "Only PDF or text files are supported"},
		{"validation detail", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","task"]}]}`, `[{"loc":["body","task"]}]`},
		{"plain body", http.StatusInternalServerError, "boom\n", "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}, Options{})

			_, err := c.Suggest(context.Background(), SuggestRequest{Task: TaskBullet, SourceText: "x"})
			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, EndpointSuggest, se.Endpoint)
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, tt.wantDetail, se.Detail)
			assert.Equal(t, tt.status < 500, IsClientError(err))
		})
	}
}

func TestDecodeFailureIsWrapped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "not json")
	}, Options{})

	_, err := c.RoastResume(context.Background(), textUpload("cv.txt", "x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EndpointRoast)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, Options{Timeout: 20 * time.Millisecond})
	defer close(release)

	_, err := c.Health(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestObserverReceivesEveryCall(t *testing.T) {
	obs := &recordingObserver{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			_, _ = io.WriteString(w, `{"status":"ok"}`)
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}, Options{Observer: obs})

	_, err := c.Health(context.Background())
	require.NoError(t, err)
	_, err = c.GenerateCoverLetter(context.Background(), CoverLetterRequest{})
	require.Error(t, err)

	assert.Equal(t, []string{EndpointHealth, EndpointCoverLetter}, obs.calls)
	assert.NoError(t, obs.errs[0])
	assert.Error(t, obs.errs[1])
}

func TestBreaker_OpensOnServerErrorsOnly(t *testing.T) {
	var mu sync.Mutex
	hits := 0
	status := http.StatusBadRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		code := status
		mu.Unlock()
		w.WriteHeader(code)
	}, Options{Breaker: NewBreaker(BreakerSettings{MaxFailures: 2, Cooldown: time.Minute})})

	// Client errors never trip the breaker.
	for i := 0; i < 3; i++ {
		_, err := c.Health(context.Background())
		assert.True(t, IsClientError(err))
	}
	assert.Equal(t, gobreaker.StateClosed, c.Breaker().State())

	mu.Lock()
	status = http.StatusInternalServerError
	mu.Unlock()
	for i := 0; i < 2; i++ {
		_, err := c.Health(context.Background())
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrBreakerOpen))
	}
	assert.Equal(t, gobreaker.StateOpen, c.Breaker().State())

	_, err := c.Health(context.Background())
	assert.ErrorIs(t, err, ErrBreakerOpen)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, hits, "open breaker must not reach the backend")
}

func TestEncodeMultipart_RequiresContent(t *testing.T) {
	_, _, err := encodeMultipart(Upload{Filename: "x.pdf"}, nil)
	assert.Error(t, err)
}
