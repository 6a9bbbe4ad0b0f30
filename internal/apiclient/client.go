package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultBaseURL is used when Options.BaseURL is empty.
const DefaultBaseURL = "http://localhost:8000"

// maxErrorBody bounds how much of a failed response is read for its detail.
const maxErrorBody = 64 << 10

// Endpoint names, used in errors and metrics.
const (
	EndpointCoverLetter   = "cover-letter.generate"
	EndpointRoast         = "roaster.roast"
	EndpointSuggest       = "suggest"
	EndpointInterview     = "interview.generate"
	EndpointInterviewFile = "interview.generate-file"
	EndpointATSScore      = "ats.score"
	EndpointATSScoreFile  = "ats.score-file"
	EndpointHealth        = "health"
)

var endpointPaths = map[string]string{
	EndpointCoverLetter:   "/api/cover-letter/generate",
	EndpointRoast:         "/api/roaster/roast",
	EndpointSuggest:       "/api/suggest/",
	EndpointInterview:     "/api/interview/generate",
	EndpointInterviewFile: "/api/interview/generate-file",
	EndpointATSScore:      "/api/ats/score",
	EndpointATSScoreFile:  "/api/ats/score-file",
	EndpointHealth:        "/api/health",
}

// Observer receives the outcome of every backend call.
type Observer interface {
	ObserveRequest(endpoint string, duration time.Duration, err error)
}

// Options configures a Client.
type Options struct {
	BaseURL string
	// Timeout bounds each call. Zero means no client-side limit beyond ctx.
	Timeout time.Duration
	// HTTPClient overrides the default otelhttp-instrumented client.
	HTTPClient *http.Client
	// Breaker is optional; nil disables circuit breaking.
	Breaker  *Breaker
	Observer Observer
}

// Client talks to the resume backend. It holds no per-user state and is safe
// for concurrent use.
type Client struct {
	baseURL  string
	timeout  time.Duration
	http     *http.Client
	breaker  *Breaker
	observer Observer
}

// New creates a Client from opts.
func New(opts Options) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	return &Client{
		baseURL:  baseURL,
		timeout:  opts.Timeout,
		http:     hc,
		breaker:  opts.Breaker,
		observer: opts.Observer,
	}
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// Breaker returns the configured breaker, or nil.
func (c *Client) Breaker() *Breaker { return c.breaker }

// GenerateCoverLetter asks the backend to write a cover letter.
func (c *Client) GenerateCoverLetter(ctx context.Context, req CoverLetterRequest) (*CoverLetterResponse, error) {
	var out CoverLetterResponse
	if err := c.postJSON(ctx, EndpointCoverLetter, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RoastResume uploads a resume and returns the humorous critique.
func (c *Client) RoastResume(ctx context.Context, file Upload) (*RoastResponse, error) {
	var out RoastResponse
	if err := c.postMultipart(ctx, EndpointRoast, file, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Suggest asks the writing assistant for text suggestions.
func (c *Client) Suggest(ctx context.Context, req SuggestRequest) (*SuggestResponse, error) {
	var out SuggestResponse
	if err := c.postJSON(ctx, EndpointSuggest, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateInterviewQuestions generates questions from pasted text.
func (c *Client) GenerateInterviewQuestions(ctx context.Context, req InterviewQuestionsRequest) (*InterviewQuestionsResponse, error) {
	var out InterviewQuestionsResponse
	if err := c.postJSON(ctx, EndpointInterview, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateInterviewQuestionsFromFile generates questions from an uploaded resume.
func (c *Client) GenerateInterviewQuestionsFromFile(ctx context.Context, req InterviewFileRequest) (*InterviewQuestionsResponse, error) {
	fields := []formField{}
	if req.JobDesc != "" {
		fields = append(fields, formField{"jobDesc", req.JobDesc})
	}
	fields = append(fields,
		formField{"numTechQuestions", fmt.Sprint(req.NumTechQuestions)},
		formField{"numBehavioralQuestions", fmt.Sprint(req.NumBehavioralQuestions)},
	)
	var out InterviewQuestionsResponse
	if err := c.postMultipart(ctx, EndpointInterviewFile, req.File, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ScoreATS scores a structured resume document.
func (c *Client) ScoreATS(ctx context.Context, req ATSScoreRequest) (*ATSResponse, error) {
	var out ATSResponse
	if err := c.postJSON(ctx, EndpointATSScore, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ScoreATSFromFile scores an uploaded resume, optionally against a job description.
func (c *Client) ScoreATSFromFile(ctx context.Context, file Upload, jobDesc string) (*ATSResponse, error) {
	var fields []formField
	if jobDesc != "" {
		fields = append(fields, formField{"jobDesc", jobDesc})
	}
	var out ATSResponse
	if err := c.postMultipart(ctx, EndpointATSScoreFile, file, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health reports the backend's status.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, EndpointHealth, http.MethodGet, nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("apiclient: %s: encoding request: %w", endpoint, err)
	}
	return c.do(ctx, endpoint, http.MethodPost, payload, "application/json", out)
}

func (c *Client) postMultipart(ctx context.Context, endpoint string, file Upload, fields []formField, out any) error {
	payload, contentType, err := encodeMultipart(file, fields)
	if err != nil {
		return fmt.Errorf("apiclient: %s: encoding upload: %w", endpoint, err)
	}
	return c.do(ctx, endpoint, http.MethodPost, payload, contentType, out)
}

func (c *Client) do(ctx context.Context, endpoint, method string, body []byte, contentType string, out any) error {
	start := time.Now()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	err := c.breaker.execute(func() error {
		return c.roundTrip(ctx, endpoint, method, body, contentType, out)
	})
	if c.observer != nil {
		c.observer.ObserveRequest(endpoint, time.Since(start), err)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, endpoint, method string, body []byte, contentType string, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpointPaths[endpoint], reader)
	if err != nil {
		return fmt.Errorf("apiclient: %s: building request: %w", endpoint, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Detail: parseDetail(raw)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("apiclient: %s: decoding response: %w", endpoint, err)
	}
	return nil
}
