package testutils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/handlers"
	"github.com/nfrund/resumio/internal/middleware"
	"github.com/nfrund/resumio/internal/rendering"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/internal/view"
)

// NewEcho returns an echo instance with the middleware every feature page
// relies on: request logger, sessions, visitor id and theme.
func NewEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.Use(middleware.Logger)
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("resumio-test-secret"))))
	e.Use(view.Visitor())
	e.Use(theme.Provider())
	return e
}

// File is a file attached to a multipart request.
type File struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// Browser sends requests through an echo instance, keeping cookies between
// them so consecutive requests belong to the same visitor.
type Browser struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

// NewBrowser creates a Browser with an empty cookie jar.
func NewBrowser(t *testing.T, e *echo.Echo) *Browser {
	return &Browser{t: t, e: e, cookies: make(map[string]*http.Cookie)}
}

// Do serves req and stores the cookies the response sets.
func (b *Browser) Do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

// Get issues a GET, as htmx when htmx is true.
func (b *Browser) Get(path string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	markHTMX(req, htmx)
	return b.Do(req)
}

// PostForm issues a url-encoded POST.
func (b *Browser) PostForm(path string, values url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	markHTMX(req, htmx)
	return b.Do(req)
}

// PostMultipart issues a multipart POST with fields and optional files.
func (b *Browser) PostMultipart(path string, fields map[string]string, htmx bool, files ...File) *httptest.ResponseRecorder {
	b.t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			b.t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Name+`"`)
		if f.ContentType != "" {
			h.Set("Content-Type", f.ContentType)
		}
		part, err := w.CreatePart(h)
		if err != nil {
			b.t.Fatalf("create part %s: %v", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			b.t.Fatalf("write part %s: %v", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		b.t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	markHTMX(req, htmx)
	return b.Do(req)
}

func markHTMX(req *http.Request, htmx bool) {
	if htmx {
		req.Header.Set(view.HeaderHXRequest, "true")
	}
}
