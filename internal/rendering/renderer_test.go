package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func TestRenderComponent(t *testing.T) {
	r := NewUniversalRenderer()

	out, err := r.RenderComponent(context.Background(), html.P(g.Text("gomponent")))
	require.NoError(t, err)
	assert.Equal(t, "<p>gomponent</p>", string(out))

	tc := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<span>templ</span>")
		return err
	})
	out, err = r.RenderComponent(context.Background(), tc)
	require.NoError(t, err)
	assert.Equal(t, "<span>templ</span>", string(out))

	_, err = r.RenderComponent(context.Background(), 42)
	assert.ErrorContains(t, err, "unsupported component type: int")
}

func TestRenderPage(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, NewUniversalRenderer().RenderPage(c, http.StatusNotFound, html.H1(g.Text("Not found"))))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<h1>Not found</h1>", rec.Body.String())
}

func TestRenderPage_FailureWritesNothing(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := NewUniversalRenderer().RenderPage(c, http.StatusOK, "not a component")
	require.Error(t, err)
	assert.False(t, c.Response().Committed)
}
