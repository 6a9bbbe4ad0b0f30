package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/view"
	"github.com/stretchr/testify/assert"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Capture the context after the session middleware has initialised it.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "Ready for another resume")
		flashes := view.GetFlashData(c)

		assert.Equal(t, []string{"Ready for another resume"}, flashes.Success)
		assert.Empty(t, flashes.Error)

		flashesAfterRead := view.GetFlashData(c)
		assert.True(t, flashesAfterRead.Empty(), "Flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "It failed!")
		flashes := view.GetFlashData(c)

		assert.Equal(t, []string{"It failed!"}, flashes.Error)
		assert.Empty(t, flashes.Success)
	})

	t.Run("GetFlashData with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()
		assert.True(t, view.GetFlashData(c).Empty())
	})
}
