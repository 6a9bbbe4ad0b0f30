package theme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_OutsideProvider(t *testing.T) {
	_, err := FromContext(context.Background())
	require.ErrorIs(t, err, ErrOutsideProvider)
	assert.Contains(t, err.Error(), "outside theme.Provider")

	assert.PanicsWithError(t, ErrOutsideProvider.Error(), func() {
		MustFromContext(context.Background())
	})
}

func TestProvider_StoresResolvedTheme(t *testing.T) {
	e := echo.New()
	var got Active
	e.Use(Provider())
	e.GET("/*", func(c echo.Context) error {
		got = MustFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	for _, r := range Routes() {
		req := httptest.NewRequest(http.MethodGet, r.Pattern, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, r.Theme, got.Theme)
		assert.Empty(t, rec.Header().Get(headerHXTrigger), "plain navigations do not publish a trigger")
	}
}

func TestProvider_PublishesTriggerOnBoostedNavigation(t *testing.T) {
	e := echo.New()
	e.Use(Provider())
	e.GET("/ats-checker", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ats-checker", nil)
	req.Header.Set("HX-Request", "true")
	req.Header.Set(headerHXBoosted, "true")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	want, err := TriggerHeader(ResolveActive("/ats-checker"))
	require.NoError(t, err)
	assert.Equal(t, want, rec.Header().Get(headerHXTrigger))
}

func TestProvider_UnknownRouteResolvesHome(t *testing.T) {
	e := echo.New()
	e.Use(Provider())
	var got Active
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		got = MustFromContext(c.Request().Context())
		_ = c.NoContent(http.StatusNotFound)
	}

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, Home, got.Theme)
}
