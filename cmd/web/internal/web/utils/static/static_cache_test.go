package static

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestNewStaticCache_IndexesAssets(t *testing.T) {
	c, err := NewStaticCache()
	require.NoError(t, err)
	require.Contains(t, c.entries, "main.css")
	require.NotEmpty(t, c.entries["main.css"].ETag)
}

func TestServeStaticFile(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/static/main.css", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, cache.ServeStaticFile("/static/")(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
	require.NotEmpty(t, rec.Header().Get("ETag"))
}

func TestServeStaticFile_NotModified(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)

	etag := cache.entries["main.css"].ETag

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/static/main.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()

	require.NoError(t, cache.ServeStaticFile("/static/")(e.NewContext(req, rec)))
	require.Equal(t, http.StatusNotModified, rec.Code)
}

func TestServeStaticFile_Missing(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/static/nope.css", nil)
	rec := httptest.NewRecorder()

	err = cache.ServeStaticFile("/static/")(e.NewContext(req, rec))
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusNotFound, httpErr.Code)
}
