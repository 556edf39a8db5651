package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrNotFound returns a 404 Not Found error.
func ErrNotFound(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, msg)
}
