package content

import (
	"github.com/labstack/echo/v4"

	"thirdcoast.systems/adrevenue/cmd/web/templates"
)

// HandleHomePage renders the workflow chooser with the API key status banner.
func HandleHomePage(apiKeySet bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		return templates.Home(apiKeySet).Render(c.Request().Context(), c.Response())
	}
}
