package content

import (
	"github.com/labstack/echo/v4"

	"thirdcoast.systems/adrevenue/cmd/web/templates"
)

func HandleLinkPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		return templates.LinkPage().Render(c.Request().Context(), c.Response())
	}
}
