package content

import (
	"github.com/labstack/echo/v4"

	"thirdcoast.systems/adrevenue/cmd/web/templates"
)

func HandleManualPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		return templates.ManualPage().Render(c.Request().Context(), c.Response())
	}
}
