package middleware

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/labstack/echo/v4"
)

const seasonKey = "season"

// Season returns an Echo middleware that resolves the selected season from the
// :season path parameter or the ?season query parameter and stores it on the
// context. A missing season selects fallback. In strict mode a season outside
// supported is rejected with 400, otherwise it also selects fallback.
func Season(supported []int, fallback int, strict bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Param(seasonKey)
			if raw == "" {
				raw = c.QueryParam(seasonKey)
			}

			season := fallback
			if raw != "" {
				year, err := strconv.Atoi(raw)
				switch {
				case err == nil && slices.Contains(supported, year):
					season = year
				case strict && err != nil:
					return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("season %q is not a year", raw))
				case strict:
					return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("season %d is not supported", year))
				}
			}

			c.Set(seasonKey, season)
			return next(c)
		}
	}
}

// SeasonFrom returns the season stored by Season, 0 when the middleware did
// not run.
func SeasonFrom(c echo.Context) int {
	season, _ := c.Get(seasonKey).(int)
	return season
}
