package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	mw "github.com/padraicbc/f1dash/middleware"
	"github.com/padraicbc/f1dash/web"
)

// Dashboard renders the HTML dashboard for ?season and ?circuit. Values the
// selectors cannot produce fall back to the defaults.
func (h *Handler) Dashboard(c echo.Context) error {
	circuitID, _ := strconv.Atoi(c.QueryParam("circuit"))
	page := web.NewPage(h.svc, h.seasons, mw.SeasonFrom(c), circuitID)
	return c.Render(http.StatusOK, web.DashboardTemplate, page)
}
