package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/f1dash/laptime"
	mw "github.com/padraicbc/f1dash/middleware"
	"github.com/padraicbc/f1dash/season"
)

type seasonsData struct {
	Seasons []int `json:"seasons"`
	Default int   `json:"default"`
}

// lapTimePoint is a chart point with its display labels.
type lapTimePoint struct {
	season.LapTime
	Label string `json:"label"`
	Tick  string `json:"tick"`
}

// Seasons returns the season selector options.
func (h *Handler) Seasons(c echo.Context) error {
	return c.JSON(http.StatusOK, seasonsData{Seasons: h.seasons, Default: h.defaultSeason})
}

// SeasonView returns everything the dashboard shows for the selected season.
func (h *Handler) SeasonView(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.View(mw.SeasonFrom(c)))
}

// Wins returns the race win ranking of the selected season.
func (h *Handler) Wins(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Wins(mw.SeasonFrom(c)))
}

// FastestLaps returns the fastest lap ranking of the selected season.
func (h *Handler) FastestLaps(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.FastestLaps(mw.SeasonFrom(c)))
}

// Poles returns the pole position ranking of the selected season.
func (h *Handler) Poles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Poles(mw.SeasonFrom(c)))
}

// Podiums returns the top podium finishers of the selected season.
func (h *Handler) Podiums(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Podiums(mw.SeasonFrom(c)))
}

// Standings returns the driver championship table.
func (h *Handler) Standings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.DriverStandings(mw.SeasonFrom(c)))
}

// TeamStandings returns the constructor championship table.
func (h *Handler) TeamStandings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.TeamStandings(mw.SeasonFrom(c)))
}

// Champion returns the championship leader.
func (h *Handler) Champion(c echo.Context) error {
	year := mw.SeasonFrom(c)
	champ := h.svc.Champion(year)
	if champ == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("season %d has no standings", year))
	}
	return c.JSON(http.StatusOK, champ)
}

// LapTimes returns the synthetic average lap time series with formatted labels.
func (h *Handler) LapTimes(c echo.Context) error {
	series := h.svc.LapTimes(mw.SeasonFrom(c))

	result := make([]lapTimePoint, len(series))
	for i, lt := range series {
		result[i] = lapTimePoint{
			LapTime: lt,
			Label:   laptime.Format(lt.Seconds),
			Tick:    laptime.Tick(lt.Seconds),
		}
	}
	return c.JSON(http.StatusOK, result)
}
