package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/f1dash/laptime"
)

type circuitRequest struct {
	ID int `param:"id" validate:"gte=1"`
}

type lapTimeRequest struct {
	Seconds string `query:"seconds" validate:"excluded_with=Time,required_without=Time,omitempty,numeric"`
	Time    string `query:"time" validate:"excluded_with=Seconds,required_without=Seconds,omitempty,max=16"`
}

type lapTimeData struct {
	Seconds float64 `json:"seconds"`
	Time    string  `json:"time"`
	Tick    string  `json:"tick"`
}

// Circuits returns all circuits for the circuit selector.
func (h *Handler) Circuits(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Dataset().Circuits())
}

// Circuit returns the detail card of one circuit.
func (h *Handler) Circuit(c echo.Context) error {
	var req circuitRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	detail, ok := h.svc.Circuit(req.ID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("circuit %d not found", req.ID))
	}
	return c.JSON(http.StatusOK, detail)
}

// Engines returns the engine supplier distribution.
func (h *Handler) Engines(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Engines())
}

// LapTime converts between seconds and the M:SS.mmm display form. Exactly one
// of ?seconds or ?time must be given.
func (h *Handler) LapTime(c echo.Context) error {
	var req lapTimeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var secs float64
	if req.Time != "" {
		v, err := laptime.Parse(req.Time)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		secs = v
	} else {
		v, err := strconv.ParseFloat(req.Seconds, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		secs = v
	}

	return c.JSON(http.StatusOK, lapTimeData{
		Seconds: secs,
		Time:    laptime.Format(secs),
		Tick:    laptime.Tick(secs),
	})
}
