package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	mw "github.com/padraicbc/f1dash/middleware"
	"github.com/padraicbc/f1dash/season"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	svc           *season.Service
	seasons       []int
	defaultSeason int
}

// New creates a Handler serving svc. seasons are the selector options and
// defaultSeason the one shown when none is chosen.
func New(svc *season.Service, seasons []int, defaultSeason int) *Handler {
	return &Handler{svc: svc, seasons: seasons, defaultSeason: defaultSeason}
}

// Register mounts every route on e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	e.GET("/", h.Dashboard, mw.Season(h.seasons, h.defaultSeason, false))

	api := e.Group("/api")
	api.GET("/seasons", h.Seasons)
	api.GET("/circuits", h.Circuits)
	api.GET("/circuits/:id", h.Circuit)
	api.GET("/engines", h.Engines)
	api.GET("/laptime", h.LapTime)

	s := api.Group("/seasons/:season", mw.Season(h.seasons, h.defaultSeason, true))
	s.GET("", h.SeasonView)
	s.GET("/wins", h.Wins)
	s.GET("/fastest-laps", h.FastestLaps)
	s.GET("/poles", h.Poles)
	s.GET("/podiums", h.Podiums)
	s.GET("/standings", h.Standings)
	s.GET("/team-standings", h.TeamStandings)
	s.GET("/champion", h.Champion)
	s.GET("/lap-times", h.LapTimes)
}

// Health reports that the server is up.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a Validator for request structs.
func NewValidator() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks i against its validate tags.
func (cv *Validator) Validate(i any) error {
	if err := cv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

type errorBody struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ErrorHandler renders errors as {"message","code"} JSON under /api and as
// plain text everywhere else. Unexpected errors are logged.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
		} else {
			logger.Error("unhandled error", zap.Error(err), zap.String("uri", c.Request().RequestURI))
		}

		var werr error
		switch {
		case c.Request().Method == http.MethodHead:
			werr = c.NoContent(code)
		case strings.HasPrefix(c.Request().URL.Path, "/api/"):
			werr = c.JSON(code, errorBody{Message: msg, Code: code})
		default:
			werr = c.String(code, msg)
		}
		if werr != nil {
			logger.Warn("writing error response failed", zap.Error(werr))
		}
	}
}
