package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/padraicbc/f1dash/assets"
	"github.com/padraicbc/f1dash/dataset"
	"github.com/padraicbc/f1dash/season"
	"github.com/padraicbc/f1dash/web"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func newServer(t *testing.T) *echo.Echo {
	t.Helper()

	r, err := web.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = r
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler(zap.NewNop())

	svc := season.NewService(dataset.Embedded(), season.WithAssets(assets.Default()), season.WithRand(fixedRand(0.5)))
	New(svc, []int{2023, 2022}, 2023).Register(e)
	return e
}

func get(t *testing.T, e *echo.Echo, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	rec := get(t, newServer(t), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSeasons(t *testing.T) {
	rec := get(t, newServer(t), "/api/seasons")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"seasons":[2023,2022],"default":2023}`, rec.Body.String())
}

func TestSeasonView(t *testing.T) {
	rec := get(t, newServer(t), "/api/seasons/2022")
	require.Equal(t, http.StatusOK, rec.Code)

	view := decode[season.View](t, rec)
	assert.Equal(t, 2022, view.Season)
	require.NotNil(t, view.Champion)
	assert.Equal(t, "Max Verstappen", view.Champion.Driver)
	assert.Equal(t, 454.0, view.Champion.Points)
	assert.Len(t, view.LapTimes, 22)
}

func TestRankings(t *testing.T) {
	e := newServer(t)

	wins := decode[[]season.DriverCount](t, get(t, e, "/api/seasons/2023/wins"))
	require.NotEmpty(t, wins)
	assert.Equal(t, season.DriverCount{DriverID: 1, Name: "Max Verstappen", Count: 19}, wins[0])

	poles := decode[[]season.DriverCount](t, get(t, e, "/api/seasons/2022/poles"))
	require.NotEmpty(t, poles)
	assert.Equal(t, "Charles Leclerc", poles[0].Name)
	assert.Equal(t, 9, poles[0].Count)

	podiums := decode[[]season.DriverCount](t, get(t, e, "/api/seasons/2023/podiums"))
	assert.Len(t, podiums, season.PodiumLimit)

	fl := decode[[]season.DriverCount](t, get(t, e, "/api/seasons/2023/fastest-laps"))
	assert.Len(t, fl, 7)
}

func TestStandings(t *testing.T) {
	e := newServer(t)

	drivers := decode[[]season.DriverStanding](t, get(t, e, "/api/seasons/2023/standings"))
	require.Len(t, drivers, 22)
	for i, row := range drivers {
		assert.Equal(t, i+1, row.Pos)
		if i > 0 {
			assert.LessOrEqual(t, row.Points, drivers[i-1].Points)
		}
	}

	teams := decode[[]season.TeamStanding](t, get(t, e, "/api/seasons/2023/team-standings"))
	require.NotEmpty(t, teams)
	assert.Equal(t, "Red Bull", teams[0].Team)
	assert.Equal(t, 860.0, teams[0].Points)

	champ := decode[season.DriverStanding](t, get(t, e, "/api/seasons/2023/champion"))
	assert.Equal(t, 575.0, champ.Points)
}

func TestLapTimes(t *testing.T) {
	points := decode[[]lapTimePoint](t, get(t, newServer(t), "/api/seasons/2023/lap-times"))

	require.Len(t, points, 22)
	assert.Equal(t, "Sakhir", points[0].Circuit)
	assert.InDelta(t, 91.447*1.035, points[0].Seconds, 1e-9)
	assert.Equal(t, "1:34.648", points[0].Label)
	assert.Equal(t, "1:34", points[0].Tick)
}

func TestUnsupportedSeason(t *testing.T) {
	e := newServer(t)
	for _, target := range []string{"/api/seasons/1999", "/api/seasons/abc/wins", "/api/seasons/2021/champion"} {
		rec := get(t, e, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		body := decode[errorBody](t, rec)
		assert.Equal(t, http.StatusBadRequest, body.Code)
		assert.NotEmpty(t, body.Message)
	}
}

func TestChampionWithoutStandings(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(zap.NewNop())
	ds, err := dataset.New(dataset.Parts{})
	require.NoError(t, err)
	New(season.NewService(ds), []int{2023}, 2023).Register(e)

	rec := get(t, e, "/api/seasons/2023/champion")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "season 2023 has no standings", decode[errorBody](t, rec).Message)
}

func TestCircuits(t *testing.T) {
	e := newServer(t)

	rec := get(t, e, "/api/circuits")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 26)

	detail := decode[season.CircuitDetail](t, get(t, e, "/api/circuits/6"))
	assert.Equal(t, "Circuit de Monaco", detail.Name)
	assert.Equal(t, "3.337", detail.LengthKm)
	assert.NotEmpty(t, detail.Image)

	assert.Equal(t, http.StatusNotFound, get(t, e, "/api/circuits/999").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, e, "/api/circuits/0").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, e, "/api/circuits/monaco").Code)
}

func TestEngines(t *testing.T) {
	groups := decode[[]season.EngineGroup](t, get(t, newServer(t), "/api/engines"))

	require.Len(t, groups, 4)
	assert.Equal(t, "Honda RBPT", groups[0].Label)
	assert.Equal(t, 2, groups[0].Count)
	assert.InDelta(t, 0.4, groups[1].Share, 1e-9)
}

func TestLapTimeConversion(t *testing.T) {
	e := newServer(t)

	fromTime := decode[lapTimeData](t, get(t, e, "/api/laptime?time=1:18.183"))
	assert.InDelta(t, 78.183, fromTime.Seconds, 1e-9)
	assert.Equal(t, "1:18.183", fromTime.Time)
	assert.Equal(t, "1:18", fromTime.Tick)

	fromSeconds := decode[lapTimeData](t, get(t, e, "/api/laptime?seconds=59.9996"))
	assert.Equal(t, "1:00.000", fromSeconds.Time)

	for seconds, want := range map[string]string{
		"92.456": "1:32.456",
		"92":     "1:32.000",
		"0.5":    "0:00.500",
	} {
		rec := get(t, e, "/api/laptime?seconds="+seconds)
		require.Equal(t, http.StatusOK, rec.Code, seconds)
		assert.Equal(t, want, decode[lapTimeData](t, rec).Time, seconds)
	}

	for _, target := range []string{
		"/api/laptime",
		"/api/laptime?seconds=1&time=0:01.000",
		"/api/laptime?seconds=fast",
		"/api/laptime?time=1:xx.000",
	} {
		assert.Equal(t, http.StatusBadRequest, get(t, e, target).Code, target)
	}
}

func TestDashboard(t *testing.T) {
	e := newServer(t)

	rec := get(t, e, "/?season=2022&circuit=6")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "2022", doc.Find("#season-selector option[selected]").AttrOr("value", ""))
	assert.Equal(t, "Circuit de Monaco", doc.Find("#circuit dd.name").Text())
}

func TestDashboardFallsBackToDefaultSeason(t *testing.T) {
	rec := get(t, newServer(t), "/?season=1999&circuit=nope")
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "2023", doc.Find("#season-selector option[selected]").AttrOr("value", ""))
	assert.Equal(t, "Bahrain International Circuit", doc.Find("#circuit dd.name").Text())
}

func TestNotFoundPages(t *testing.T) {
	e := newServer(t)

	api := get(t, e, "/api/nothing")
	assert.Equal(t, http.StatusNotFound, api.Code)
	assert.Equal(t, http.StatusNotFound, decode[errorBody](t, api).Code)

	page := get(t, e, "/nothing")
	assert.Equal(t, http.StatusNotFound, page.Code)
	assert.Equal(t, "Not Found", page.Body.String())
}
