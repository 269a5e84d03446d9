package season

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/f1dash/assets"
	"github.com/padraicbc/f1dash/dataset"
	"github.com/padraicbc/f1dash/laptime"
	"github.com/padraicbc/f1dash/models"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func id(v int) *int { return &v }

func embeddedService() *Service {
	return NewService(dataset.Embedded(), WithAssets(assets.Default()), WithRand(fixedRand(0.5)))
}

func names(counts []DriverCount) []string {
	return lo.Map(counts, func(c DriverCount, _ int) string { return c.Name })
}

func TestWins(t *testing.T) {
	wins := embeddedService().Wins(2023)

	require.Len(t, wins, 3)
	assert.Equal(t, DriverCount{DriverID: 1, Name: "Max Verstappen", Count: 19}, wins[0])
	assert.Equal(t, DriverCount{DriverID: 2, Name: "Sergio Perez", Count: 2}, wins[1])
	assert.Equal(t, DriverCount{DriverID: 6, Name: "Carlos Sainz", Count: 1}, wins[2])
}

func TestWinCountsSumToRacesWithWinner(t *testing.T) {
	svc := embeddedService()
	for _, season := range []int{2022, 2023} {
		withWinner := lo.CountBy(dataset.Embedded().Races(), func(r models.Race) bool {
			return r.Season == season && r.WinnerID != nil
		})
		total := lo.SumBy(svc.Wins(season), func(c DriverCount) int { return c.Count })
		assert.Equal(t, withWinner, total, "season %d", season)
	}
}

func TestFastestLapsTieOrder(t *testing.T) {
	fl := embeddedService().FastestLaps(2023)

	assert.Equal(t, []string{
		"Max Verstappen", "Lewis Hamilton",
		"Sergio Perez", "Oscar Piastri",
		"George Russell", "Lando Norris", "Guanyu Zhou",
	}, names(fl))
	assert.Equal(t, []int{11, 4, 2, 2, 1, 1, 1}, lo.Map(fl, func(c DriverCount, _ int) int { return c.Count }))
}

func TestPoles(t *testing.T) {
	poles := embeddedService().Poles(2022)
	require.NotEmpty(t, poles)
	assert.Equal(t, "Charles Leclerc", poles[0].Name)
	assert.Equal(t, 9, poles[0].Count)
}

func TestPodiums(t *testing.T) {
	svc := embeddedService()

	// Lewis Hamilton and Charles Leclerc both have six podiums in 2023,
	// the lower driver id keeps the last slot.
	p23 := svc.Podiums(2023)
	assert.Equal(t, []string{"Max Verstappen", "Sergio Perez", "Fernando Alonso", "Lando Norris", "Lewis Hamilton"}, names(p23))
	assert.Equal(t, []int{21, 9, 8, 7, 6}, lo.Map(p23, func(c DriverCount, _ int) int { return c.Count }))

	p22 := svc.Podiums(2022)
	assert.Equal(t, []string{"Max Verstappen", "Sergio Perez", "Charles Leclerc", "Lewis Hamilton", "Carlos Sainz"}, names(p22))
}

func TestPodiumCountsMatchDetails(t *testing.T) {
	ds := dataset.Embedded()
	svc := embeddedService()

	for _, season := range []int{2022, 2023} {
		podiums := svc.Podiums(season)
		assert.LessOrEqual(t, len(podiums), PodiumLimit)

		for _, p := range podiums {
			want := lo.CountBy(ds.RaceDetails(), func(rd models.RaceDetail) bool {
				r, _ := ds.Race(rd.RaceID)
				return r.Season == season && rd.DriverID == p.DriverID &&
					(rd.EndPos == "1" || rd.EndPos == "2" || rd.EndPos == "3")
			})
			assert.Equal(t, want, p.Count, "season %d driver %s", season, p.Name)
		}
	}
}

func TestPodiumIgnoresSentinelsAndPaddedPositions(t *testing.T) {
	ds, err := dataset.New(dataset.Parts{
		Drivers: []models.Driver{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		Races:   []models.Race{{ID: 1, Season: 2023, CircuitID: 1}},
		RaceDetails: []models.RaceDetail{
			{RaceID: 1, DriverID: 1, EndPos: "01"},
			{RaceID: 1, DriverID: 2, EndPos: "DNF"},
			{RaceID: 1, DriverID: 2, EndPos: " 2"},
		},
	})
	require.NoError(t, err)

	assert.Empty(t, NewService(ds).Podiums(2023))
}

func TestDriverStandings(t *testing.T) {
	standings := embeddedService().DriverStandings(2023)
	require.Len(t, standings, 22)

	for i, row := range standings {
		assert.Equal(t, i+1, row.Pos)
		if i > 0 {
			assert.LessOrEqual(t, row.Points, standings[i-1].Points)
		}
	}

	// equal points keep dataset order and still get distinct positions
	assert.Equal(t, "Fernando Alonso", standings[3].Driver)
	assert.Equal(t, "Charles Leclerc", standings[4].Driver)
	assert.Equal(t, standings[3].Points, standings[4].Points)
	assert.Equal(t, 5, standings[4].Pos)

	first := standings[0]
	assert.Equal(t, "Max Verstappen", first.Driver)
	assert.Equal(t, "VER", first.BoardName)
	assert.Equal(t, "Red Bull", first.Team)
	assert.Equal(t, 575.0, first.Points)
	assert.Contains(t, first.DriverImage, "verstappen.jpg")
	assert.Contains(t, first.TeamLogo, "red-bull-racing-logo")
}

func TestDriverStandingsUnknownReferences(t *testing.T) {
	ds, err := dataset.New(dataset.Parts{
		Teams:   []models.Team{{ID: 1, Name: "Red Bull"}},
		Drivers: []models.Driver{{ID: 1, Name: "Max Verstappen"}},
		DriverStandings: []models.DriverStanding{
			{ID: 1, Season: 2023, DriverID: 1, TeamID: 99, Points: 10},
			{ID: 2, Season: 2023, DriverID: 42, TeamID: 1, Points: 20},
		},
	})
	require.NoError(t, err)

	standings := NewService(ds, WithAssets(assets.Default())).DriverStandings(2023)
	require.Len(t, standings, 2)

	ghost := standings[0]
	assert.Equal(t, Unknown, ghost.Driver)
	assert.Empty(t, ghost.DriverImage)
	assert.Equal(t, "Red Bull", ghost.Team)

	assert.Equal(t, "Max Verstappen", standings[1].Driver)
	assert.NotEmpty(t, standings[1].DriverImage)
	assert.Equal(t, Unknown, standings[1].Team)
	assert.Empty(t, standings[1].TeamLogo)
}

func TestChampion(t *testing.T) {
	svc := embeddedService()

	c := svc.Champion(2022)
	require.NotNil(t, c)
	assert.Equal(t, 1, c.Pos)
	assert.Equal(t, "Max Verstappen", c.Driver)
	assert.Equal(t, 454.0, c.Points)

	assert.Nil(t, svc.Champion(1999))
}

func TestTeamStandings(t *testing.T) {
	ts := embeddedService().TeamStandings(2023)
	require.Len(t, ts, 10)
	assert.Equal(t, "Red Bull", ts[0].Team)
	assert.Equal(t, 860.0, ts[0].Points)
	assert.Equal(t, "Honda RBPT En.", ts[0].Engine)
	assert.Equal(t, "Mercedes", ts[1].Team)
	assert.Equal(t, 10, ts[9].Pos)
}

func TestLapTimes(t *testing.T) {
	lt := embeddedService().LapTimes(2023)
	require.Len(t, lt, 22)

	assert.Equal(t, "Sakhir", lt[0].Circuit)
	assert.InDelta(t, 91.447*1.035, lt[0].Seconds, 1e-9)
	assert.Equal(t, "Abu Dhabi", lt[21].Circuit)
}

func TestLapTimesWithinBand(t *testing.T) {
	ds := dataset.Embedded()
	svc := NewService(ds, WithRand(rand.New(rand.NewSource(1))))

	for _, season := range []int{2022, 2023} {
		for _, p := range svc.LapTimes(season) {
			c, ok := ds.Circuit(p.CircuitID)
			require.True(t, ok)
			base := laptime.Seconds(c.WRTime)
			assert.Greater(t, p.Seconds, base, c.Name)
			assert.Less(t, p.Seconds, base*MaxSlowdown, c.Name)
		}
	}
}

func TestLapTimesExample(t *testing.T) {
	ds, err := dataset.New(dataset.Parts{
		Circuits: []models.Circuit{{ID: 1, Name: "Test Ring", City: "Testville", WRTime: "1:18.183"}},
		Races:    []models.Race{{ID: 1, Season: 2023, CircuitID: 1, WinnerID: id(1)}},
	})
	require.NoError(t, err)

	for _, u := range []float64{0.01, 0.5, 0.99} {
		lt := NewService(ds, WithRand(fixedRand(u))).LapTimes(2023)
		require.Len(t, lt, 1)
		assert.Equal(t, "Testville", lt[0].Circuit)
		assert.GreaterOrEqual(t, lt[0].Seconds, 79.75)
		assert.LessOrEqual(t, lt[0].Seconds, 82.09)
	}
}

func TestLapTimesStayBelowUpperBound(t *testing.T) {
	ds, err := dataset.New(dataset.Parts{
		Circuits: []models.Circuit{{ID: 1, City: "Testville", WRTime: "1:18.183"}},
		Races:    []models.Race{{ID: 1, Season: 2023, CircuitID: 1, WinnerID: id(1)}},
	})
	require.NoError(t, err)

	lt := NewService(ds, WithRand(fixedRand(math.Nextafter(1, 0)))).LapTimes(2023)
	require.Len(t, lt, 1)
	assert.Less(t, lt[0].Seconds, 78.183*MaxSlowdown)
	assert.Greater(t, lt[0].Seconds, 78.183*MinSlowdown)
}

func TestLapTimesSkipsUnresolvable(t *testing.T) {
	ds, err := dataset.New(dataset.Parts{
		Circuits: []models.Circuit{
			{ID: 1, City: "Good", WRTime: "1:30.000"},
			{ID: 2, City: "Broken", WRTime: "n/a"},
		},
		Races: []models.Race{
			{ID: 1, Season: 2023, CircuitID: 1, WinnerID: id(1)},
			{ID: 2, Season: 2023, CircuitID: 1},
			{ID: 3, Season: 2023, CircuitID: 77, WinnerID: id(1)},
			{ID: 4, Season: 2023, CircuitID: 2, WinnerID: id(1)},
			{ID: 5, Season: 2022, CircuitID: 1, WinnerID: id(1)},
		},
	})
	require.NoError(t, err)

	lt := NewService(ds, WithRand(fixedRand(0))).LapTimes(2023)
	require.Len(t, lt, 1)
	assert.Equal(t, 1, lt[0].RaceID)
	assert.InDelta(t, 90*MinSlowdown, lt[0].Seconds, 1e-9)
}

func TestViewUnknownSeason(t *testing.T) {
	v := embeddedService().View(1999)

	assert.Equal(t, 1999, v.Season)
	assert.Empty(t, v.Wins)
	assert.Empty(t, v.FastestLaps)
	assert.Empty(t, v.Poles)
	assert.Empty(t, v.Podiums)
	assert.Empty(t, v.DriverStandings)
	assert.Empty(t, v.TeamStandings)
	assert.Empty(t, v.LapTimes)
	assert.Nil(t, v.Champion)
}

func TestViewIsConsistent(t *testing.T) {
	v := embeddedService().View(2023)

	require.NotNil(t, v.Champion)
	assert.Equal(t, v.DriverStandings[0], *v.Champion)
	assert.Len(t, v.Podiums, PodiumLimit)
	assert.Len(t, v.LapTimes, 22)
}

func TestViewConcurrent(t *testing.T) {
	svc := NewService(dataset.Embedded())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := svc.View(2022)
			assert.Len(t, v.LapTimes, 22)
		}()
	}
	wg.Wait()
}

func TestEngines(t *testing.T) {
	groups := embeddedService().Engines()

	assert.Equal(t, []string{"Honda RBPT", "Mercedes", "Ferrari", "Renault"},
		lo.Map(groups, func(g EngineGroup, _ int) string { return g.Label }))
	assert.Equal(t, []int{2, 4, 3, 1},
		lo.Map(groups, func(g EngineGroup, _ int) int { return g.Count }))
	assert.InDelta(t, 0.4, groups[1].Share, 1e-9)
	assert.Equal(t, "Mercedes En.", groups[1].Engine)
	assert.Equal(t, "Mercedes", groups[1].Teams[0].Name)
	assert.NotEmpty(t, groups[1].Teams[0].Logo)
}

func TestCircuit(t *testing.T) {
	svc := embeddedService()

	monaco, ok := svc.Circuit(6)
	require.True(t, ok)
	assert.Equal(t, "Circuit de Monaco", monaco.Name)
	assert.Equal(t, "3.337", monaco.LengthKm)
	assert.Contains(t, monaco.Image, "Monaco_Circuit")

	_, ok = svc.Circuit(999)
	assert.False(t, ok)

	first, ok := svc.CircuitOrFirst(999)
	require.True(t, ok)
	assert.Equal(t, 1, first.ID)

	_, ok = NewService(&dataset.Dataset{}).CircuitOrFirst(1)
	assert.False(t, ok)
}
