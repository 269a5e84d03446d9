package season

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/padraicbc/f1dash/models"
)

// PodiumLimit is the number of drivers kept in the podium ranking.
const PodiumLimit = 5

// DriverCount is one bar of a ranking chart.
type DriverCount struct {
	DriverID int    `json:"id"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

// Wins counts race wins per driver, most first.
func (s *Service) Wins(season int) []DriverCount {
	return s.countRaces(season, func(r models.Race) *int { return r.WinnerID })
}

// FastestLaps counts fastest laps per driver, most first.
func (s *Service) FastestLaps(season int) []DriverCount {
	return s.countRaces(season, func(r models.Race) *int { return r.FastestLapID })
}

// Poles counts pole positions per driver, most first.
func (s *Service) Poles(season int) []DriverCount {
	return s.countRaces(season, func(r models.Race) *int { return r.PoleID })
}

// Podiums counts top three classifications per driver and keeps the best
// PodiumLimit drivers.
func (s *Service) Podiums(season int) []DriverCount {
	raceIDs := lo.SliceToMap(s.races(season), func(r models.Race) (int, struct{}) {
		return r.ID, struct{}{}
	})
	ids := lo.FilterMap(s.ds.RaceDetails(), func(rd models.RaceDetail, _ int) (int, bool) {
		_, inSeason := raceIDs[rd.RaceID]
		return rd.DriverID, inSeason && rd.Podium()
	})
	out := s.rank(ids)
	if len(out) > PodiumLimit {
		out = out[:PodiumLimit]
	}
	return out
}

func (s *Service) races(season int) []models.Race {
	return lo.Filter(s.ds.Races(), func(r models.Race, _ int) bool {
		return r.Season == season
	})
}

func (s *Service) countRaces(season int, field func(models.Race) *int) []DriverCount {
	ids := lo.FilterMap(s.races(season), func(r models.Race, _ int) (int, bool) {
		id := field(r)
		if id == nil {
			return 0, false
		}
		return *id, true
	})
	return s.rank(ids)
}

// rank counts occurrences of each driver id. Equal counts are ordered by
// ascending driver id.
func (s *Service) rank(ids []int) []DriverCount {
	out := lo.MapToSlice(lo.CountValues(ids), func(id, n int) DriverCount {
		return DriverCount{DriverID: id, Name: s.driverName(id, ""), Count: n}
	})
	slices.SortFunc(out, func(a, b DriverCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.DriverID, b.DriverID)
	})
	return out
}

func (s *Service) driverName(id int, missing string) string {
	if d, ok := s.ds.Driver(id); ok {
		return d.Name
	}
	return missing
}
