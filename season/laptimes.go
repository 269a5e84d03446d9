package season

import (
	"math"

	"github.com/samber/lo"

	"github.com/padraicbc/f1dash/laptime"
	"github.com/padraicbc/f1dash/models"
)

// The synthetic average lap is the lap record slowed down by a factor drawn
// uniformly from [MinSlowdown, MaxSlowdown).
const (
	MinSlowdown = 1.02
	MaxSlowdown = 1.05
)

// LapTime is one point of the average lap time chart. The value is
// synthesized from the circuit's lap record, it is not measured.
type LapTime struct {
	RaceID    int     `json:"raceID"`
	CircuitID int     `json:"circuitID"`
	Circuit   string  `json:"circuit"`
	Seconds   float64 `json:"avgLapTime"`
}

// LapTimes returns a simulated average lap time for every race of the season
// that has a winner, in race order. Races on unknown circuits, or circuits
// without a parseable lap record, are left out.
func (s *Service) LapTimes(season int) []LapTime {
	return lo.FilterMap(s.races(season), func(r models.Race, _ int) (LapTime, bool) {
		if r.WinnerID == nil {
			return LapTime{}, false
		}
		c, ok := s.ds.Circuit(r.CircuitID)
		if !ok {
			return LapTime{}, false
		}
		base, err := laptime.Parse(c.WRTime)
		if err != nil {
			return LapTime{}, false
		}
		return LapTime{
			RaceID:    r.ID,
			CircuitID: c.ID,
			Circuit:   c.City,
			Seconds:   slowed(base, s.slowdown()),
		}, true
	})
}

func (s *Service) slowdown() float64 {
	return MinSlowdown + s.float64()*(MaxSlowdown-MinSlowdown)
}

// slowed applies factor to base, kept strictly below MaxSlowdown*base where
// rounding would otherwise reach it.
func slowed(base, factor float64) float64 {
	return math.Min(base*factor, math.Nextafter(base*MaxSlowdown, 0))
}
