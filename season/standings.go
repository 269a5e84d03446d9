package season

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/padraicbc/f1dash/models"
)

// DriverStanding is one row of the driver championship table.
type DriverStanding struct {
	Pos         int     `json:"pos"`
	DriverID    int     `json:"driverID"`
	Driver      string  `json:"driver"`
	BoardName   string  `json:"boardName,omitempty"`
	DriverImage string  `json:"driverImage"`
	TeamID      int     `json:"teamID"`
	Team        string  `json:"team"`
	TeamLogo    string  `json:"teamLogo"`
	Points      float64 `json:"points"`
}

// TeamStanding is one row of the constructor championship table.
type TeamStanding struct {
	Pos      int     `json:"pos"`
	TeamID   int     `json:"teamID"`
	Team     string  `json:"team"`
	Engine   string  `json:"engine"`
	TeamLogo string  `json:"teamLogo"`
	Points   float64 `json:"points"`
}

// DriverStandings ranks the season's drivers by points. Positions are
// positional: equal points still get consecutive positions, in dataset order.
func (s *Service) DriverStandings(season int) []DriverStanding {
	rows := lo.Filter(s.ds.DriverStandings(), func(st models.DriverStanding, _ int) bool {
		return st.Season == season
	})
	slices.SortStableFunc(rows, func(a, b models.DriverStanding) int {
		return cmp.Compare(b.Points, a.Points)
	})

	return lo.Map(rows, func(st models.DriverStanding, i int) DriverStanding {
		row := DriverStanding{
			Pos:      i + 1,
			DriverID: st.DriverID,
			Driver:   Unknown,
			TeamID:   st.TeamID,
			Team:     Unknown,
			Points:   st.Points,
		}
		if d, ok := s.ds.Driver(st.DriverID); ok {
			row.Driver = d.Name
			row.BoardName = d.BoardName
			row.DriverImage = s.assets.DriverImage(d.Name)
		}
		if t, ok := s.ds.Team(st.TeamID); ok {
			row.Team = t.Name
			row.TeamLogo = s.assets.TeamLogo(t.Name)
		}
		return row
	})
}

// Champion returns the leader of the season, or nil without standings.
func (s *Service) Champion(season int) *DriverStanding {
	return champion(s.DriverStandings(season))
}

func champion(standings []DriverStanding) *DriverStanding {
	if len(standings) == 0 {
		return nil
	}
	c := standings[0]
	return &c
}

// TeamStandings ranks the season's teams by points, like DriverStandings.
func (s *Service) TeamStandings(season int) []TeamStanding {
	rows := lo.Filter(s.ds.TeamStandings(), func(st models.TeamStanding, _ int) bool {
		return st.Season == season
	})
	slices.SortStableFunc(rows, func(a, b models.TeamStanding) int {
		return cmp.Compare(b.Points, a.Points)
	})

	return lo.Map(rows, func(st models.TeamStanding, i int) TeamStanding {
		row := TeamStanding{Pos: i + 1, TeamID: st.TeamID, Team: Unknown, Points: st.Points}
		if t, ok := s.ds.Team(st.TeamID); ok {
			row.Team = t.Name
			row.Engine = t.Engine
			row.TeamLogo = s.assets.TeamLogo(t.Name)
		}
		return row
	})
}
