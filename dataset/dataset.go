// Package dataset holds the immutable Formula 1 records the dashboard is
// computed from. A Dataset is built once at startup and shared read-only by
// every request.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/padraicbc/f1dash/models"
)

// Parts are the raw collections a Dataset is built from. The JSON names match
// the exported snapshot format.
type Parts struct {
	Teams           []models.Team           `json:"teams"`
	Drivers         []models.Driver         `json:"drivers"`
	Circuits        []models.Circuit        `json:"circuits"`
	TeamStandings   []models.TeamStanding   `json:"teams_stands"`
	DriverStandings []models.DriverStanding `json:"drivers_stands"`
	Races           []models.Race           `json:"races"`
	RaceDetails     []models.RaceDetail     `json:"race_details"`
}

// Dataset indexes Parts by id. Collections keep their source order, which is
// the order ties are broken in.
type Dataset struct {
	parts Parts

	teams    map[int]int
	drivers  map[int]int
	circuits map[int]int
	races    map[int]int
}

// New indexes p. Duplicate ids within a collection are rejected.
func New(p Parts) (*Dataset, error) {
	d := &Dataset{parts: p}

	var err error
	if d.teams, err = index(p.Teams, func(t models.Team) int { return t.ID }); err != nil {
		return nil, fmt.Errorf("teams: %w", err)
	}
	if d.drivers, err = index(p.Drivers, func(dr models.Driver) int { return dr.ID }); err != nil {
		return nil, fmt.Errorf("drivers: %w", err)
	}
	if d.circuits, err = index(p.Circuits, func(c models.Circuit) int { return c.ID }); err != nil {
		return nil, fmt.Errorf("circuits: %w", err)
	}
	if d.races, err = index(p.Races, func(r models.Race) int { return r.ID }); err != nil {
		return nil, fmt.Errorf("races: %w", err)
	}
	if _, err = index(p.DriverStandings, func(s models.DriverStanding) int { return s.ID }); err != nil {
		return nil, fmt.Errorf("driver standings: %w", err)
	}
	if _, err = index(p.TeamStandings, func(s models.TeamStanding) int { return s.ID }); err != nil {
		return nil, fmt.Errorf("team standings: %w", err)
	}

	return d, nil
}

// Decode reads a JSON snapshot.
func Decode(r io.Reader) (*Dataset, error) {
	var p Parts
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return New(p)
}

func index[T any](rows []T, id func(T) int) (map[int]int, error) {
	m := make(map[int]int, len(rows))
	for i, r := range rows {
		k := id(r)
		if _, dup := m[k]; dup {
			return nil, fmt.Errorf("duplicate id %d", k)
		}
		m[k] = i
	}
	return m, nil
}

func lookup[T any](rows []T, idx map[int]int, id int) (T, bool) {
	i, ok := idx[id]
	if !ok {
		var zero T
		return zero, false
	}
	return rows[i], true
}

// Team returns the team with the given id.
func (d *Dataset) Team(id int) (models.Team, bool) {
	return lookup(d.parts.Teams, d.teams, id)
}

// Driver returns the driver with the given id.
func (d *Dataset) Driver(id int) (models.Driver, bool) {
	return lookup(d.parts.Drivers, d.drivers, id)
}

// Circuit returns the circuit with the given id.
func (d *Dataset) Circuit(id int) (models.Circuit, bool) {
	return lookup(d.parts.Circuits, d.circuits, id)
}

// Race returns the race with the given id.
func (d *Dataset) Race(id int) (models.Race, bool) {
	return lookup(d.parts.Races, d.races, id)
}

// The accessors below hand out copies so callers cannot reorder or overwrite
// the shared collections.

func (d *Dataset) Teams() []models.Team                     { return slices.Clone(d.parts.Teams) }
func (d *Dataset) Drivers() []models.Driver                 { return slices.Clone(d.parts.Drivers) }
func (d *Dataset) Circuits() []models.Circuit               { return slices.Clone(d.parts.Circuits) }
func (d *Dataset) TeamStandings() []models.TeamStanding     { return slices.Clone(d.parts.TeamStandings) }
func (d *Dataset) DriverStandings() []models.DriverStanding { return slices.Clone(d.parts.DriverStandings) }
func (d *Dataset) RaceDetails() []models.RaceDetail         { return slices.Clone(d.parts.RaceDetails) }

// Races returns a copy of all races. The nullable driver references are
// copied too.
func (d *Dataset) Races() []models.Race {
	out := make([]models.Race, len(d.parts.Races))
	for i, r := range d.parts.Races {
		r.WinnerID = cloneID(r.WinnerID)
		r.PoleID = cloneID(r.PoleID)
		r.FastestLapID = cloneID(r.FastestLapID)
		out[i] = r
	}
	return out
}

// Parts returns a copy of every collection, e.g. for seeding a database.
func (d *Dataset) Parts() Parts {
	return Parts{
		Teams:           d.Teams(),
		Drivers:         d.Drivers(),
		Circuits:        d.Circuits(),
		TeamStandings:   d.TeamStandings(),
		DriverStandings: d.DriverStandings(),
		Races:           d.Races(),
		RaceDetails:     d.RaceDetails(),
	}
}

// Seasons returns the distinct seasons that have races, newest first.
func (d *Dataset) Seasons() []int {
	var out []int
	for _, r := range d.parts.Races {
		if !slices.Contains(out, r.Season) {
			out = append(out, r.Season)
		}
	}
	slices.SortFunc(out, func(a, b int) int { return b - a })
	return out
}

func cloneID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
