package web

import (
	"github.com/padraicbc/f1dash/models"
	"github.com/padraicbc/f1dash/season"
)

// Page is the view model of the dashboard template.
type Page struct {
	Seasons    []int
	View       season.View
	Circuits   []models.Circuit
	Circuit    season.CircuitDetail
	HasCircuit bool
	Engines    []season.EngineGroup
}

// NewPage computes the dashboard for year. An unknown circuitID selects the
// first circuit.
func NewPage(svc *season.Service, seasons []int, year, circuitID int) Page {
	detail, ok := svc.CircuitOrFirst(circuitID)
	return Page{
		Seasons:    seasons,
		View:       svc.View(year),
		Circuits:   svc.Dataset().Circuits(),
		Circuit:    detail,
		HasCircuit: ok,
		Engines:    svc.Engines(),
	}
}

// Ranking is one of the driver count tables of the dashboard.
type Ranking struct {
	ID    string
	Title string
	Rows  []season.DriverCount
}

// Rankings returns the count tables in display order.
func (p Page) Rankings() []Ranking {
	return []Ranking{
		{ID: "wins", Title: "Wins", Rows: p.View.Wins},
		{ID: "fastest-laps", Title: "Fastest Laps", Rows: p.View.FastestLaps},
		{ID: "poles", Title: "Pole Positions", Rows: p.View.Poles},
		{ID: "podiums", Title: "Podiums", Rows: p.View.Podiums},
	}
}
