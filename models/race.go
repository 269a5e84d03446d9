package models

import "github.com/uptrace/bun"

// Race is one grand prix. The driver references are nil when the result was
// not recorded.
type Race struct {
	bun.BaseModel `bun:"table:races,alias:rc"`

	ID           int    `bun:"id,pk" json:"id"`
	Season       int    `bun:"id_season,notnull" json:"id_season"`
	CircuitID    int    `bun:"id_circuit,notnull" json:"id_circuit"`
	Date         string `bun:"date_race,notnull" json:"date_race"`
	WinnerID     *int   `bun:"id_driver_win" json:"id_driver_win"`
	PoleID       *int   `bun:"id_driver_pole" json:"id_driver_pole"`
	FastestLapID *int   `bun:"id_driver_fastlap" json:"id_driver_fastlap"`
}

// RaceDetail is the grid slot and classification of one driver in one race.
// EndPos is not always numeric: retirements and disqualifications are stored
// as sentinels such as "DNF" or "DSQ".
type RaceDetail struct {
	bun.BaseModel `bun:"table:race_details,alias:rd"`

	RaceID   int    `bun:"id_race,pk" json:"id_race"`
	DriverID int    `bun:"id_driver,pk" json:"id_driver"`
	TeamID   int    `bun:"id_driver_team,notnull" json:"id_driver_team"`
	StartPos string `bun:"start_pos,notnull" json:"start_pos"`
	EndPos   string `bun:"end_pos,notnull" json:"end_pos"`
}

// Podium reports whether the classification is one of the top three places.
func (rd RaceDetail) Podium() bool {
	switch rd.EndPos {
	case "1", "2", "3":
		return true
	}
	return false
}
