package models

import "github.com/uptrace/bun"

// DriverStanding is the final points tally of one driver in one season.
type DriverStanding struct {
	bun.BaseModel `bun:"table:driver_standings,alias:ds"`

	ID       int     `bun:"id,pk" json:"id"`
	Season   int     `bun:"id_season,notnull" json:"id_season"`
	DriverID int     `bun:"id_driver,notnull" json:"id_driver"`
	TeamID   int     `bun:"id_driver_team,notnull" json:"id_driver_team"`
	Points   float64 `bun:"points,notnull" json:"points"`
}

// TeamStanding is the final points tally of one team in one season.
type TeamStanding struct {
	bun.BaseModel `bun:"table:team_standings,alias:ts"`

	ID     int     `bun:"id,pk" json:"id"`
	Season int     `bun:"id_season,notnull" json:"id_season"`
	TeamID int     `bun:"id_team,notnull" json:"id_team"`
	Points float64 `bun:"points,notnull" json:"points"`
}
