package models

import "github.com/uptrace/bun"

// Circuit is a race track. Length is in meters, WRTime is the lap record
// formatted as M:SS.mmm.
type Circuit struct {
	bun.BaseModel `bun:"table:circuits,alias:c"`

	ID      int    `bun:"id,pk" json:"id"`
	Name    string `bun:"name,notnull,unique" json:"name"`
	City    string `bun:"city,notnull" json:"city"`
	Country string `bun:"country,notnull" json:"country"`
	Laps    int    `bun:"laps,notnull" json:"laps"`
	Length  int    `bun:"length,notnull" json:"length"`
	WRTime  string `bun:"wr_time,notnull" json:"wr_time"`
}
