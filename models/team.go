package models

import "github.com/uptrace/bun"

// Team is a constructor entered in the championship.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID      int    `bun:"id,pk" json:"id"`
	Name    string `bun:"name,notnull,unique" json:"name"`
	Country string `bun:"country,notnull" json:"country"`
	Engine  string `bun:"engine,notnull" json:"engine"`
}
