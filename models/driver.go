package models

import "github.com/uptrace/bun"

// Driver is a race driver. BoardName is the three letter timing board code.
type Driver struct {
	bun.BaseModel `bun:"table:drivers,alias:d"`

	ID        int    `bun:"id,pk" json:"id"`
	Name      string `bun:"name,notnull" json:"name"`
	BoardName string `bun:"board_name,notnull" json:"board_name"`
	Number    string `bun:"number,notnull" json:"number"`
	Country   string `bun:"country,notnull" json:"country"`
	DateBorn  string `bun:"date_born,notnull" json:"date_born"`
}
