// Package assets maps team, driver and circuit names to the image URLs shown
// on the dashboard.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/viper"
)

//go:embed assets.yaml
var defaults []byte

// Entry is one name to URL mapping in an assets document.
type Entry struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

type document struct {
	Teams    []Entry `mapstructure:"teams"`
	Drivers  []Entry `mapstructure:"drivers"`
	Circuits []Entry `mapstructure:"circuits"`
}

// Catalog is an immutable set of lookups. A nil Catalog knows no assets.
type Catalog struct {
	teams    map[string]string
	drivers  map[string]string
	circuits map[string]string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(defaults))
		if err != nil {
			panic("assets: embedded catalog: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads a YAML assets document.
func Load(r io.Reader) (*Catalog, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("read assets: %w", err)
	}
	return fromViper(v)
}

// LoadFile reads an assets document from disk. The file replaces the
// embedded catalog entirely.
func LoadFile(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read assets %s: %w", path, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Catalog, error) {
	var doc document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("decode assets: %w", err)
	}
	return &Catalog{
		teams:    toMap(doc.Teams),
		drivers:  toMap(doc.Drivers),
		circuits: toMap(doc.Circuits),
	}, nil
}

func toMap(entries []Entry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Name] = e.URL
	}
	return m
}

// TeamLogo returns the logo URL of the named team, or "".
func (c *Catalog) TeamLogo(team string) string {
	if c == nil {
		return ""
	}
	return c.teams[team]
}

// DriverImage returns the portrait URL of the named driver, or "".
func (c *Catalog) DriverImage(driver string) string {
	if c == nil {
		return ""
	}
	return c.drivers[driver]
}

// CircuitImage returns the layout image URL of the named circuit, or "".
func (c *Catalog) CircuitImage(circuit string) string {
	if c == nil {
		return ""
	}
	return c.circuits[circuit]
}
