// Package season computes the per-season views of the dashboard: rankings,
// standings, the champion and a synthetic lap time series.
//
// Every computation is a pure pass over the dataset. Missing references
// degrade to placeholder values, nothing here returns an error.
package season

import (
	"math/rand"
	"sync"
	"time"

	"github.com/padraicbc/f1dash/assets"
	"github.com/padraicbc/f1dash/dataset"
)

// Unknown is shown for drivers or teams a standings row points to but the
// dataset does not contain.
const Unknown = "?"

// Rand is the source of the lap time variance. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Service computes season views over one dataset.
type Service struct {
	ds     *dataset.Dataset
	assets *assets.Catalog

	mu  sync.Mutex
	rnd Rand
}

// Option configures a Service.
type Option func(*Service)

// WithRand pins the random source used for synthetic lap times.
func WithRand(r Rand) Option {
	return func(s *Service) { s.rnd = r }
}

// WithAssets sets the catalog used to resolve images and logos.
func WithAssets(c *assets.Catalog) Option {
	return func(s *Service) { s.assets = c }
}

// NewService returns a Service over ds.
func NewService(ds *dataset.Dataset, opts ...Option) *Service {
	s := &Service{ds: ds}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Dataset returns the dataset the service reads.
func (s *Service) Dataset() *dataset.Dataset { return s.ds }

// Assets returns the catalog used for images, possibly nil.
func (s *Service) Assets() *assets.Catalog { return s.assets }

// View is everything the dashboard shows for one season.
type View struct {
	Season          int              `json:"season"`
	Wins            []DriverCount    `json:"wins"`
	FastestLaps     []DriverCount    `json:"fastestLaps"`
	Poles           []DriverCount    `json:"poles"`
	Podiums         []DriverCount    `json:"podiums"`
	DriverStandings []DriverStanding `json:"driverStandings"`
	Champion        *DriverStanding  `json:"worldChampion,omitempty"`
	TeamStandings   []TeamStanding   `json:"teamStandings"`
	LapTimes        []LapTime        `json:"lapTimes"`
}

// View computes the full season view. Only the lap times differ between calls.
func (s *Service) View(season int) View {
	standings := s.DriverStandings(season)
	return View{
		Season:          season,
		Wins:            s.Wins(season),
		FastestLaps:     s.FastestLaps(season),
		Poles:           s.Poles(season),
		Podiums:         s.Podiums(season),
		DriverStandings: standings,
		Champion:        champion(standings),
		TeamStandings:   s.TeamStandings(season),
		LapTimes:        s.LapTimes(season),
	}
}

func (s *Service) float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}
