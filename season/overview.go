package season

import (
	"strconv"
	"strings"

	"github.com/padraicbc/f1dash/models"
)

// EngineGroup lists the teams running one power unit supplier.
type EngineGroup struct {
	Engine string       `json:"engine"`
	Label  string       `json:"label"`
	Count  int          `json:"count"`
	Share  float64      `json:"share"`
	Teams  []EngineTeam `json:"teams"`
}

// EngineTeam is a team entry of an EngineGroup.
type EngineTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Engines groups all teams by engine supplier, suppliers in order of first
// appearance. Share is the fraction of all teams in the group.
func (s *Service) Engines() []EngineGroup {
	teams := s.ds.Teams()

	var groups []EngineGroup
	pos := map[string]int{}
	for _, t := range teams {
		i, ok := pos[t.Engine]
		if !ok {
			i = len(groups)
			pos[t.Engine] = i
			groups = append(groups, EngineGroup{
				Engine: t.Engine,
				Label:  strings.Replace(t.Engine, " En.", "", 1),
			})
		}
		groups[i].Teams = append(groups[i].Teams, EngineTeam{
			ID:   t.ID,
			Name: t.Name,
			Logo: s.assets.TeamLogo(t.Name),
		})
		groups[i].Count++
	}
	for i := range groups {
		groups[i].Share = float64(groups[i].Count) / float64(len(teams))
	}
	return groups
}

// CircuitDetail is the circuit card of the dashboard.
type CircuitDetail struct {
	models.Circuit
	LengthKm string `json:"lengthKm"`
	Image    string `json:"image"`
}

// Circuit returns the detail card of a circuit.
func (s *Service) Circuit(id int) (CircuitDetail, bool) {
	c, ok := s.ds.Circuit(id)
	if !ok {
		return CircuitDetail{}, false
	}
	return s.circuitDetail(c), true
}

// CircuitOrFirst returns the detail card of a circuit, falling back to the
// first circuit of the dataset when id is unknown. ok is false only when the
// dataset has no circuits at all.
func (s *Service) CircuitOrFirst(id int) (CircuitDetail, bool) {
	if d, ok := s.Circuit(id); ok {
		return d, true
	}
	circuits := s.ds.Circuits()
	if len(circuits) == 0 {
		return CircuitDetail{}, false
	}
	return s.circuitDetail(circuits[0]), true
}

func (s *Service) circuitDetail(c models.Circuit) CircuitDetail {
	return CircuitDetail{
		Circuit:  c,
		LengthKm: strconv.FormatFloat(float64(c.Length)/1000, 'f', 3, 64),
		Image:    s.assets.CircuitImage(c.Name),
	}
}
