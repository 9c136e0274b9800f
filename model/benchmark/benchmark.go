// Package benchmark holds the per-sector reference profiles and the
// relative positioning logic built on them.
package benchmark

import (
	"embed"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/carbonscore/carbonscore/internal/must"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

//go:embed data/sectors.json
var sectorsFS embed.FS

// DefaultSector is substituted when a sector cannot be resolved at all.
const DefaultSector = "services"

// Position labels, first satisfied threshold wins.
const (
	PositionTopQuartile      = "top quartile"
	PositionAboveAverage     = "above average"
	PositionAverage          = "average"
	PositionBelowAverage     = "below average"
	PositionInsufficientData = "insufficient data"
)

// Profile is the emission reference of one sector. Intensities are
// kgCO2eq per employee per year.
type Profile struct {
	Sector          string  `json:"-"`
	PerEmployee     float64 `json:"per_employee"`
	PerRevenue      float64 `json:"per_revenue"`
	P25             float64 `json:"p25"`
	P75             float64 `json:"p75"`
	TransportWeight float64 `json:"transport_weight"`
	EnergyIntensive bool    `json:"energy_intensive"`
}

// TransportHeavy reports whether transport dominates the sector's profile.
// Recommendation templates branch on this rather than on sector names so
// unknown sectors degrade by profile, not by string equality.
func (profile Profile) TransportHeavy() bool {
	return profile.TransportWeight >= 0.40
}

// Position ranks a per-employee intensity against the sector thresholds.
func (profile Profile) Position(intensityPerEmployee float64) string {
	switch {
	case intensityPerEmployee <= profile.P25:
		return PositionTopQuartile
	case intensityPerEmployee <= profile.PerEmployee:
		return PositionAboveAverage
	case intensityPerEmployee <= profile.P75:
		return PositionAverage
	default:
		return PositionBelowAverage
	}
}

// Percentile buckets a per-employee intensity into 25, 50, 75 or 90 using
// the same thresholds as Position.
func (profile Profile) Percentile(intensityPerEmployee float64) int {
	switch {
	case intensityPerEmployee <= profile.P25:
		return 25
	case intensityPerEmployee <= profile.PerEmployee:
		return 50
	case intensityPerEmployee <= profile.P75:
		return 75
	default:
		return 90
	}
}

// Table maps sector codes to their reference profile. Immutable after
// construction, safe for concurrent readers.
type Table struct {
	profiles map[string]Profile
	sectors  []string
}

// New decodes the embedded sector reference table.
func New() *Table {
	sectorsFile, err := sectorsFS.Open("data/sectors.json")
	must.NoError(err)

	profiles := make(map[string]Profile)
	must.NoError(json.NewDecoder(sectorsFile).Decode(&profiles))
	must.Assert(len(profiles) > 0, "sector reference table is empty")

	_, found := profiles[DefaultSector]
	must.Assert(found, "default sector profile not set")

	table := &Table{profiles: make(map[string]Profile, len(profiles))}
	for sector, profile := range profiles {
		profile.Sector = sector
		table.profiles[sector] = profile
		table.sectors = append(table.sectors, sector)
	}
	sort.Strings(table.sectors)

	return table
}

// Sectors returns the known sector vocabulary in sorted order.
func (table *Table) Sectors() []string {
	return table.sectors
}

// Resolve maps a declared sector to a known profile: exact match first,
// then the closest fuzzy match against the vocabulary, then the default
// profile. It never fails; fallbacks are logged.
func (table *Table) Resolve(sector string) Profile {
	if profile, found := table.profiles[sector]; found {
		return profile
	}

	ranks := fuzzy.RankFindNormalizedFold(sector, table.sectors)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		match := ranks[0].Target
		slog.Warn("sector not in vocabulary, using closest match", "sector", sector, "match", match)
		return table.profiles[match]
	}

	slog.Warn("sector not in vocabulary, using default profile", "sector", sector, "default", DefaultSector)
	return table.profiles[DefaultSector]
}

// EmployeeCount resolves an employee band to its midpoint headcount.
// Unrecognized bands default to the 10-49 midpoint.
func EmployeeCount(band string) int {
	switch band {
	case "1-9":
		return 5
	case "10-49":
		return 25
	case "50-249":
		return 125
	case "250+":
		return 500
	default:
		return 25
	}
}

// PositionForTotal ranks a yearly total for a headcount, guarding the zero
// employee case with an explicit label instead of dividing by zero.
func (profile Profile) PositionForTotal(totalKgCO2e float64, employees int) string {
	if employees == 0 {
		return PositionInsufficientData
	}
	return profile.Position(totalKgCO2e / float64(employees))
}
