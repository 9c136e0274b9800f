// Package factors holds the emission factor reference table, a subset of
// the ADEME Base Carbone v17 dataset embedded at build time.
package factors

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"sort"
	"strings"

	"github.com/carbonscore/carbonscore/internal/must"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

//go:embed data/factors.csv
var factorsCSV []byte

// Well known factor categories used by the scope formulas.
const (
	Electricity         = "electricity_fr"
	NaturalGas          = "natural_gas"
	Petrol              = "petrol"
	Diesel              = "diesel"
	CarPetrol           = "car_petrol"
	CarDiesel           = "car_diesel"
	FlightDomestic      = "flight_domestic"
	FlightIntl          = "flight_international"
	PurchasedGoods      = "purchased_goods"
	PurchasedServices   = "purchased_services"
	LocalTransportCut   = "local_transport_reduction"
	UpstreamElectricity = "upstream_electricity"
	UpstreamGas         = "upstream_gas"
)

// Units of the embedded table.
const (
	UnitKWh   = "kWh"
	UnitLiter = "L"
	UnitKm    = "km"
	UnitEuro  = "EUR"
	UnitRatio = "ratio"
)

// Factor converts one activity quantity into kgCO2eq.
type Factor struct {
	Category string
	Unit     string
	KgCO2e   float64
	Scope    int
}

// Table maps (category, unit) to an emission factor. It is immutable after
// construction and safe for unboundedly many concurrent readers.
type Table struct {
	factors map[string]Factor
	keys    []string
}

func key(category, unit string) string {
	return category + "/" + unit
}

// New parses the embedded reference table. The table ships with the binary
// so a parse failure is fatal.
func New() *Table {
	table := &Table{factors: make(map[string]Factor)}

	reader := csv.NewReader(bytes.NewReader(factorsCSV))
	reader.Comma = ';'
	reader.Read() // skip header line
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		must.NoError(err)
		must.Assert(len(record) == 4, "factor record must have 4 fields: category, unit, kgco2e, scope")

		factor := Factor{
			Category: record[0],
			Unit:     record[1],
			KgCO2e:   must.CastFloat64(record[2]),
			Scope:    int(must.CastFloat64(record[3])),
		}
		table.factors[key(factor.Category, factor.Unit)] = factor
		table.keys = append(table.keys, key(factor.Category, factor.Unit))
	}
	sort.Strings(table.keys)

	return table
}

// Lookup returns the factor value for the category and unit, 0.0 when the
// pair is unknown. The lookup is total: it never errors, the zero factor
// simply contributes nothing to the estimate.
func (table *Table) Lookup(category, unit string) float64 {
	factor, found := table.factors[key(category, unit)]
	if !found {
		return 0.0
	}
	return factor.KgCO2e
}

// Find returns the full factor record for diagnostics.
func (table *Table) Find(category, unit string) (Factor, bool) {
	factor, found := table.factors[key(category, unit)]
	return factor, found
}

// Len returns the number of loaded factors.
func (table *Table) Len() int {
	return len(table.factors)
}

// Search fuzzy matches factors by category name, best match first.
func (table *Table) Search(query string, limit int) []Factor {
	ranks := fuzzy.RankFindNormalizedFold(query, table.keys)
	sort.Sort(ranks)

	results := make([]Factor, 0, limit)
	for _, rank := range ranks {
		if len(results) == limit {
			break
		}
		category, unit, _ := strings.Cut(rank.Target, "/")
		factor, found := table.factors[key(category, unit)]
		if !found {
			continue
		}
		results = append(results, factor)
	}
	return results
}
