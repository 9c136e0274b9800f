package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableLookup(t *testing.T) {
	table := New()

	assert.Equal(t, 0.0571, table.Lookup(Electricity, UnitKWh))
	assert.Equal(t, 0.227, table.Lookup(NaturalGas, UnitKWh))
	assert.Equal(t, 2.80, table.Lookup(Petrol, UnitLiter))
	assert.Equal(t, 0.156, table.Lookup(FlightIntl, UnitKm))
	assert.Equal(t, 0.0134, table.Lookup(UpstreamElectricity, UnitKWh))
}

func TestLookupIsTotal(t *testing.T) {
	table := New()

	// unknown pairs resolve to zero, never an error
	assert.Equal(t, 0.0, table.Lookup("kerosene", UnitLiter))
	assert.Equal(t, 0.0, table.Lookup(Electricity, "MWh"))
	assert.Equal(t, 0.0, table.Lookup("", ""))
}

func TestFind(t *testing.T) {
	table := New()

	factor, found := table.Find(Diesel, UnitLiter)
	assert.True(t, found)
	assert.Equal(t, 3.10, factor.KgCO2e)
	assert.Equal(t, 1, factor.Scope)

	_, found = table.Find("coal", "t")
	assert.False(t, found)
}

func TestSearch(t *testing.T) {
	table := New()
	assert.Equal(t, 13, table.Len())

	results := table.Search("electricity", 5)
	assert.NotEmpty(t, results)
	for _, factor := range results {
		assert.Contains(t, factor.Category, "electricity")
	}

	assert.Empty(t, table.Search("zzzzzz", 5))
}
