package carbonscore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbonscore/carbonscore"
)

func TestEmissionsConversions(t *testing.T) {
	e := carbonscore.Emissions(4600)

	assert.Equal(t, 4600.0, e.KgCO2eq())
	assert.Equal(t, 4.6, e.TCO2eq())
	assert.Equal(t, 460.0, e.SocialCost())

	equivalents := e.Equivalents()
	assert.Equal(t, 184.0, equivalents.TreesToPlant)
	assert.Equal(t, 1.0, equivalents.CarsOffRoad)
	assert.InDelta(t, 0.676, equivalents.HomeEnergyYears, 0.001)
	assert.InDelta(t, 2.555, equivalents.ParisNewYorkFlights, 0.001)
}

func TestZeroEmissionsEquivalents(t *testing.T) {
	equivalents := carbonscore.Emissions(0).Equivalents()

	assert.Equal(t, 0.0, equivalents.TreesToPlant)
	assert.Equal(t, 0.0, equivalents.CarsOffRoad)
	assert.Equal(t, 0.0, carbonscore.Emissions(0).SocialCost())
}
