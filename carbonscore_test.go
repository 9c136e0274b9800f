package carbonscore_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbonscore/carbonscore"
)

func TestCompanyDataValidate(t *testing.T) {
	valid := carbonscore.CompanyData{
		Sector:           "services",
		EmployeeBand:     "10-49",
		ElectricityKWh:   10000,
		LocalSourcingPct: 40,
	}
	assert.NoError(t, valid.Validate())

	negative := valid
	negative.FuelLiters = -1
	assert.Error(t, negative.Validate())

	outOfRange := valid
	outOfRange.LocalSourcingPct = 140
	assert.Error(t, outOfRange.Validate())
}

func TestValidateAcceptsZeroValueData(t *testing.T) {
	assert.NoError(t, carbonscore.CompanyData{}.Validate())
}

func TestStageErr(t *testing.T) {
	cause := errors.New("boom")
	stageErr := &carbonscore.StageErr{Stage: "kpis", Err: cause}

	assert.ErrorIs(t, stageErr, cause)
	assert.Contains(t, stageErr.Error(), "kpis")
}

func TestRecommendationString(t *testing.T) {
	rec := carbonscore.Recommendation{
		Action:       "Switch to a certified 100% renewable electricity tariff",
		ImpactKgCO2e: 371.15,
		SharePct:     18.3,
		Hint:         "extra cost ~500€/yr | 1 month | immediate effect",
	}

	rendered := rec.String()
	assert.Contains(t, rendered, "371 kgCO2e")
	assert.Contains(t, rendered, "18.3% of total")
	assert.Contains(t, rendered, "1 month")
}

func TestCategoriesAreStable(t *testing.T) {
	assert.Equal(t, []string{
		"electricity", "gas", "fuel", "vehicles",
		"domestic_flights", "international_flights", "purchases",
	}, carbonscore.Categories())
}
