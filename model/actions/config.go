package actions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the abatement share of every action template. The shares
// are sector heuristics, kept tunable rather than hardcoded; overriding a
// subset via YAML leaves the remaining defaults in place.
type Config struct {
	ElectricityEfficiency float64 `yaml:"electricity_efficiency"`
	GreenTariff           float64 `yaml:"green_tariff"`

	RouteOptimization     float64 `yaml:"route_optimization"`
	FleetElectrification  float64 `yaml:"fleet_electrification"`
	FleetElectrifiedShare float64 `yaml:"fleet_electrified_share"`
	CarpoolTelework       float64 `yaml:"carpool_telework"`

	EcoDriving float64 `yaml:"eco_driving"`
	Biofuel    float64 `yaml:"biofuel"`

	HeatPump   float64 `yaml:"heat_pump"`
	Insulation float64 `yaml:"insulation"`

	VideoConferencing float64 `yaml:"video_conferencing"`
	FlightOffset      float64 `yaml:"flight_offset"`

	LocalSourcingEffect float64 `yaml:"local_sourcing_effect"`
	SupplierSwitch      float64 `yaml:"supplier_switch"`

	ModalShift           float64 `yaml:"modal_shift"`
	FoodWasteReduction   float64 `yaml:"food_waste_reduction"`
	DataCenterEfficiency float64 `yaml:"data_center_efficiency"`
}

// DefaultConfig returns the built-in template shares.
func DefaultConfig() Config {
	return Config{
		ElectricityEfficiency: 0.30,
		GreenTariff:           0.65,

		RouteOptimization:     0.12,
		FleetElectrification:  0.65,
		FleetElectrifiedShare: 0.30,
		CarpoolTelework:       0.25,

		EcoDriving: 0.15,
		Biofuel:    0.20,

		HeatPump:   0.60,
		Insulation: 0.25,

		VideoConferencing: 0.30,
		FlightOffset:      0.60,

		LocalSourcingEffect: 0.20,
		SupplierSwitch:      0.17,

		ModalShift:           0.25,
		FoodWasteReduction:   0.15,
		DataCenterEfficiency: 0.25,
	}
}

// LoadConfig overlays a YAML file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read actions config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return config, fmt.Errorf("failed to parse actions config: %w", err)
	}

	return config, nil
}
