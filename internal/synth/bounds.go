package synth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// IntRange bounds an integer draw, inclusive on both ends.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange bounds a uniform float draw.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Bounds collects the value ranges every synthesized metric is drawn from.
type Bounds struct {
	StayCount       IntRange   `yaml:"stay_count"`
	PatientFraction FloatRange `yaml:"patient_fraction"`
	StayDuration    FloatRange `yaml:"stay_duration"`
	DeathRate       FloatRange `yaml:"death_rate"`
	MaleRate        FloatRange `yaml:"male_rate"`
	MeanAge         FloatRange `yaml:"mean_age"`
	ActCount        IntRange   `yaml:"act_count"`
	UnitCountMed    IntRange   `yaml:"unit_count_med"`
	UnitCountDMI    IntRange   `yaml:"unit_count_dmi"`
	ReimbursedMed   FloatRange `yaml:"reimbursed_med"`
	ReimbursedDMI   FloatRange `yaml:"reimbursed_dmi"`
	Population      IntRange   `yaml:"population"`
	CrudeRate       FloatRange `yaml:"crude_rate"`
}

// DefaultBounds returns the ranges matching the production statistics this
// mock stands in for.
func DefaultBounds() Bounds {
	return Bounds{
		StayCount:       IntRange{100, 30000},
		PatientFraction: FloatRange{0.70, 1.00},
		StayDuration:    FloatRange{1, 15},
		DeathRate:       FloatRange{0, 0.10},
		MaleRate:        FloatRange{0.30, 0.70},
		MeanAge:         FloatRange{30, 85},
		ActCount:        IntRange{500, 10000},
		UnitCountMed:    IntRange{1000, 10000},
		UnitCountDMI:    IntRange{100, 2000},
		ReimbursedMed:   FloatRange{10000, 2000000},
		ReimbursedDMI:   FloatRange{5000, 500000},
		Population:      IntRange{100000, 5000000},
		CrudeRate:       FloatRange{60, 120},
	}
}

// LoadBounds overlays a YAML file on the defaults. Fields the file omits keep
// their default ranges.
func LoadBounds(path string) (Bounds, error) {
	b := DefaultBounds()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Bounds{}, fmt.Errorf("read bounds file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return Bounds{}, fmt.Errorf("parse bounds file: %w", err)
	}
	return b, nil
}
