package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Aravinth1228/safehaven/module/core/domain"
)

type zoneSeed struct {
	Name         string  `yaml:"name"`
	Latitude     float64 `yaml:"latitude"`
	Longitude    float64 `yaml:"longitude"`
	RadiusMeters float64 `yaml:"radius_meters"`
	Severity     string  `yaml:"severity"`
}

type zoneSeedFile struct {
	Zones []zoneSeed `yaml:"zones"`
}

// LoadZoneSeed parses the YAML zone seed file. The zones are applied
// only when the registry is empty (see ZoneService.Seed).
func LoadZoneSeed(path string) ([]domain.Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read zone seed: %w", err)
	}

	var file zoneSeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse zone seed: %w", err)
	}

	zones := make([]domain.Zone, 0, len(file.Zones))
	for i, s := range file.Zones {
		if s.Name == "" {
			return nil, fmt.Errorf("zone seed entry %d: name required", i)
		}
		if s.RadiusMeters <= 0 {
			return nil, fmt.Errorf("zone seed entry %d: radius_meters must be positive", i)
		}
		severity := domain.Severity(s.Severity)
		if s.Severity == "" {
			severity = domain.SeverityMedium
		}
		if !severity.Valid() {
			return nil, fmt.Errorf("zone seed entry %d: invalid severity %q", i, s.Severity)
		}
		zones = append(zones, domain.Zone{
			Name:         s.Name,
			Lat:          s.Latitude,
			Lon:          s.Longitude,
			RadiusMeters: s.RadiusMeters,
			Severity:     severity,
			Active:       true,
		})
	}
	return zones, nil
}
