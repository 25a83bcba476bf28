package intent

import (
	"encoding/json"
	"fmt"
	"os"

	"flywise/models"
)

// LoadCities reads the reference city list from a JSON file.
func LoadCities(path string) ([]models.CityRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read city list: %w", err)
	}
	var cities []models.CityRecord
	if err := json.Unmarshal(raw, &cities); err != nil {
		return nil, fmt.Errorf("decode city list: %w", err)
	}
	return cities, nil
}
