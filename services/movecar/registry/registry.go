package registry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/piresc/movecar/internal/pkg/models"
	"github.com/piresc/movecar/internal/utils"
)

// Registry is the static plate index, built once at startup
type Registry struct {
	cars map[string]models.CarConfig
}

// Parse reads "plate,endpoint,phone?" records, one per line.
// Blank lines are skipped and the first entry for a plate wins.
func Parse(r io.Reader) (*Registry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	reader.LazyQuotes = true

	reg := &Registry{cars: make(map[string]models.CarConfig)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse car list: %w", err)
		}

		line, _ := reader.FieldPos(0)
		plate := utils.CanonicalPlate(record[0])
		if plate == "" {
			continue
		}
		if len(record) < 2 || strings.TrimSpace(record[1]) == "" {
			return nil, fmt.Errorf("car list line %d: missing notify endpoint for %s", line, plate)
		}
		if _, exists := reg.cars[plate]; exists {
			continue
		}

		car := models.CarConfig{
			Plate:          strings.TrimSpace(record[0]),
			NotifyEndpoint: strings.TrimSpace(record[1]),
		}
		if len(record) > 2 {
			car.Phone = strings.TrimSpace(record[2])
		}
		reg.cars[plate] = car
	}

	return reg, nil
}

// Load builds the registry from an inline list and, if set, a list file.
// Inline entries take precedence over file entries for the same plate.
func Load(cfg models.RegistryConfig) (*Registry, error) {
	var sources []io.Reader
	if cfg.CarList != "" {
		sources = append(sources, strings.NewReader(strings.ReplaceAll(cfg.CarList, `\n`, "\n")+"\n"))
	}
	if cfg.CarListFile != "" {
		f, err := os.Open(cfg.CarListFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open car list file: %w", err)
		}
		defer f.Close()
		sources = append(sources, f)
	}
	return Parse(io.MultiReader(sources...))
}

// Lookup finds a car by plate, case-insensitively
func (r *Registry) Lookup(plate string) (models.CarConfig, bool) {
	car, ok := r.cars[utils.CanonicalPlate(plate)]
	return car, ok
}

// Len returns the number of registered cars
func (r *Registry) Len() int {
	return len(r.cars)
}
