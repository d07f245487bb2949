package store

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"clinic-booking-api/internal/model"
)

//go:embed seed/doctors.yaml
var defaultDoctors []byte

// Catalog is the read-only doctor list.
type Catalog struct {
	providers []model.Provider
}

func NewCatalog(providers []model.Provider) *Catalog {
	p := make([]model.Provider, len(providers))
	copy(p, providers)
	return &Catalog{providers: p}
}

// LoadCatalog reads a YAML provider list from path, or the built-in list
// when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultDoctors
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		data = b
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var providers []model.Provider
	if err := yaml.Unmarshal(data, &providers); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	seen := make(map[int]bool, len(providers))
	for _, p := range providers {
		if seen[p.ID] {
			return nil, fmt.Errorf("catalog: duplicate provider id %d", p.ID)
		}
		seen[p.ID] = true
	}
	return NewCatalog(providers), nil
}

func (c *Catalog) Doctors() []model.Provider {
	out := make([]model.Provider, len(c.providers))
	copy(out, c.providers)
	return out
}

func (c *Catalog) Doctor(id int) (model.Provider, error) {
	for _, p := range c.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Provider{}, ErrNotFound
}
