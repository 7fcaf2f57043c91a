package catalog

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/remitfair/corridor-quote-service/internal/model"
)

//go:embed seed/corridors.yaml seed/rates.yaml
var seedFS embed.FS

type corridorsFile struct {
	Corridors []model.Corridor `yaml:"corridors"`
}

type ratesFile struct {
	Rates []model.MidRate `yaml:"rates"`
}

func parse(corridorsYAML, ratesYAML []byte) ([]model.Corridor, []model.MidRate, error) {
	var cf corridorsFile
	if err := yaml.Unmarshal(corridorsYAML, &cf); err != nil {
		return nil, nil, fmt.Errorf("parse corridors: %w", err)
	}
	var rf ratesFile
	if err := yaml.Unmarshal(ratesYAML, &rf); err != nil {
		return nil, nil, fmt.Errorf("parse rates: %w", err)
	}
	return cf.Corridors, rf.Rates, nil
}

// LoadEmbedded builds the catalog from the seed dataset compiled into the
// binary. This is the default source and requires no external files.
func LoadEmbedded() (*Catalog, error) {
	corridorsYAML, err := seedFS.ReadFile("seed/corridors.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded corridors: %w", err)
	}
	ratesYAML, err := seedFS.ReadFile("seed/rates.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded rates: %w", err)
	}
	corridors, rates, err := parse(corridorsYAML, ratesYAML)
	if err != nil {
		return nil, err
	}
	return New("embedded", corridors, rates)
}

// LoadDir builds the catalog from corridors.yaml and rates.yaml in dir,
// using the same schema as the embedded seed files.
func LoadDir(dir string) (*Catalog, error) {
	corridorsYAML, err := os.ReadFile(filepath.Join(dir, "corridors.yaml"))
	if err != nil {
		return nil, fmt.Errorf("read corridors: %w", err)
	}
	ratesYAML, err := os.ReadFile(filepath.Join(dir, "rates.yaml"))
	if err != nil {
		return nil, fmt.Errorf("read rates: %w", err)
	}
	corridors, rates, err := parse(corridorsYAML, ratesYAML)
	if err != nil {
		return nil, err
	}
	return New("file", corridors, rates)
}

// SeedDataset exposes the embedded records for seeding the postgres catalog
// source.
func SeedDataset() ([]model.Corridor, []model.MidRate, error) {
	corridorsYAML, err := seedFS.ReadFile("seed/corridors.yaml")
	if err != nil {
		return nil, nil, err
	}
	ratesYAML, err := seedFS.ReadFile("seed/rates.yaml")
	if err != nil {
		return nil, nil, err
	}
	return parse(corridorsYAML, ratesYAML)
}
