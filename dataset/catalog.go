// Package dataset provides the labeled score tables used by the engine and a generator
// that turns a named table into a sample collection.
package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Built-in dataset names.
const (
	Separated   = "separated"
	Unseparated = "unseparated"
	Imbalanced  = "imbalanced"
)

//go:embed presets.yaml
var presetsYAML []byte

// PrevalenceSpec marks a dataset whose class ratio is chosen by the caller.
type PrevalenceSpec struct {
	Total   int `yaml:"total"`   // fixed number of generated samples
	Default int `yaml:"default"` // prevalence percent used when none is chosen
}

// Definition is one named dataset. Score pools must not be modified by callers.
type Definition struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Positive    []float64       `yaml:"positive"`
	Negative    []float64       `yaml:"negative"`
	Prevalence  *PrevalenceSpec `yaml:"prevalence,omitempty"`
}

// Parameterized reports whether the dataset is generated from a prevalence.
func (d Definition) Parameterized() bool { return d.Prevalence != nil }

// DefaultPrevalence returns the prevalence percent the dataset starts with.
// For fixed datasets it is the rounded share of positives in the tables.
func (d Definition) DefaultPrevalence() int {
	if d.Prevalence != nil {
		return d.Prevalence.Default
	}
	total := len(d.Positive) + len(d.Negative)
	if total == 0 {
		return 0
	}
	return roundHalfUp(float64(len(d.Positive)) * 100 / float64(total))
}

type catalogFile struct {
	Datasets []Definition `yaml:"datasets"`
}

// Catalog is an ordered, validated set of dataset definitions.
type Catalog struct {
	defs   []Definition
	byName map[string]int
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(presetsYAML))
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded presets: %v", err))
	}
	return c
})

// Default returns the built-in catalog with the separated, unseparated and
// imbalanced presets. It is parsed once and shared.
func Default() *Catalog {
	return defaultCatalog()
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadCatalog parses and validates a YAML catalog document.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidCatalog, err)
	}
	return NewCatalog(doc.Datasets...)
}

// NewCatalog validates defs and builds a catalog preserving their order.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no datasets", ErrInvalidCatalog)
	}

	c := &Catalog{
		defs:   make([]Definition, 0, len(defs)),
		byName: make(map[string]int, len(defs)),
	}

	var errs []error
	for i, d := range defs {
		if err := validateDefinition(d); err != nil {
			errs = append(errs, fmt.Errorf("dataset %d (%q): %w", i, d.Name, err))
			continue
		}
		if _, dup := c.byName[d.Name]; dup {
			errs = append(errs, fmt.Errorf("dataset %d: duplicate name %q", i, d.Name))
			continue
		}
		c.byName[d.Name] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
	}
	return c, nil
}

func validateDefinition(d Definition) error {
	if d.Name == "" {
		return errors.New("empty name")
	}
	for _, pool := range [][]float64{d.Positive, d.Negative} {
		for _, s := range pool {
			if s < 0 || s > 100 {
				return fmt.Errorf("score %v outside [0, 100]", s)
			}
		}
	}
	if p := d.Prevalence; p != nil {
		if p.Total <= 0 {
			return fmt.Errorf("prevalence total %d must be positive", p.Total)
		}
		if p.Default < 0 || p.Default > 100 {
			return fmt.Errorf("default prevalence %d outside [0, 100]", p.Default)
		}
		if len(d.Positive) == 0 || len(d.Negative) == 0 {
			return errors.New("prevalence dataset needs both score pools")
		}
	}
	return nil
}

// Lookup returns the definition registered under name.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// Names returns dataset names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.defs))
	for i, d := range c.defs {
		names[i] = d.Name
	}
	return names
}

// Definitions returns a copy of the definitions in declaration order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}
