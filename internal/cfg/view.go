package cfg

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	roc "github.com/jamesainslie/go-roc"
	"github.com/jamesainslie/go-roc/dataset"
	"github.com/jamesainslie/go-roc/internal/bench"
)

// OpenCatalog returns the catalog the settings point at: a YAML catalog, a
// directory of sample files, or the built-in presets.
func (s *Settings) OpenCatalog() (*dataset.Catalog, error) {
	switch {
	case s.CatalogPath != "":
		return dataset.LoadCatalogFile(s.CatalogPath)
	case s.SamplesDir != "":
		files, err := bench.LoadDir(s.SamplesDir)
		if err != nil {
			return nil, err
		}
		c, err := bench.Catalog(files)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.SamplesDir, err)
		}
		return c, nil
	default:
		return dataset.Default(), nil
	}
}

// Generator builds a sample generator over the configured catalog, seeded for
// jitter when Jitter is set.
func (s *Settings) Generator() (*dataset.Generator, error) {
	catalog, err := s.OpenCatalog()
	if err != nil {
		return nil, err
	}
	var opts []dataset.GeneratorOption
	if s.Jitter {
		opts = append(opts, dataset.WithJitter(s.rand()))
	}
	return dataset.NewGenerator(catalog, opts...), nil
}

func (s *Settings) rand() *rand.Rand {
	return rand.New(rand.NewPCG(s.Seed, s.Seed))
}

// ViewOptions translates the settings into options for roc.New. When the
// dataset was left at its default and the catalog lacks it, the catalog's
// first dataset is used.
func (s *Settings) ViewOptions(logger *slog.Logger) ([]roc.Option, error) {
	catalog, err := s.OpenCatalog()
	if err != nil {
		return nil, err
	}

	names := catalog.Names()
	name := s.Dataset
	if _, ok := catalog.Lookup(name); !ok && name == Defaults().Dataset {
		name = names[0]
	}

	opts := []roc.Option{
		roc.WithCatalog(catalog),
		roc.WithLogger(logger),
		roc.WithDataset(name),
		roc.WithThreshold(s.Threshold),
		roc.WithCurve(s.Curve),
	}
	if s.Prevalence != nil {
		opts = append(opts, roc.WithPrevalence(*s.Prevalence))
	}
	if s.Jitter {
		opts = append(opts, roc.WithJitter(s.rand()))
	}
	return opts, nil
}

// Logger builds a text logger at the configured level.
func (s *Settings) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: s.LogLevel}))
}
