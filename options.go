package roc

import (
	"log/slog"
	"math/rand/v2"

	"github.com/jamesainslie/go-roc/dataset"
)

// Option configures a View.
type Option func(*config)

type config struct {
	catalog    *dataset.Catalog
	jitter     *rand.Rand
	logger     *slog.Logger
	dataset    string
	prevalence *int
	threshold  float64
	curve      CurveKind
}

func defaultConfig() config {
	return config{
		catalog:   dataset.Default(),
		logger:    slog.Default(),
		dataset:   dataset.Separated,
		threshold: 50,
		curve:     CurveROC,
	}
}

// WithCatalog sets the dataset catalog (default: dataset.Default()).
func WithCatalog(c *dataset.Catalog) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.catalog = c
		}
	}
}

// WithJitter shifts reused positives of prevalence datasets by up to
// ±dataset.MaxJitter using r (default: no jitter).
func WithJitter(r *rand.Rand) Option {
	return func(c *config) {
		c.jitter = r
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDataset sets the initial dataset (default: "separated").
func WithDataset(name string) Option {
	return func(c *config) {
		c.dataset = name
	}
}

// WithPrevalence sets the initial prevalence percent (default: the dataset's own).
func WithPrevalence(p int) Option {
	return func(c *config) {
		c.prevalence = &p
	}
}

// WithThreshold sets the initial threshold (default: 50).
func WithThreshold(t float64) Option {
	return func(c *config) {
		c.threshold = t
	}
}

// WithCurve sets the initially active curve (default: CurveROC).
func WithCurve(k CurveKind) Option {
	return func(c *config) {
		c.curve = k
	}
}
