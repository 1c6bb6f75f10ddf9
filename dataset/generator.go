package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// MaxJitter bounds the score shift applied to reused positive entries.
const MaxJitter = 5.0

// Generator produces sample sets from a catalog.
// The zero jitter source makes generation fully deterministic.
type Generator struct {
	catalog *Catalog
	jitter  *rand.Rand
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithJitter enables the ±MaxJitter shift on positive entries reused by a
// prevalence dataset. It only changes where points land on a plot.
func WithJitter(r *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.jitter = r
	}
}

// NewGenerator creates a Generator over c. A nil catalog selects Default().
func NewGenerator(c *Catalog, opts ...GeneratorOption) *Generator {
	if c == nil {
		c = Default()
	}
	g := &Generator{catalog: c}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Catalog returns the catalog the generator draws from.
func (g *Generator) Catalog() *Catalog { return g.catalog }

// Generate builds the samples of the named dataset. prevalence is a percent in
// [0, 100]; it sets the class ratio of parameterized datasets and is ignored by
// fixed ones. Positives come first, then negatives.
func Generate(name string, prevalence int) (SampleSet, error) {
	return NewGenerator(nil).Generate(name, prevalence)
}

// Generate builds the samples of the named dataset. See the package-level Generate.
func (g *Generator) Generate(name string, prevalence int) (SampleSet, error) {
	def, ok := g.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	if prevalence < 0 || prevalence > 100 {
		return nil, fmt.Errorf("%w: %d", ErrPrevalenceRange, prevalence)
	}

	if !def.Parameterized() {
		samples := make(SampleSet, 0, len(def.Positive)+len(def.Negative))
		for _, s := range def.Positive {
			samples = append(samples, Sample{Score: s, Positive: true})
		}
		for _, s := range def.Negative {
			samples = append(samples, Sample{Score: s, Positive: false})
		}
		return samples, nil
	}

	total := def.Prevalence.Total
	positives := roundHalfUp(float64(total) * float64(prevalence) / 100)
	negatives := total - positives

	samples := make(SampleSet, 0, total)
	for i := range positives {
		score := def.Positive[i%len(def.Positive)]
		if i >= len(def.Positive) && g.jitter != nil {
			score = clampScore(score + (g.jitter.Float64()*2-1)*MaxJitter)
		}
		samples = append(samples, Sample{Score: score, Positive: true})
	}
	for i := range negatives {
		samples = append(samples, Sample{Score: def.Negative[i%len(def.Negative)], Positive: false})
	}
	return samples, nil
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampScore(s float64) float64 {
	return math.Max(0, math.Min(100, s))
}
