package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jamesainslie/go-roc/dataset"
	"github.com/jamesainslie/go-roc/internal/bench"
	"github.com/jamesainslie/go-roc/internal/cfg"
)

func main() {
	settings, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	var (
		name       = flag.String("dataset", settings.Dataset, "Dataset to evaluate")
		prevalence = flag.Int("prevalence", settings.PrevalenceOr(-1), "Positive share in percent for parameterized datasets (-1 uses the dataset default)")
		samplesDir = flag.String("samples", settings.SamplesDir, "Directory of labeled CSV sample files")
		threshold  = flag.Float64("threshold", settings.Threshold, "Decision threshold")
		wp         = flag.Float64("wp", settings.PrecisionWeight, "Precision weight")
		wr         = flag.Float64("wr", settings.RecallWeight, "Recall weight")
		sweep      = flag.Bool("sweep", false, "Run threshold sweep")
		sweepMin   = flag.Float64("sweep-min", 0, "Sweep minimum threshold")
		sweepMax   = flag.Float64("sweep-max", 100, "Sweep maximum threshold")
		sweepStep  = flag.Float64("sweep-step", 1, "Sweep step size")
		datasets   = flag.String("datasets", "", "Comma-separated datasets for comparison")
		jitter     = flag.Bool("jitter", settings.Jitter, "Perturb reused positive scores")
		seed       = flag.Uint64("seed", settings.Seed, "Seed for -jitter")
	)
	flag.Parse()

	settings.SamplesDir = *samplesDir
	if *samplesDir != "" {
		settings.CatalogPath = ""
	}
	settings.Jitter = *jitter
	settings.Seed = *seed
	gen, err := settings.Generator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading datasets: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d datasets\n\n", len(gen.Catalog().Names()))

	bc := bench.Config{
		PrecisionWeight: *wp,
		RecallWeight:    *wr,
	}

	if *datasets != "" {
		names := strings.Split(*datasets, ",")
		runComparison(gen, names, *prevalence, *threshold, bc, *sweep, *sweepMin, *sweepMax, *sweepStep)
		return
	}

	samples, err := generate(gen, *name, *prevalence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *sweep {
		runSweep(samples, bc, *sweepMin, *sweepMax, *sweepStep)
	} else {
		printMetrics(bench.Evaluate(samples, *threshold, bc))
	}
}

func generate(gen *dataset.Generator, name string, prevalence int) (dataset.SampleSet, error) {
	def, ok := gen.Catalog().Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", dataset.ErrUnknownDataset, name)
	}
	if prevalence < 0 {
		prevalence = def.DefaultPrevalence()
	}
	return gen.Generate(name, prevalence)
}

func runSweep(samples dataset.SampleSet, bc bench.Config, min, max, step float64) {
	thresholds := bench.SweepThresholds(min, max, step)

	fmt.Printf("Threshold Sweep Results (wp=%.1f, wr=%.1f)\n", bc.PrecisionWeight, bc.RecallWeight)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-8s %-8s %-8s %-8s %-8s %-8s\n", "Thresh", "Prec", "Rec", "FPR", "F1", "Weighted")

	results := bench.Sweep(samples, bc, thresholds)
	byThreshold := make(map[float64]bench.SweepResult, len(results))
	for _, r := range results {
		byThreshold[r.Threshold] = r
	}

	// Print sorted by threshold for readability
	for _, t := range thresholds {
		r := byThreshold[t]
		fmt.Printf("%-8.1f %-8.2f %-8.2f %-8.2f %-8.2f %-8.2f\n",
			r.Threshold, r.Metrics.Rates.Precision, r.Metrics.Rates.Recall, r.Metrics.Rates.FPR,
			r.Metrics.Rates.F1, r.Metrics.WeightedScore)
	}

	fmt.Println(strings.Repeat("-", 60))
	if len(results) > 0 {
		best := results[0]
		fmt.Printf("Optimal: %.1f (Weighted: %.2f)\n", best.Threshold, best.Metrics.WeightedScore)
	}
	if y, ok := bench.YoudenBest(samples, bc, thresholds); ok {
		fmt.Printf("Youden:  %.1f (J: %.2f)\n", y.Threshold, y.Metrics.Youden())
	}
}

func runComparison(gen *dataset.Generator, names []string, prevalence int, threshold float64, bc bench.Config, sweep bool, min, max, step float64) {
	fmt.Printf("Dataset Comparison (wp=%.1f, wr=%.1f)\n", bc.PrecisionWeight, bc.RecallWeight)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-20s %-8s %-8s %-8s %-8s\n", "Dataset", "Thresh", "F1", "Weighted", "Youden")

	for _, name := range names {
		name = strings.TrimSpace(name)
		samples, err := generate(gen, name, prevalence)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error with %s: %v\n", name, err)
			continue
		}

		best := bench.SweepResult{Threshold: threshold, Metrics: bench.Evaluate(samples, threshold, bc)}
		if sweep {
			if results := bench.Sweep(samples, bc, bench.SweepThresholds(min, max, step)); len(results) > 0 {
				best = results[0]
			}
		}

		fmt.Printf("%-20s %-8.1f %-8.2f %-8.2f %-8.2f\n", name, best.Threshold,
			best.Metrics.Rates.F1, best.Metrics.WeightedScore, best.Metrics.Youden())
	}
}

func printMetrics(m bench.Metrics) {
	fmt.Printf("Precision: %.2f  Recall: %.2f  FPR: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Rates.Precision, m.Rates.Recall, m.Rates.FPR, m.Rates.F1, m.WeightedScore)
	fmt.Printf("(TP: %d, FP: %d, FN: %d, TN: %d)\n",
		m.Confusion.TP, m.Confusion.FP, m.Confusion.FN, m.Confusion.TN)
}
