// Package roc computes binary-classification teaching metrics: the confusion
// matrix and its rates at a decision threshold, and the ROC and
// Precision-Recall curves with their areas.
//
// # Quick Start
//
//	samples, err := roc.GenerateSamples("imbalanced", 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := roc.ComputeConfusion(samples, 50)
//	fmt.Printf("recall %.2f precision %.2f\n", res.Rates.Recall, res.Rates.Precision)
//
//	rocCurve := roc.ComputeROC(samples)
//	prCurve := roc.ComputePR(samples)
//	fmt.Printf("AUC %.3f AUPRC %.3f\n", rocCurve.AUC, prCurve.AUC)
//
// # View
//
// View holds the state of one interactive session: dataset, prevalence,
// threshold and the active curve. Every setter recomputes from scratch and
// Snapshot returns everything a renderer needs.
//
//	v, err := roc.New(roc.WithDataset("unseparated"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v.SetThreshold(42)
//	snap := v.Snapshot()
//
// # Thread Safety
//
// The package-level functions are pure and safe for concurrent use. View is
// not; it belongs to a single caller.
//
// # Datasets
//
// The built-in presets are separated, unseparated and imbalanced. Only
// imbalanced uses the prevalence argument. Custom catalogs are loaded with
// dataset.LoadCatalogFile and passed with WithCatalog.
package roc
