package roc

import (
	"fmt"

	"github.com/jamesainslie/go-roc/dataset"
)

// Sentinel errors for conditions callers may need to handle differently.
// All of them match ErrInvalidArgument with errors.Is.
var (
	// ErrInvalidArgument indicates caller input was rejected. No state changed.
	ErrInvalidArgument = dataset.ErrInvalidArgument

	// ErrUnknownDataset indicates the dataset name is not in the catalog.
	ErrUnknownDataset = dataset.ErrUnknownDataset

	// ErrPrevalenceRange indicates a prevalence outside [0, 100].
	ErrPrevalenceRange = dataset.ErrPrevalenceRange

	// ErrUnknownCurve indicates a curve kind other than CurveROC or CurvePR.
	ErrUnknownCurve = fmt.Errorf("%w: unknown curve kind", ErrInvalidArgument)
)
