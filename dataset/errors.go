package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidArgument is the root of every caller-input error in this package.
	ErrInvalidArgument = errors.New("dataset: invalid argument")

	// ErrUnknownDataset indicates the requested dataset name is not in the catalog.
	ErrUnknownDataset = fmt.Errorf("%w: unknown dataset", ErrInvalidArgument)

	// ErrPrevalenceRange indicates a prevalence outside [0, 100].
	ErrPrevalenceRange = fmt.Errorf("%w: prevalence out of range", ErrInvalidArgument)

	// ErrInvalidCatalog indicates a catalog document failed validation.
	ErrInvalidCatalog = errors.New("dataset: invalid catalog")
)
