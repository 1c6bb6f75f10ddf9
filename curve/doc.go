// Package curve computes confusion matrices, derived rates and threshold curves
// (ROC and Precision-Recall) over a labeled sample set.
//
// A sample is predicted positive when its score is greater than or equal to
// the threshold. Every function is pure: curves are recomputed from the
// samples on each call.
//
// # Zero denominators
//
// Confusion-matrix rates fall back to 0 when their denominator is 0, so the
// display never sees NaN. The PR curve instead defines precision as 1 when no
// sample is predicted positive: at zero recall the curve starts at the top of
// the plot. The two conventions differ on purpose and are tested separately.
//
// # ROC point order
//
// ROC points are ordered by FPR and, within equal FPR, by TPR. The curve is
// then a monotone staircase, and its AUC can be higher than that of a curve
// kept in sweep order within each FPR tie: a perfectly separated
// two-sample set scores 1 instead of 0.5, and the separated preset 1.0 instead
// of about 0.993.
package curve
