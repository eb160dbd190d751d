// Package fairness measures how evenly household load is distributed.
//
// Two metrics are provided: a 0-100 balance score derived from each member's
// deviation from their ideal share, and the Gini coefficient of the load
// vector. Both define the degenerate cases (single member, zero load) instead
// of leaving them undefined, so dashboards never render NaN.
//
// Report bundles the metrics with per-member shares into the payload a
// reporting surface consumes directly.
package fairness
