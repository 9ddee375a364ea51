// Package services contains the three domain services of the pipeline:
// OrderMerger (normalize + deduplicate), OrderDispatcher (constrained greedy
// assignment), and DeliveryReconciler (plan-vs-log discrepancy audit).
//
// All three are pure, deterministic functions of their inputs: identical input
// snapshots produce byte-identical results. Anomalies surface as data
// (warnings, unassigned records, reconciliation flags), never as errors.
package services
