// Package courier defines the courier table records and the canonicalized
// Profile used for coverage, eligibility and capacity checks during assignment
// and reconciliation.
package courier
