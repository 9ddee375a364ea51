// Package kernel contains the shared normalization primitives used across the
// domain model: comparison token keys, fuzzy string similarity, and the two
// accepted timestamp layouts. Every stage of the pipeline compares strings
// through these helpers so that zone resolution, address deduplication, and log
// matching all agree on what "the same value" means.
package kernel
