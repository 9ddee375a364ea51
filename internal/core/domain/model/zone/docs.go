// Package zone resolves free-form zone and city spellings to the single
// canonical name for each delivery area. The Index is built once per run from
// the raw-to-canonical zone table and is read-only afterwards; it is passed
// explicitly to every normalization and coverage call rather than held as
// process-global state.
package zone
