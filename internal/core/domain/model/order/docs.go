// Package order defines the order records flowing through the pipeline and the
// field normalizer that turns a RawOrder into a CleanOrder. Normalization never
// fails: malformed fields degrade to safe defaults and are reported as warning
// strings tagged with the order id.
package order
