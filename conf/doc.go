// Package conf implements the configuration: an ordered collection of
// parameters plus the cross-parameter conditions that a valid parameter set
// must satisfy.
//
// Insertion order is preserved across edits — replacing a parameter keeps its
// position — so iteration, delta-copy diffing and variant expansion are all
// deterministic.
//
// Validation is the only place correctness is checked; mutation never
// triggers it. Validate stops at the first failure, ValidateAll collects
// every failure for callers that want the aggregate report.
//
// Defaults are declared through factory functions (see Factory) registered in
// a registry; there is no subclass-based template dispatch.
package conf
