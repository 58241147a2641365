// Package check provides the error helpers shared across the tensor
// packages: ad-hoc error construction from value lists, failure detection,
// a not-implemented marker, and invalid-argument precondition checks.
//
// All helpers construct and return errors; callers decide whether to
// propagate them. Sentinels match with errors.Is.
package check
