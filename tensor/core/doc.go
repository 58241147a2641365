// Package core holds the small numeric and slice helpers shared by the
// tensor packages. Everything here operates on plain values and slices so
// that hot loops in ops stay allocation-free.
package core
