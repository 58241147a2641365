// Package iterate provides the loop helpers used by the dense-array hot
// paths: indexed sequential iteration and a C-style nested loop declared as
// a flat clause list. ForShape is the row-major specialization that ops use
// to walk multi-dimensional index spaces.
package iterate
