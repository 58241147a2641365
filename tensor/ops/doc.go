// Package ops implements element-wise and spectral operations on dense
// arrays. Float64 kernels dispatch to SIMD-optimized vecmath routines;
// Object and Int64 arrays are walked with the iterate helpers.
package ops
