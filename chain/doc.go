// Package chain computes the surface Green's function of a periodic
// semi-infinite chain by decimation (iterative renormalization).
//
// The chain is described by an on-site block H (repeated down the chain)
// and a coupling block V between consecutive cells, both already in
// inverse-Green's-function form (E·I − H_cell at the energy of
// interest). Each iteration of the doubling map
//
//	epsilon'     = epsilon - alpha·g·beta - beta·g·alpha
//	epsilonSurf' = epsilonSurf - alpha·g·beta
//	alpha'       = alpha·g·alpha
//	beta'        = beta·g·beta
//	g'           = epsilon'⁻¹
//
// folds in a chain segment of doubled length, so the effective couplings
// alpha/beta decay at worst geometrically. Iteration stops when both have
// max-abs entry below the tolerance, and the surface Green's function is
// epsilonSurf⁻¹.
//
// Hitting MaxIterations without convergence is a soft failure: the best
// available estimate is still returned together with ErrNotConverged,
// because truncation error is usually acceptable downstream.
package chain
