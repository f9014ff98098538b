// Package negf is your in-memory toolkit for quantum-transport
// calculations on block-structured matrices — from raw complex dense
// blocks to Landauer transmission curves.
//
// 🚀 What is negf?
//
//	A pure-Go library for non-equilibrium Green's function calculations:
//		• zmat: complex dense matrices over gonum's cblas128 kernels, with LU solves
//		• blockmat: owner/reference block views with Python-style negative indexing
//		• greens: recursive partial inverses of block-tridiagonal matrices
//		• chain: surface Green's functions of semi-infinite leads by decimation
//		• transport: Caroli-formula transmission through a two-lead device
//		• ensemble: data-parallel batching with contention-free progress reporting
//
// ✨ Why choose negf?
//
//   - Solve for only the blocks you need – corner blocks and block
//     columns cost far less than the dense inverse
//   - Rock-solid error discipline – sentinel errors, per-block failure
//     indices, soft convergence warnings that still return a result
//   - Pure Go – no cgo, no LAPACK binding, reproducible everywhere
//   - Batch-friendly – sweep an energy grid across all cores with one call
//
// Start with blockmat.NewView to partition a matrix, hand it to
// greens.Solve for the inverse blocks you need, and compose lead
// self-energies with chain.Surface and transport.Transmission.
package negf
