// Package blockmat provides block-structured views over dense complex
// matrices: a Partition describing how rows/columns group into contiguous
// blocks, and a View giving block-indexed access to a matrix buffer.
//
// The package exists so the recursive Green's function solvers can walk a
// block-tridiagonal matrix one block at a time without copying. Its two
// load-bearing ideas:
//
//   - Ownership is explicit. A View is either an owner (it holds its
//     buffer exclusively) or a reference (it aliases another view's buffer
//     and partition arrays). Mutation through a reference mutates the
//     owner's storage; re-partitioning via SetBlocks is legal only on
//     owners. Clone of an owner deep-copies, Clone of a reference aliases.
//
//   - Block indices are Python-style: -1 is the last block, -2 the one
//     before it. Reverse() returns a view whose block indexing is
//     mirrored, which lets the backward recursions reuse the forward
//     formulas unchanged.
//
// All construction-time misuse (bad partitions, out-of-range indices,
// shape mismatches) is reported through the package's sentinel errors
// before any numeric work starts.
package blockmat
