// Package greens computes partial inverses of block-tridiagonal complex
// matrices by recursive block elimination — the "recursive Green's
// function" scheme of quantum transport.
//
// For a view with k diagonal blocks the forward sweep is
//
//	sigma_0 = 0
//	g_b     = (H_{b,b} - sigma_b)^{-1}
//	sigma_{b+1} = H_{b+1,b} · g_b · H_{b,b+1}
//
// so the last diagonal block of the inverse is (H_{k-1,k-1} -
// sigma_{k-1})^{-1}. The first-block variants run the identical recursion
// on a Reverse()d view; the column variants retain every intermediate g_b
// and back-substitute G_{b,t} = -g_b · H_{b,b∓1} · G_{b∓1,t}.
//
// Only diagonal and nearest-neighbor blocks are ever read. The matrix
// being genuinely block-tridiagonal is a precondition, not checked: on a
// matrix with wider coupling the result is silently wrong.
//
// Why this package exists: one dense inverse of an n×n matrix costs
// O(n³); the recursion does k inversions of block size b, O(k·b³) for
// uniform blocks, which is the entire point of block-structured storage.
//
// Scratch state (the g_b arena and sigma accumulator) is local to each
// Solve call. Calls are independent and safe to run concurrently on
// distinct views.
package greens
