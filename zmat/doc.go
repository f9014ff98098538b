// Package zmat provides the dense complex128 kernels the rest of the
// library is built on: thin helpers over gonum's cblas128.General storage
// (clone, add, multiply, adjoint, trace, max-abs) plus an LU factorization
// with partial pivoting, triangular solves and a dense inverse.
//
// gonum ships no pure-Go complex LAPACK, so the factorization lives here;
// it follows the unblocked LAPACK scheme (getf2/getrs) on top of the
// gonum BLAS complex128 implementation.
//
// Error policy mirrors gonum/mat: shape violations are programmer errors
// and panic; numerical failures (a zero pivot) are runtime conditions and
// are returned as ErrSingular.
package zmat
