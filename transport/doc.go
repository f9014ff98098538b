// Package transport evaluates two-terminal Landauer transmission by
// composing the chain and greens solvers: lead surface Green's functions
// become self-energies on the device corners, the dressed device is
// partially inverted, and the Caroli trace
//
//	T = Re Tr[Γ_L · G · Γ_R · G^†],   Γ_X = i(Σ_X − Σ_X^†)
//
// yields the transmission. This package is the composition contract
// between the decimation and partial-inverse solvers: a ballistic device
// wired to matching leads must transmit exactly one unit per conducting
// channel.
//
// All inputs are inverse-Green's-function blocks at a fixed energy
// (E·I − H, with an infinitesimal imaginary part inside the propagating
// band). An unconverged lead decimation propagates as the soft
// chain.ErrNotConverged alongside a still-usable transmission value.
package transport
