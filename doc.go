// Package option is the public facade of the American-option pricing
// engine: a finite-difference PDE solver for early-exercisable calls and
// puts on a single dividend-paying underlying under Black-Scholes
// diffusion, across the three rate regimes a dividend/negative-rate
// underlying can put the free boundary into (Standard,
// SingleBoundaryNegative, DoubleBoundary).
//
// An Engine holds nothing but an EngineConfig; every Price/Delta/.../
// PriceWithDetails call builds its own grid, steps it, and discards it.
// Nothing is pooled, cached, or retained across calls, and the engine
// never logs or performs I/O — see DESIGN.md for why.
package option
