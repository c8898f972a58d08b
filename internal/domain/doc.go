// Package domain defines the core value types shared by every pricing
// component: OptionKind, RateRegime, EngineConfig, and PricingResult.
//
// What:
//
//   - All types here are pure data — no identity, no mutable state, no
//     methods with side effects. They are constructed per call and
//     discarded; nothing in this package retains a reference to a caller's
//     value.
//   - EngineConfig is the one type a caller constructs once and reuses
//     across many calls; Validate reports whether it is usable before an
//     Engine is built from it.
//
// Why:
//
//   - Keeping these types dependency-free (beyond engerr) lets every
//     other package in the module depend on domain without risking an
//     import cycle with the facade package at the module root.
package domain
