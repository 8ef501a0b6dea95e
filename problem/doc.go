// SPDX-License-Identifier: MIT

// Package problem describes box- and inequality-constrained continuous
// minimization problems and their penalized fitness.
//
// A Problem bundles:
//   - Objective      f(x)            — value to minimize.
//   - Ranges         [lo_j, hi_j]    — one closed interval per dimension.
//   - Inequalities   g_k(x) ≤ 0      — feasible when the value is ≤ 0.
//   - PenaltyWeight  w               — scale of the violation term.
//
// Penalized fitness (the only value search engines look at):
//
//	φ(x) = f(x)
//	     + w·Σ_j (lo_j − x_j)  for x_j < lo_j
//	     + w·Σ_j (x_j − hi_j)  for x_j > hi_j
//	     + w·Σ_k g_k(x)        for g_k(x) > 0
//
// The penalty is linear, not squared. A point that satisfies every range and
// every inequality has φ(x) == f(x) exactly, since nothing is added.
//
// NaN policy:
//
//	Fitness values must be totally ordered. Evaluate reports ErrNaN when the
//	objective, any constraint, or the accumulated total is NaN instead of
//	letting NaN poison later comparisons.
//
// A Problem is an immutable record: engines never modify it and it may be
// shared by concurrent independent runs provided the user functions are
// themselves safe for concurrent use.
package problem
