// SPDX-License-Identifier: MIT

// Package ga implements a real-coded genetic algorithm for box- and
// inequality-constrained minimization over a problem.Problem.
//
// 🚀 What is it?
//
//	A population of candidate vectors evolves through tournament selection,
//	blend crossover and random-reset mutation. Every candidate is scored by
//	the penalized fitness φ, and the best vector ever evaluated is tracked
//	outside the population, so the result may no longer be a member of the
//	final generation.
//
// ✨ One generation:
//  1. Selection: for every slot i, partially shuffle a persistent index
//     pool to draw TournamentSize distinct indices; the lowest fitness
//     among them (first on ties) is copied into slot i.
//  2. Recombination: a single forward scan. An index that passes the
//     crossover test becomes a first parent; the scan then tests indices
//     again, starting with the first parent itself, for a second passing
//     index. The pair is overwritten with the blend (1−a)·p1+a·p2 and
//     a·p1+(1−a)·p2 using one shared a ∈ [0,1); a self pair keeps
//     a·p1+(1−a)·p1. The scan resumes after the second parent. An unpaired
//     first parent at the end is left unchanged.
//  3. Mutation: each gene independently, with MutationProbability, is
//     replaced by a fresh sample from its dimension's [Lo, Hi).
//  4. Evaluation: φ of every new individual; the global best is replaced
//     only by a strictly lower fitness.
//
// Determinism:
//
//	For a fixed generator state, problem and Options the result is
//	bit-for-bit reproducible. Draws happen in a fixed order: N·D for
//	initialization, then per generation N·k selection words, the crossover
//	scan, N·D mutation tests plus one word per reset gene.
//
// Complexity:
//
//	Time  O(I · N · (k + D) + I · N · cost(φ))
//	Space O(N · D), two population buffers swapped every generation.
//
// Errors:
//
//	ErrNilRNG, ErrNilProblem, ErrBadIterations, ErrBadPopulationSize,
//	ErrBadTournamentSize, ErrBadProbability, wrapped problem validation
//	errors, and a wrapped problem.ErrNaN when φ cannot be ordered.
package ga
