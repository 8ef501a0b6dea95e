// SPDX-License-Identifier: MIT

// Package de implements differential evolution (DE/rand/1/bin with a
// windowed donor scheme) over a problem.Problem.
//
// One generation:
//
//	The index pool is shuffled once. Target i takes its donors from the
//	shuffled pool at positions i, i+1 and i+2 (mod N), so neighboring
//	targets share donors and a donor may coincide with the target itself.
//	A dimension r is drawn for guaranteed crossover, then every gene j
//	draws a probability; when it is below CrossoverProbability, or j == r,
//	the trial gene is r1_j + F·(r2_j − r3_j), otherwise the target's own.
//	All trials are scored before any replacement, and a trial replaces its
//	target only when strictly better.
//
// Unlike package ga there is no elitist tracker: the result is the lowest
// fitness member of the final population (first on ties). Greedy
// replacement already makes that value non-increasing over generations.
//
// Complexity: time O(I · N · D + I · N · cost(φ)), space O(N · D).
package de
