// SPDX-License-Identifier: MIT

// Package problems is a small library of benchmark problems for the search
// engines, each returned as a ready-to-use *problem.Problem.
//
// Scalable test functions (any dimension d ≥ 1):
//   - Sphere          Σ x²                          on [-100, 100]^d, min 0 at 0
//   - Ackley          a=20, b=0.2, c=2π             on [-32.768, 32.768]^d, min 0 at 0
//   - Rastrigin       A=10                          on [-5.12, 5.12]^d, min 0 at 0
//   - StyblinskiTang  ½ Σ (x⁴ − 16x² + 5x)          on [-5, 5]^d, min ≈ −39.16617·d
//
// Fixed-dimension problems:
//   - Himmelblau                 2-D, four minima of value 0, e.g. (3, 2)
//   - TubularColumn              2-D design (d, t), 6 inequalities, weight 1000
//   - TensionCompressionSpring   3-D design, 4 inequalities, weight 100
//   - FMSound                    6-D frequency-modulated sound parameter fit
//
// Lookup resolves a problem by name for drivers and the command line.
package problems
