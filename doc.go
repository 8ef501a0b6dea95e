// Package evolve is a small, deterministic toolkit for evolutionary search
// on box- and inequality-constrained continuous problems.
//
// 🚀 What is evolve?
//
//	Bit-exact xoshiro generators feed a genetic algorithm and differential
//	evolution. Every run is reproducible from a four-word seed, and
//	independent runs are separated by jumping the generator, never by
//	reseeding.
//
// ✨ Why choose evolve?
//
//   - Reproducible – fixed draw order, reference vectors for every generator
//   - Constraint-aware – linear exterior penalties for ranges and g(x) ≤ 0
//   - Small API – functional options and sentinel errors in every package
//   - Parallel where it is safe – across runs, never inside one
//
// Everything is organized under these packages:
//
//	xoshiro/   — xoshiro256+/++ and xoshiro128+/++ with Jump/LongJump and SplitMix64 seeding
//	uniform/   — word → float kernels for [0,1), (0,1], (0,1) and scaled ranges
//	shuffle/   — full and partial Fisher–Yates over any slice
//	problem/   — Problem record and the penalized fitness φ
//	problems/  — sphere, Ackley, Rastrigin, Styblinski–Tang, Himmelblau and three design problems
//	ga/        — genetic algorithm with an external elitist tracker
//	de/        — differential evolution with windowed donors
//	bench/     — repeated runs on jump-separated streams, statistics, CSV
//	cmd/evolve — command line driver (cobra, viper, logrus)
//
// Quick start:
//
//	rng, _ := xoshiro.New256Plus([4]uint64{1, 2, 3, 4})
//	res, err := ga.GeneticAlgorithm(rng, problems.TubularColumn())
//
//	go install github.com/katalvlaran/evolve/cmd/evolve@latest
package evolve
