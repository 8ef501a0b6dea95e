// SPDX-License-Identifier: MIT

// Package bench repeats a search many times on independent random streams
// and summarizes the outcome.
//
// Run i starts from the base seed advanced by i jumps (or long jumps), so
// no two runs share generator output. Runs execute in parallel on a bounded
// worker pool; every stream is derived before any run starts and results
// are stored by run index, which makes a Record identical for any worker
// count.
//
// Values[i] is the raw objective of the point returned by run i, without
// penalties. Stats summarize Values with the population standard deviation.
package bench
