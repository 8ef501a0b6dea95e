// SPDX-License-Identifier: MIT

// Command evolve benchmarks the genetic algorithm and differential evolution
// engines on the built-in problems.
//
//	evolve problems
//	evolve run --algo de --problem tension-compression-spring --runs 30
//	EVOLVE_RUNS=10 evolve run --config study.yaml --format yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/evolve/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
