// SPDX-License-Identifier: MIT

package problems

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/evolve/problem"
)

type entry struct {
	scalable bool
	fixedDim int
	build    func(d int) *problem.Problem
}

var registry = map[string]entry{
	NameSphere:         {scalable: true, build: Sphere},
	NameAckley:         {scalable: true, build: Ackley},
	NameRastrigin:      {scalable: true, build: Rastrigin},
	NameStyblinskiTang: {scalable: true, build: StyblinskiTang},
	NameHimmelblau:     {fixedDim: 2, build: func(int) *problem.Problem { return Himmelblau() }},
	NameTubularColumn:  {fixedDim: 2, build: func(int) *problem.Problem { return TubularColumn() }},
	NameSpring:         {fixedDim: 3, build: func(int) *problem.Problem { return TensionCompressionSpring() }},
	NameFMSound:        {fixedDim: 6, build: func(int) *problem.Problem { return FMSound() }},
}

// Names returns the registered problem names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Lookup builds the named problem.
//
// For scalable problems dim <= 0 selects DefaultDim. For fixed-dimension
// problems dim must be 0 or equal to the problem's dimension.
//
// Errors: ErrUnknownProblem, ErrBadDimension.
func Lookup(name string, dim int) (*problem.Problem, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
	}
	if e.scalable {
		if dim <= 0 {
			dim = DefaultDim
		}

		return e.build(dim), nil
	}
	if dim != 0 && dim != e.fixedDim {
		return nil, fmt.Errorf("%w: %s is %d-dimensional, got %d", ErrBadDimension, name, e.fixedDim, dim)
	}

	return e.build(e.fixedDim), nil
}

// Scalable reports whether the named problem accepts any dimension.
func Scalable(name string) bool {
	return registry[name].scalable
}
