// SPDX-License-Identifier: MIT

package problems

import "errors"

var (
	// ErrUnknownProblem indicates that Lookup received an unregistered name.
	ErrUnknownProblem = errors.New("problems: unknown problem")

	// ErrBadDimension indicates a dimension that the problem cannot take.
	ErrBadDimension = errors.New("problems: unsupported dimension")
)

const (
	// DefaultDim is used by Lookup for scalable problems when dim <= 0.
	DefaultDim = 2

	// DefaultPenaltyWeight scales box violations of the unconstrained
	// test functions.
	DefaultPenaltyWeight = 100.0
)

// Registered names.
const (
	NameSphere         = "sphere"
	NameAckley         = "ackley"
	NameRastrigin      = "rastrigin"
	NameStyblinskiTang = "styblinski-tang"
	NameHimmelblau     = "himmelblau"
	NameTubularColumn  = "tubular-column"
	NameSpring         = "tension-compression-spring"
	NameFMSound        = "fm-sound"
)
