// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gadgets provides the commitment and range-check building blocks:
// a hash-based Pedersen placeholder with a stable surface for real curve
// math, a BN254-backed committer, deterministic arithmetic under
// commitments, and k-bit range checks.
package gadgets

import "errors"

// Privacy gadget error taxonomy. The validator reports InvalidCurvePoint,
// BlindingReuse and RangeCheckOverflow under the codes of the same name,
// ErrUnsupportedCurve as CurveNotAllowed, and any other error (including
// ErrUnsupportedHash) as UnsupportedCurve.
var (
	ErrInvalidCurvePoint  = errors.New("InvalidCurvePoint")
	ErrBlindingReuse      = errors.New("BlindingReuse")
	ErrRangeCheckOverflow = errors.New("RangeCheckOverflow")
	ErrUnsupportedCurve   = errors.New("UnsupportedCurve")
	ErrUnsupportedHash    = errors.New("unsupported hash id")
)
