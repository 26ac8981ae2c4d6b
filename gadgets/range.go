// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gadgets

import "fmt"

// RangeCheckU64 ensures x fits within k bits, 1 <= k <= 64.
func RangeCheckU64(x uint64, k uint32) error {
	if k < 1 || k > 64 {
		return fmt.Errorf("%w: k=%d out of bounds [1..64]", ErrRangeCheckOverflow, k)
	}
	mask := ^uint64(0)
	if k < 64 {
		mask = (uint64(1) << k) - 1
	}
	if x&^mask != 0 {
		return fmt.Errorf("%w: value %d does not fit in %d bits", ErrRangeCheckOverflow, x, k)
	}
	return nil
}

// RangeCheckSliceU64 applies the same bound to every element.
func RangeCheckSliceU64(xs []uint64, k uint32) error {
	for _, x := range xs {
		if err := RangeCheckU64(x, k); err != nil {
			return err
		}
	}
	return nil
}
