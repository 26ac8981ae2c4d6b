// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EqualFiLabs/zkd/proof"
	"github.com/EqualFiLabs/zkd/registry"
)

func TestExitCodeMapping(t *testing.T) {
	require.Equal(t, exitCorruption, exitCodeFor(proof.Corrupt("bad magic")))
	require.Equal(t, exitCorruption,
		exitCodeFor(fmt.Errorf("verify: %w", proof.Corrupt("fake trace root mismatch"))))

	capErr := &registry.CapabilityError{Code: registry.CodeHashUnsupported, Detail: "no sha256"}
	require.Equal(t, exitConfig, exitCodeFor(capErr))

	regErr := &registry.RegistryError{ID: "ghost@0.0"}
	require.Equal(t, exitConfig, exitCodeFor(regErr))

	require.Equal(t, exitUser, exitCodeFor(&userError{err: errors.New("bad input")}))
	require.Equal(t, exitUser, exitCodeFor(errors.New("anything else")))
}
