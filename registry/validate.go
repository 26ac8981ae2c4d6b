// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/EqualFiLabs/zkd/air"
	"github.com/EqualFiLabs/zkd/backend"
	"github.com/EqualFiLabs/zkd/profile"
)

// ValidateConfig checks a desired configuration against the registered
// backend's capabilities and the profile catalog. Checks run in a fixed
// order (existence, field, hash, fri arity, recursion, profile) and the
// first violation is returned, so diagnostics are reproducible.
func ValidateConfig(cfg *backend.Config, profiles []profile.Profile) error {
	caps, err := Capabilities(cfg.BackendID)
	if err != nil {
		return capErr(CodeUnknownBackend, "unknown backend '%s'", cfg.BackendID)
	}

	if !caps.SupportsField(cfg.Field) {
		return capErr(CodeFieldUnsupported,
			"backend '%s' does not support field '%s'", cfg.BackendID, cfg.Field)
	}
	if !caps.SupportsHash(cfg.Hash) {
		return capErr(CodeHashUnsupported,
			"backend '%s' does not support hash '%s'", cfg.BackendID, cfg.Hash)
	}
	if !caps.SupportsFriArity(cfg.FriArity) {
		return capErr(CodeFriArityUnsupported,
			"backend '%s' does not support fri arity %d", cfg.BackendID, cfg.FriArity)
	}
	if cfg.RecursionNeeded && caps.Recursion == backend.RecursionNone {
		return capErr(CodeRecursionUnavailable,
			"backend '%s' does not support recursion", cfg.BackendID)
	}
	if _, ok := profile.Lookup(profiles, cfg.ProfileID); !ok {
		return capErr(CodeProfileNotFound, "profile '%s' not found", cfg.ProfileID)
	}
	return nil
}

// ValidateAIRAgainstBackend enforces the AIR-level capability requirements:
// a pedersen-requiring AIR needs a pedersen-capable backend, and any curve
// it names must be advertised.
func ValidateAIRAgainstBackend(ir *air.IR, backendID string) error {
	caps, err := Capabilities(backendID)
	if err != nil {
		return capErr(CodeUnknownBackend, "unknown backend '%s'", backendID)
	}

	bindings := air.BindingsFromIR(ir)
	if !bindings.Commitments.Pedersen {
		return nil
	}
	if !caps.Pedersen {
		return capErr(CodeMismatch,
			"AIR requires pedersen commitments but backend '%s' does not support them", backendID)
	}
	if curve := bindings.Commitments.Curve; curve != "" && !caps.SupportsCurve(curve) {
		return capErr(CodeMismatch,
			"AIR requires curve '%s' not supported by backend '%s'", curve, backendID)
	}
	return nil
}
