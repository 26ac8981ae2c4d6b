// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import "fmt"

// CapabilityCode enumerates configuration/capability violations. Ordered
// checks surface the first violation, so codes are reproducible diagnostics.
type CapabilityCode string

const (
	CodeUnknownBackend       CapabilityCode = "UnknownBackend"
	CodeFieldUnsupported     CapabilityCode = "FieldUnsupported"
	CodeHashUnsupported      CapabilityCode = "HashUnsupported"
	CodeFriArityUnsupported  CapabilityCode = "FriArityUnsupported"
	CodeRecursionUnavailable CapabilityCode = "RecursionUnavailable"
	CodeProfileNotFound      CapabilityCode = "ProfileNotFound"
	CodeMismatch             CapabilityCode = "Mismatch"
)

// CapabilityError is a typed capability/config violation.
type CapabilityError struct {
	Code   CapabilityCode
	Detail string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("capability mismatch: %s", e.Detail)
}

func capErr(code CapabilityCode, format string, args ...any) error {
	return &CapabilityError{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// RegistryError covers backend registration faults.
type RegistryError struct {
	ID        string
	Duplicate bool
}

func (e *RegistryError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("backend with id '%s' is already registered", e.ID)
	}
	return fmt.Sprintf("backend '%s' not found", e.ID)
}
