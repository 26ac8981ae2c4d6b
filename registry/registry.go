// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package registry holds the process-wide backend catalog. It is the only
// mutable global in the toolkit: initialized once behind a sync.Once guard
// and read-mostly afterwards.
package registry

import (
	"sort"
	"sync"

	"github.com/EqualFiLabs/zkd/backend"
	"github.com/EqualFiLabs/zkd/native"
	"github.com/EqualFiLabs/zkd/winterfell"
)

// Entry pairs a backend's prover and verifier halves.
type Entry struct {
	Prover   backend.ProverBackend
	Verifier backend.VerifierBackend
}

var (
	mu       sync.RWMutex
	backends = make(map[string]*Entry)
	initOnce sync.Once
)

// Register adds a backend pair under the prover's id. Registering the same
// id twice is an error.
func Register(prover backend.ProverBackend, verifier backend.VerifierBackend) error {
	id := prover.ID()
	mu.Lock()
	defer mu.Unlock()
	if _, exists := backends[id]; exists {
		return &RegistryError{ID: id, Duplicate: true}
	}
	backends[id] = &Entry{Prover: prover, Verifier: verifier}
	return nil
}

// Get returns the backend registered under id.
func Get(id string) (*Entry, error) {
	mu.RLock()
	defer mu.RUnlock()
	entry, ok := backends[id]
	if !ok {
		return nil, &RegistryError{ID: id}
	}
	return entry, nil
}

// Capabilities returns the capability set of the backend registered under id.
func Capabilities(id string) (backend.Capabilities, error) {
	entry, err := Get(id)
	if err != nil {
		return backend.Capabilities{}, err
	}
	return entry.Prover.Capabilities(), nil
}

// List yields backend infos sorted by id for deterministic iteration.
func List() []backend.Info {
	mu.RLock()
	defer mu.RUnlock()
	infos := make([]backend.Info, 0, len(backends))
	for id, entry := range backends {
		infos = append(infos, backend.Info{
			ID:        id,
			Recursion: entry.Prover.Capabilities().Recursion != backend.RecursionNone,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// EnsureBuiltinsRegistered registers the builtin backends exactly once. The
// initializer tolerates duplicate errors from explicit prior registration.
func EnsureBuiltinsRegistered() {
	initOnce.Do(func() {
		n := native.New()
		_ = Register(n, n)
		w := winterfell.New()
		_ = Register(w, w)
	})
}
