// Package playbook holds the callback registry and the encoding of callback
// references into transportable tokens. A playbook is a named, versioned
// handler that interactive report buttons trigger later; the token embeds
// only its identity and context, never code.
package playbook

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
)

// Handler is the signature of a registered playbook callback.
type Handler func(ctx context.Context, payload map[string]any) error

// Ref identifies a registered playbook: its name plus a checksum derived
// from name and version at registration time. A stale Ref (renamed or
// re-versioned playbook) fails lookup instead of invoking the wrong code.
type Ref struct {
	Name     string
	Checksum string
}

type entry struct {
	handler    Handler
	checksum   string
	duplicated bool
}

// Registry maps playbook names to handlers. Registration happens at process
// startup, before any dispatch; the registry is read-only afterwards.
type Registry struct {
	entries map[string]*entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register adds a handler under name/version and returns its Ref.
// Registering the same name twice marks the entry ambiguous: both
// registrations stop resolving, since a token could no longer identify
// which handler it meant.
func (r *Registry) Register(name, version string, fn Handler) Ref {
	if fn == nil {
		panic("playbook: Register called with nil handler")
	}
	sum := checksum(name, version)
	if existing, ok := r.entries[name]; ok {
		existing.duplicated = true
		return Ref{Name: name, Checksum: sum}
	}
	r.entries[name] = &entry{handler: fn, checksum: sum}
	return Ref{Name: name, Checksum: sum}
}

// NewRef builds the reference Register would return for name/version without
// registering anything. Report files authored outside this process use it to
// name playbooks they expect to be registered here.
func NewRef(name, version string) Ref {
	return Ref{Name: name, Checksum: checksum(name, version)}
}

// Lookup resolves a Ref to its handler. It reports false for unknown names,
// checksum mismatches, and ambiguous (duplicate) registrations.
func (r *Registry) Lookup(ref Ref) (Handler, bool) {
	e, ok := r.entries[ref.Name]
	if !ok || e.duplicated || e.checksum != ref.Checksum {
		return nil, false
	}
	return e.handler, true
}

// IsRegistered reports whether Lookup would succeed for ref.
func (r *Registry) IsRegistered(ref Ref) bool {
	_, ok := r.Lookup(ref)
	return ok
}

func checksum(name, version string) string {
	h := sha1.Sum([]byte(name + "\x00" + version))
	return hex.EncodeToString(h[:8])
}
