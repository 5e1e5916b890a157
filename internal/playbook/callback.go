package playbook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilCallback means a choice carried no playbook reference at all.
// The usual cause is building a Choice from an uninitialised Ref instead
// of the Ref returned by Register.
var ErrNilCallback = errors.New("playbook: nil callback reference")

// ErrUnregisteredCallback means the reference did not resolve to exactly one
// registered playbook: either it was never registered, its checksum no
// longer matches, or the name was registered more than once.
var ErrUnregisteredCallback = errors.New("playbook: callback not registered")

// CallbackRequest is the wire form of a callback token. It round-trips
// through the chat backend untouched as the value of an interactive element.
type CallbackRequest struct {
	FuncName     string `json:"func_name"`
	FuncChecksum string `json:"func_checksum"`
	Context      string `json:"context"`
}

// Encoder turns (Ref, context) pairs into tokens. The target ID names this
// bot instance so the backend can route the eventual callback invocation.
type Encoder struct {
	registry *Registry
	targetID string
}

// NewEncoder returns an Encoder validating refs against registry.
func NewEncoder(registry *Registry, targetID string) *Encoder {
	return &Encoder{registry: registry, targetID: targetID}
}

// Encode validates ref against the registry and returns the token string.
// The context map is copied, never mutated; the encoder's target ID is
// merged in under "target_id". Encode performs no I/O.
func (e *Encoder) Encode(ref Ref, context map[string]any) (string, error) {
	if ref == (Ref{}) {
		return "", ErrNilCallback
	}
	if !e.registry.IsRegistered(ref) {
		return "", fmt.Errorf("%w: %s@%s", ErrUnregisteredCallback, ref.Name, ref.Checksum)
	}

	merged := make(map[string]any, len(context)+1)
	for k, v := range context {
		merged[k] = v
	}
	merged["target_id"] = e.targetID

	ctxJSON, err := json.Marshal(merged)
	if err != nil {
		return "", fmt.Errorf("marshal callback context: %w", err)
	}
	token, err := json.Marshal(CallbackRequest{
		FuncName:     ref.Name,
		FuncChecksum: ref.Checksum,
		Context:      string(ctxJSON),
	})
	if err != nil {
		return "", fmt.Errorf("marshal callback token: %w", err)
	}
	return string(token), nil
}

// Decode parses a token back into its CallbackRequest form.
func Decode(token string) (CallbackRequest, error) {
	var req CallbackRequest
	if err := json.Unmarshal([]byte(token), &req); err != nil {
		return CallbackRequest{}, fmt.Errorf("parse callback token: %w", err)
	}
	return req, nil
}

// Ref returns the playbook reference the token names.
func (r CallbackRequest) Ref() Ref {
	return Ref{Name: r.FuncName, Checksum: r.FuncChecksum}
}

// ContextMap deserialises the embedded context mapping.
func (r CallbackRequest) ContextMap() (map[string]any, error) {
	m := map[string]any{}
	if r.Context == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(r.Context), &m); err != nil {
		return nil, fmt.Errorf("parse callback context: %w", err)
	}
	return m, nil
}
