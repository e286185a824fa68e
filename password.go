// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package konfdef

// Password holds a secret configuration value.
//
// The real value is only reachable through Value, which the resolution
// engine uses when a secret must be validated or converted back to its
// config string. Every human-facing conversion (String, %s, %v) yields
// a fixed placeholder instead, so secrets never leak into logs or
// debug output by accident.
type Password struct {
	value string
}

// NewPassword wraps the given secret value.
func NewPassword(value string) Password {
	return Password{value: value}
}

// Value returns the real secret value.
func (p Password) Value() string {
	return p.value
}

func (p Password) String() string {
	return "[hidden]"
}

// GoString hides the secret from %#v formatting as well.
func (p Password) GoString() string {
	return "konfdef.Password{value: \"[hidden]\"}"
}
