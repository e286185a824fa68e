// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package validate

import (
	"slices"
	"strings"

	"github.com/nil-go/konfdef"
)

// ValidString validates that a value, after trimming, is a member of a
// fixed set of permitted strings.
type ValidString struct {
	valid []string
}

// OneOf returns a ValidString permitting exactly the given values.
func OneOf(values ...string) *ValidString {
	return &ValidString{valid: slices.Clone(values)}
}

func (v *ValidString) Validate(name, value string) error {
	if !slices.Contains(v.valid, strings.TrimSpace(value)) {
		return &konfdef.ValidationFailedError{
			Name:    name,
			Message: "String must be one of: " + strings.Join(v.valid, ", "),
		}
	}

	return nil
}

func (v *ValidString) String() string {
	return "[" + strings.Join(v.valid, ", ") + "]"
}
