// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nil-go/konfdef"
)

// ValidList validates a comma-separated list against three independent
// policies, applied in a fixed order so error messages are
// deterministic: the empty-list policy first, then duplicates, then
// per-item validity (no empty items, membership in the allow-list when
// one is configured).
type ValidList struct {
	valid        *ValidString
	emptyAllowed bool
}

// AnyList returns a ValidList permitting any non-duplicate values.
func AnyList(emptyAllowed bool) *ValidList {
	return &ValidList{valid: OneOf(), emptyAllowed: emptyAllowed}
}

// ListOf returns a ValidList permitting only the given values.
// Empty lists are allowed.
func ListOf(values ...string) *ValidList {
	return &ValidList{valid: OneOf(values...), emptyAllowed: true}
}

// ListOfAllowEmpty returns a ValidList permitting only the given values
// and controlling whether the empty list is allowed. It panics when
// empty lists are disallowed but no values are given, as such a
// validator could never succeed.
func ListOfAllowEmpty(emptyAllowed bool, values ...string) *ValidList {
	if !emptyAllowed && len(values) == 0 {
		panic("at least one valid value must be provided when empty lists are not allowed")
	}

	return &ValidList{valid: OneOf(values...), emptyAllowed: emptyAllowed}
}

func (v *ValidList) Validate(name, value string) error {
	items := splitList(value)

	if !v.emptyAllowed && len(items) == 0 {
		hint := "any non-empty value"
		if len(v.valid.valid) > 0 {
			hint = v.valid.String()
		}

		return &konfdef.ValidationFailedError{
			Name:    name,
			Message: fmt.Sprintf("Configuration '%s' must not be empty. Valid values include: %s", name, hint),
		}
	}

	// Duplicates take precedence over per-item errors.
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return &konfdef.ValidationFailedError{
				Name:    name,
				Message: fmt.Sprintf("Configuration '%s' values must not be duplicated.", name),
			}
		}
		seen[item] = struct{}{}
	}

	for _, item := range items {
		if item == "" {
			return &konfdef.ValidationFailedError{
				Name:    name,
				Message: fmt.Sprintf("Configuration '%s' values must not be empty.", name),
			}
		}
		if len(v.valid.valid) > 0 && !slices.Contains(v.valid.valid, item) {
			return &konfdef.ValidationFailedError{
				Name:    name,
				Message: fmt.Sprintf("Invalid value '%s' for configuration '%s': String must be one of: %s",
					item, name, strings.Join(v.valid.valid, ", ")),
			}
		}
	}

	return nil
}

func (v *ValidList) String() string {
	description := "any value"
	if len(v.valid.valid) > 0 {
		description = v.valid.String()
	}
	if v.emptyAllowed {
		return description + " (empty list allowed)"
	}

	return description + " (empty list not allowed)"
}

// splitList parses the raw value the way the list codec does:
// an empty string, or separators with nothing but whitespace between
// them, is the empty list rather than a run of empty-string items.
func splitList(value string) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	items := strings.Split(trimmed, ",")
	empty := true
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
		if items[i] != "" {
			empty = false
		}
	}
	if empty {
		return nil
	}

	return items
}
