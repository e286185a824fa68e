// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package konfdef

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/nil-go/konfdef/internal/redact"
)

// Schema is the ordered, duplicate-checked registry of all keys
// for one configuration type.
//
// To create a new Schema, call [NewSchema] or [Merge].
// A Schema is immutable after construction and safe for
// concurrent use without synchronization.
type Schema struct {
	keys   map[string]KeyView
	order  []KeyView
	groups []string
}

// NewSchema builds a schema from the given keys in declaration order.
//
// It fails with a *ValidationFailedError if a key name appears twice,
// and with the validator's or codec's error if a declared default
// violates its own constraint, so broken defaults surface at build
// time rather than at first resolution.
//
// Keys are copied into the schema: later mutation of the arguments
// has no effect on the built schema.
func NewSchema(keys ...KeyView) (*Schema, error) {
	schema := &Schema{keys: make(map[string]KeyView, len(keys))}

	seen := make(map[string]struct{})
	for _, key := range keys {
		clone := key.Clone()
		name := clone.Name()
		if _, exists := schema.keys[name]; exists {
			return nil, &ValidationFailedError{
				Name:    name,
				Message: fmt.Sprintf("Configuration key '%s' is defined twice.", name),
			}
		}

		if err := clone.checkDefault(); err != nil {
			return nil, err
		}

		schema.keys[name] = clone
		schema.order = append(schema.order, clone)

		if group := clone.Group(); group != "" {
			if _, ok := seen[group]; !ok {
				seen[group] = struct{}{}
				schema.groups = append(schema.groups, group)
			}
		}
	}

	return schema, nil
}

// Merge combines the schemas' keys, in declaration order, into one
// composite schema. A key name repeated across schemas is an error,
// not a silent override. Keys are copied, so resolving the composite
// is equivalent to resolving each sub-schema independently.
func Merge(schemas ...*Schema) (*Schema, error) {
	var keys []KeyView
	for _, schema := range schemas {
		if schema == nil {
			continue
		}
		keys = append(keys, schema.order...)
	}

	return NewSchema(keys...)
}

// Find returns the key with the given name, or nil if the schema
// does not define it.
func (s *Schema) Find(name string) KeyView {
	if s == nil {
		return nil
	}

	return s.keys[name]
}

// Keys returns all keys in declaration order.
func (s *Schema) Keys() []KeyView {
	return slices.Clone(s.order)
}

// Groups returns the distinct group labels in first-seen order.
func (s *Schema) Groups() []string {
	return slices.Clone(s.groups)
}

// Len returns the number of keys in the schema.
func (s *Schema) Len() int {
	return len(s.order)
}

// Explain provides information about how the schema resolves a value
// for the given key from the given properties. It blurs sensitive
// information, so the result is safe to log.
func (s *Schema) Explain(name string, props map[string]string) string {
	key := s.Find(name)
	if key == nil {
		return name + " has no schema definition.\n"
	}

	if raw, ok := props[name]; ok {
		return fmt.Sprintf("%s has value[%s] that is loaded by properties.\n", name, blurred(key, raw))
	}
	if raw, ok := key.DefaultString(); ok {
		return fmt.Sprintf("%s has value[%s] that is loaded by default.\n", name, blurred(key, raw))
	}

	return name + " has no value.\n"
}

func blurred(key KeyView, raw string) string {
	if key.valueType() == reflect.TypeFor[Password]() {
		return "******"
	}

	return redact.Blur(key.Name(), raw)
}
