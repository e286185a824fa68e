// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package konfdef

import "sync"

// Definition lazily builds the schema for one configuration type,
// exactly once, on first use.
//
// Concurrent first access serializes on a single construction attempt:
// every caller observes the one resulting schema, or the one resulting
// build error, forever after. A Definition is typically declared as a
// package-level variable next to its configuration struct:
//
//	var serverDef = konfdef.Define(func() (*konfdef.Schema, error) {
//		return konfdef.NewSchema(
//			konfdef.Int("port").WithDefault(8080).WithValidator(validate.Between(1, 65535)),
//			konfdef.String("host").WithDefault("localhost"),
//		)
//	})
type Definition struct {
	schema func() (*Schema, error)
}

// Define creates a Definition from the given schema build function.
// It panics if build is nil.
func Define(build func() (*Schema, error)) *Definition {
	if build == nil {
		panic("cannot define configuration with nil build")
	}

	return &Definition{schema: sync.OnceValues(build)}
}

// Schema returns the cached schema, building it on first call.
func (d *Definition) Schema() (*Schema, error) {
	return d.schema()
}

// Resolve resolves the given raw properties into the struct pointed to
// by target, building the schema first if needed. A schema build error
// is returned on every call.
func (d *Definition) Resolve(props map[string]string, target any, opts ...Option) error {
	schema, err := d.schema()
	if err != nil {
		return err
	}

	return schema.Resolve(props, target, opts...)
}
