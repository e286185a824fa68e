// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package konfdef_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nil-go/konfdef"
	"github.com/nil-go/konfdef/validate"
)

func BenchmarkNewSchema(b *testing.B) {
	var (
		schema *konfdef.Schema
		err    error
	)
	for i := 0; i < b.N; i++ {
		schema, err = konfdef.NewSchema(
			konfdef.Int("a").WithDefault(5).WithValidator(validate.Between(0, 14)),
			konfdef.String("b").WithDefault("hello"),
			konfdef.StringList("c"),
		)
	}
	b.StopTimer()

	require.NoError(b, err)
	assert.Equal(b, 3, schema.Len())
}

func BenchmarkResolve(b *testing.B) {
	schema, err := konfdef.NewSchema(
		konfdef.Int("a").WithDefault(5).WithValidator(validate.Between(0, 14)),
	)
	require.NoError(b, err)
	props := map[string]string{"a": "1"}
	b.ResetTimer()

	var value int
	for i := 0; i < b.N; i++ {
		value, err = konfdef.Resolve[int](schema, props, "a")
	}
	b.StopTimer()

	require.NoError(b, err)
	assert.Equal(b, 1, value)
}

func BenchmarkSchema_Resolve(b *testing.B) {
	schema, err := konfdef.NewSchema(
		konfdef.Int("a").WithDefault(5).WithValidator(validate.Between(0, 14)),
		konfdef.String("b").WithDefault("hello"),
		konfdef.Bool("c").WithDefault(true),
	)
	require.NoError(b, err)
	props := map[string]string{"a": "1", "c": "FALSE"}

	var cfg struct {
		A int    `konf:"a"`
		B string `konf:"b"`
		C bool   `konf:"c"`
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		err = schema.Resolve(props, &cfg)
	}
	b.StopTimer()

	require.NoError(b, err)
	assert.Equal(b, 1, cfg.A)
	assert.Equal(b, "hello", cfg.B)
	assert.False(b, cfg.C)
}
