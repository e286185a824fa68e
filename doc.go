// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package konfdef turns untyped string key/value properties into
strongly-typed configuration values, with centralized rules for
defaults, validation, and documentation metadata.

Each configuration field is described by a [Key], which carries the
field's name, native-typed default, validator, and documentation
metadata. The keys of one configuration type are collected into a
[Schema], an ordered, duplicate-checked registry that eagerly validates
every declared default at build time, so a broken default fails before
any resolution ever happens.

Resolution runs per key: the supplied raw string, or the default's
config string if none is supplied, is checked by the key's validator
and parsed into the native type. [Resolve] and [ResolveOptional]
resolve a single key; [Schema.Resolve] resolves a whole schema into a
struct, matching fields by the `konf` tag or field name. [Merge]
composes the schemas of sibling configuration groups into one.

Loading raw properties from files, environment variables or flags is
deliberately out of scope; any source that produces a
map[string]string can feed the resolution engine.
*/
package konfdef
