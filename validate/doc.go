// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package validate provides the built-in validators for konfdef keys.

All validators implement [konfdef.Validator], are immutable after
construction, and may back any number of keys concurrently:

  - [Range] checks numeric values against inclusive bounds
    ([AtLeast], [AtMost], [Between]).
  - [ValidString] checks a value against a fixed allow-list ([OneOf]).
  - [ValidList] checks a comma-separated list for emptiness, duplicates,
    and allowed items ([AnyList], [ListOf], [ListOfAllowEmpty]).
*/
package validate
