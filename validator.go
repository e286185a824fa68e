// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package konfdef

import "fmt"

// Validator is the interface that wraps the basic Validate method.
//
// Validate checks the raw string value of the configuration key name
// against a semantic constraint. It returns nil if the value is allowed,
// a *ValidationFailedError if the value violates the constraint,
// or a *InvalidValueError if the value cannot be interpreted at all.
//
// A Validator also renders a stable textual description of its constraint
// via fmt.Stringer, which is used in error messages and documentation.
//
// Validators must be immutable after construction so a single instance
// can back any number of keys and be used from any number of goroutines.
// Implementations are provided by the validate package.
type Validator interface {
	fmt.Stringer

	Validate(name, value string) error
}
