// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package konfdef

import "fmt"

// MissingNameError reports a required key that has no supplied value and
// no default, or a lookup where the schema disagrees with the target type.
type MissingNameError struct {
	Name string
}

func (e *MissingNameError) Error() string {
	return fmt.Sprintf("Missing required configuration name: '%s'", e.Name)
}

// InvalidValueError reports a raw string that could not be parsed into
// its declared type. Message carries the underlying parse failure.
type InvalidValueError struct {
	Name    string
	Message string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("Failed to parse name '%s': %s", e.Name, e.Message)
}

// ValidationFailedError reports a syntactically valid value that violated
// a validator's constraint. Message carries the constraint description.
type ValidationFailedError struct {
	Name    string
	Message string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("Validation failed for name '%s': %s", e.Name, e.Message)
}
