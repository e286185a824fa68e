// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package validate

import (
	"strconv"
	"strings"

	"github.com/nil-go/konfdef"
)

// Range validates that a numeric value falls within inclusive bounds.
// Bounds are held as float64 regardless of the key's numeric type;
// either side may be open.
type Range struct {
	min *float64
	max *float64
}

// AtLeast returns a Range with only a lower bound.
func AtLeast(min float64) *Range {
	return &Range{min: &min}
}

// AtMost returns a Range with only an upper bound.
func AtMost(max float64) *Range {
	return &Range{max: &max}
}

// Between returns a Range with inclusive lower and upper bounds.
func Between(min, max float64) *Range {
	return &Range{min: &min, max: &max}
}

func (r *Range) Validate(name, value string) error {
	number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return &konfdef.InvalidValueError{Name: name, Message: "Value is not a valid number"}
	}

	if r.min != nil && number < *r.min {
		return &konfdef.ValidationFailedError{
			Name:    name,
			Message: "Value " + formatBound(number) + " must be at least " + formatBound(*r.min),
		}
	}
	if r.max != nil && number > *r.max {
		return &konfdef.ValidationFailedError{
			Name:    name,
			Message: "Value " + formatBound(number) + " must be no more than " + formatBound(*r.max),
		}
	}

	return nil
}

func (r *Range) String() string {
	switch {
	case r.min == nil && r.max == nil:
		return "[...]"
	case r.min == nil:
		return "[..., " + formatBound(*r.max) + "]"
	case r.max == nil:
		return "[" + formatBound(*r.min) + ", ...]"
	default:
		return "[" + formatBound(*r.min) + ", ..., " + formatBound(*r.max) + "]"
	}
}

func formatBound(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
