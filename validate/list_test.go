// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nil-go/konfdef"
	"github.com/nil-go/konfdef/validate"
)

func TestValidList_Validate(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		validator   konfdef.Validator
		value       string
		message     string
	}{
		{
			description: "members of allow list",
			validator:   validate.ListOf("a", "b", "c"),
			value:       "a,b",
		},
		{
			description: "items are trimmed",
			validator:   validate.ListOf("a", "b", "c"),
			value:       " a , b ",
		},
		{
			description: "empty list allowed",
			validator:   validate.ListOf("a", "b", "c"),
			value:       "",
		},
		{
			description: "separator only is the empty list",
			validator:   validate.ListOf("a", "b", "c"),
			value:       ",",
		},
		{
			description: "value outside allow list",
			validator:   validate.ListOf("a", "b", "c"),
			value:       "d",
			message:     "Invalid value 'd' for configuration 'k': String must be one of: a, b, c",
		},
		{
			description: "duplicates beat membership errors",
			validator:   validate.ListOf("a", "b", "c"),
			value:       "a,a",
			message:     "Configuration 'k' values must not be duplicated.",
		},
		{
			description: "duplicates with invalid value present",
			validator:   validate.ListOf("a", "b", "c"),
			value:       "a,d,a",
			message:     "Configuration 'k' values must not be duplicated.",
		},
		{
			description: "empty item",
			validator:   validate.ListOf("a", "b", "c"),
			value:       "a,,b",
			message:     "Configuration 'k' values must not be empty.",
		},
		{
			description: "empty list disallowed with allow list",
			validator:   validate.ListOfAllowEmpty(false, "a", "b"),
			value:       "",
			message:     "Configuration 'k' must not be empty. Valid values include: [a, b]",
		},
		{
			description: "empty list disallowed without allow list",
			validator:   validate.AnyList(false),
			value:       "",
			message:     "Configuration 'k' must not be empty. Valid values include: any non-empty value",
		},
		{
			description: "any values accepted without allow list",
			validator:   validate.AnyList(false),
			value:       "x,y,z",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			err := testcase.validator.Validate("k", testcase.value)
			if testcase.message == "" {
				assert.NoError(t, err)

				return
			}

			var validationFailed *konfdef.ValidationFailedError
			require.ErrorAs(t, err, &validationFailed)
			assert.Equal(t, "k", validationFailed.Name)
			assert.Equal(t, testcase.message, validationFailed.Message)
		})
	}
}

func TestListOfAllowEmpty_panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		validate.ListOfAllowEmpty(false)
	})
}

func TestValidList_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[a, b] (empty list allowed)", validate.ListOf("a", "b").String())
	assert.Equal(t, "[a, b] (empty list not allowed)", validate.ListOfAllowEmpty(false, "a", "b").String())
	assert.Equal(t, "any value (empty list allowed)", validate.AnyList(true).String())
}
