// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package konfdef

import (
	"fmt"
	"strconv"
	"strings"
)

// codec converts between the raw string form of a configuration value
// and its native type. parse must trim surrounding whitespace and,
// for numeric and boolean types, fold case before parsing. format is
// the canonical inverse of parse: any value produced by parse must
// re-parse to an equal value.
type codec[T any] struct {
	parse  func(name, raw string) (T, error)
	format func(value T) string
}

// fold normalizes raw input for numeric and boolean parsing,
// so "TRUE" and "FalSE" are valid booleans.
func fold(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func signedCodec[T signed](bits int) codec[T] {
	return codec[T]{
		parse: func(name, raw string) (T, error) {
			n, err := strconv.ParseInt(fold(raw), 10, bits)
			if err != nil {
				return 0, &InvalidValueError{Name: name, Message: err.Error()}
			}

			return T(n), nil
		},
		format: func(value T) string {
			return strconv.FormatInt(int64(value), 10)
		},
	}
}

func unsignedCodec[T unsigned](bits int) codec[T] {
	return codec[T]{
		parse: func(name, raw string) (T, error) {
			n, err := strconv.ParseUint(fold(raw), 10, bits)
			if err != nil {
				return 0, &InvalidValueError{Name: name, Message: err.Error()}
			}

			return T(n), nil
		},
		format: func(value T) string {
			return strconv.FormatUint(uint64(value), 10)
		},
	}
}

func floatCodec[T ~float32 | ~float64](bits int) codec[T] {
	return codec[T]{
		parse: func(name, raw string) (T, error) {
			n, err := strconv.ParseFloat(fold(raw), bits)
			if err != nil {
				return 0, &InvalidValueError{Name: name, Message: err.Error()}
			}

			return T(n), nil
		},
		format: func(value T) string {
			return strconv.FormatFloat(float64(value), 'g', -1, bits)
		},
	}
}

func boolCodec() codec[bool] {
	return codec[bool]{
		parse: func(name, raw string) (bool, error) {
			switch fold(raw) {
			case "true":
				return true, nil
			case "false":
				return false, nil
			default:
				return false, &InvalidValueError{
					Name:    name,
					Message: fmt.Sprintf("provided string %q was not \"true\" or \"false\"", strings.TrimSpace(raw)),
				}
			}
		},
		format: strconv.FormatBool,
	}
}

func stringCodec() codec[string] {
	return codec[string]{
		parse: func(_, raw string) (string, error) {
			return strings.TrimSpace(raw), nil
		},
		format: func(value string) string {
			return value
		},
	}
}

func listCodec() codec[[]string] {
	return codec[[]string]{
		parse: func(_, raw string) ([]string, error) {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" {
				// Empty input is the empty list, not a single empty item.
				return nil, nil
			}

			items := strings.Split(trimmed, ",")
			for i, item := range items {
				items[i] = strings.TrimSpace(item)
			}

			return items, nil
		},
		format: func(value []string) string {
			return strings.Join(value, ",")
		},
	}
}

func passwordCodec() codec[Password] {
	return codec[Password]{
		parse: func(_, raw string) (Password, error) {
			return NewPassword(strings.TrimSpace(raw)), nil
		},
		// The real value, not the placeholder, so defaults stay validatable.
		format: Password.Value,
	}
}
