// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package konfdef

import (
	"reflect"
	"strconv"
)

// Importance ranks a configuration key for documentation purposes.
type Importance int

const (
	ImportanceUnspecified Importance = iota
	ImportanceHigh
	ImportanceMedium
	ImportanceLow
)

func (i Importance) String() string {
	switch i {
	case ImportanceHigh:
		return "high"
	case ImportanceMedium:
		return "medium"
	case ImportanceLow:
		return "low"
	default:
		return "unspecified"
	}
}

// KeyView is the uniform, read-only view of a configuration key.
//
// Keys are generic over their value type, so a schema holds many
// incompatible Key[T] instantiations behind this single interface.
// The unexported methods keep Key[T] the only implementation;
// the concrete default value is recovered with DefaultOf.
type KeyView interface {
	// Name returns the key name, unique within a schema.
	Name() string
	// Documentation returns the key documentation, if any.
	Documentation() string
	// Group returns the label grouping related keys, if any.
	Group() string
	// Importance returns the documentation importance of the key.
	Importance() Importance
	// IsInternal reports whether the key is excluded from public documentation.
	IsInternal() bool
	// Validator returns the attached validator, or nil.
	Validator() Validator
	// HasDefault reports whether the key declares a default value.
	HasDefault() bool
	// DefaultString returns the default in its canonical config-string
	// form. It reports false when the key has no default.
	DefaultString() (string, bool)
	// DefaultValue returns the type-erased default value.
	// It reports false when the key has no default.
	DefaultValue() (any, bool)
	// Clone returns a copy of the key preserving its concrete type.
	Clone() KeyView

	checkDefault() error
	resolve(props map[string]string) (any, error)
	resolveOptional(props map[string]string) (any, bool, error)
	valueType() reflect.Type
}

// Key describes a single configuration field of value type T:
// its name, optional documentation, optional default (held natively),
// optional validator, and documentation metadata.
//
// A Key is configured fluently at declaration and is copied into every
// schema built from it, so it must not be modified afterwards:
//
//	size := konfdef.Int("fetch.size").WithDefault(500).WithValidator(validate.AtLeast(1))
type Key[T any] struct {
	name          string
	documentation string
	group         string
	importance    Importance
	internal      bool
	validator     Validator

	// A default is either native (defaultValue) or an untyped literal
	// (defaultRaw) parsed by the codec at schema build.
	defaultValue *T
	defaultRaw   *string

	codec codec[T]
}

func newKey[T any](name string, codec codec[T]) *Key[T] {
	return &Key[T]{name: name, codec: codec}
}

// String declares a string key. Values are trimmed, never case-folded.
func String(name string) *Key[string] { return newKey(name, stringCodec()) }

// Bool declares a boolean key accepting "true" or "false" in any case.
func Bool(name string) *Key[bool] { return newKey(name, boolCodec()) }

// Int declares an int key.
func Int(name string) *Key[int] { return newKey(name, signedCodec[int](strconv.IntSize)) }

// Int8 declares an int8 key.
func Int8(name string) *Key[int8] { return newKey(name, signedCodec[int8](8)) }

// Int16 declares an int16 key.
func Int16(name string) *Key[int16] { return newKey(name, signedCodec[int16](16)) }

// Int32 declares an int32 key.
func Int32(name string) *Key[int32] { return newKey(name, signedCodec[int32](32)) }

// Int64 declares an int64 key.
func Int64(name string) *Key[int64] { return newKey(name, signedCodec[int64](64)) }

// Uint declares a uint key.
func Uint(name string) *Key[uint] { return newKey(name, unsignedCodec[uint](strconv.IntSize)) }

// Uint8 declares a uint8 key.
func Uint8(name string) *Key[uint8] { return newKey(name, unsignedCodec[uint8](8)) }

// Uint16 declares a uint16 key.
func Uint16(name string) *Key[uint16] { return newKey(name, unsignedCodec[uint16](16)) }

// Uint32 declares a uint32 key.
func Uint32(name string) *Key[uint32] { return newKey(name, unsignedCodec[uint32](32)) }

// Uint64 declares a uint64 key.
func Uint64(name string) *Key[uint64] { return newKey(name, unsignedCodec[uint64](64)) }

// Float32 declares a float32 key.
func Float32(name string) *Key[float32] { return newKey(name, floatCodec[float32](32)) }

// Float64 declares a float64 key.
func Float64(name string) *Key[float64] { return newKey(name, floatCodec[float64](64)) }

// StringList declares a comma-separated list-of-strings key.
// Each item is trimmed; empty input yields an empty list.
func StringList(name string) *Key[[]string] { return newKey(name, listCodec()) }

// Secret declares a Password key whose value is redacted
// in all human-facing output.
func Secret(name string) *Key[Password] { return newKey(name, passwordCodec()) }

// WithDefault sets a native-typed default value.
func (k *Key[T]) WithDefault(value T) *Key[T] {
	k.defaultValue = &value
	k.defaultRaw = nil

	return k
}

// WithDefaultString sets a default as an untyped string literal.
// The literal is parsed by the key's codec when a schema is built;
// an unparsable literal fails the schema build, not the first use.
func (k *Key[T]) WithDefaultString(raw string) *Key[T] {
	k.defaultRaw = &raw
	k.defaultValue = nil

	return k
}

// WithValidator attaches the validator run against every raw value,
// defaults included.
func (k *Key[T]) WithValidator(validator Validator) *Key[T] {
	k.validator = validator

	return k
}

// WithDoc sets the key documentation.
func (k *Key[T]) WithDoc(documentation string) *Key[T] {
	k.documentation = documentation

	return k
}

// WithGroup sets the label grouping related keys in documentation.
func (k *Key[T]) WithGroup(group string) *Key[T] {
	k.group = group

	return k
}

// WithImportance sets the documentation importance.
func (k *Key[T]) WithImportance(importance Importance) *Key[T] {
	k.importance = importance

	return k
}

// Internal marks the key as excluded from public documentation.
func (k *Key[T]) Internal() *Key[T] {
	k.internal = true

	return k
}

func (k *Key[T]) Name() string           { return k.name }
func (k *Key[T]) Documentation() string  { return k.documentation }
func (k *Key[T]) Group() string          { return k.group }
func (k *Key[T]) Importance() Importance { return k.importance }
func (k *Key[T]) IsInternal() bool       { return k.internal }
func (k *Key[T]) Validator() Validator   { return k.validator }

func (k *Key[T]) HasDefault() bool {
	return k.defaultValue != nil || k.defaultRaw != nil
}

func (k *Key[T]) DefaultString() (string, bool) {
	switch {
	case k.defaultValue != nil:
		return k.codec.format(*k.defaultValue), true
	case k.defaultRaw != nil:
		return *k.defaultRaw, true
	default:
		return "", false
	}
}

func (k *Key[T]) DefaultValue() (any, bool) {
	if k.defaultValue == nil {
		return nil, false
	}

	return *k.defaultValue, true
}

func (k *Key[T]) Clone() KeyView {
	clone := *k
	if k.defaultValue != nil {
		value := *k.defaultValue
		clone.defaultValue = &value
	}
	if k.defaultRaw != nil {
		raw := *k.defaultRaw
		clone.defaultRaw = &raw
	}
	// The validator is shared: validators are immutable by contract.

	return &clone
}

// checkDefault eagerly validates the declared default so a broken
// default fails the schema build instead of the first resolution.
// It runs the validator against the default's config string and
// materializes untyped default literals through the codec.
func (k *Key[T]) checkDefault() error {
	raw, ok := k.DefaultString()
	if !ok {
		return nil
	}

	if k.validator != nil {
		if err := k.validator.Validate(k.name, raw); err != nil {
			return err
		}
	}

	if k.defaultValue == nil {
		value, err := k.codec.parse(k.name, raw)
		if err != nil {
			return err
		}
		k.defaultValue = &value
	}

	return nil
}

// resolveValue implements the per-field resolution algorithm:
// supplied value, else default, else missing; then validator; then parse.
func (k *Key[T]) resolveValue(props map[string]string) (T, error) {
	var zero T

	raw, ok := props[k.name]
	if !ok {
		if raw, ok = k.DefaultString(); !ok {
			return zero, &MissingNameError{Name: k.name}
		}
	}

	if k.validator != nil {
		if err := k.validator.Validate(k.name, raw); err != nil {
			return zero, err
		}
	}

	return k.codec.parse(k.name, raw)
}

// resolveAbsent resolves with optional semantics: when neither props
// nor the key supply a value, the field is absent rather than missing.
func (k *Key[T]) resolveAbsent(props map[string]string) (*T, error) {
	if _, ok := props[k.name]; !ok && !k.HasDefault() {
		return nil, nil
	}

	value, err := k.resolveValue(props)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func (k *Key[T]) resolve(props map[string]string) (any, error) {
	value, err := k.resolveValue(props)
	if err != nil {
		return nil, err
	}

	return value, nil
}

func (k *Key[T]) resolveOptional(props map[string]string) (any, bool, error) {
	value, err := k.resolveAbsent(props)
	if err != nil {
		return nil, false, err
	}
	if value == nil {
		return nil, false, nil
	}

	return *value, true, nil
}

func (k *Key[T]) valueType() reflect.Type {
	return reflect.TypeFor[T]()
}

// DefaultOf recovers the concrete default value of a type-erased key.
// It reports false when the key is not a Key[T] or has no default;
// it never panics on a type mismatch.
func DefaultOf[T any](view KeyView) (T, bool) {
	var zero T

	key, ok := view.(*Key[T])
	if !ok || key.defaultValue == nil {
		return zero, false
	}

	return *key.defaultValue, true
}
