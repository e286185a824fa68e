// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package konfdef

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Resolve resolves the value of the named required key from the given
// raw properties: the supplied string, or the key's default, is run
// through the key's validator and parsed into T.
//
// A name the schema does not define, or a key whose value type is not
// T, means the schema disagrees with the caller and is reported as a
// *MissingNameError, the same as a required key with no value.
func Resolve[T any](schema *Schema, props map[string]string, name string) (T, error) {
	key, err := findKey[T](schema, name)
	if err != nil {
		var zero T

		return zero, err
	}

	return key.resolveValue(props)
}

// ResolveOptional is Resolve with optional semantics: when neither the
// properties nor the key's default supply a value, it returns nil
// instead of failing.
func ResolveOptional[T any](schema *Schema, props map[string]string, name string) (*T, error) {
	key, err := findKey[T](schema, name)
	if err != nil {
		return nil, err
	}

	return key.resolveAbsent(props)
}

// Value resolves the named key and returns the zero value if there is
// an error, logging it via slog instead of returning it.
func Value[T any](schema *Schema, props map[string]string, name string) T { //nolint:ireturn
	value, err := Resolve[T](schema, props, name)
	if err != nil {
		slog.Error(
			"Could not resolve config, return zero value instead.",
			"error", err,
			"name", name,
			"type", reflect.TypeFor[T](),
		)

		var zero T

		return zero
	}

	return value
}

func findKey[T any](schema *Schema, name string) (*Key[T], error) {
	key, ok := schema.Find(name).(*Key[T])
	if !ok {
		return nil, &MissingNameError{Name: name}
	}

	return key, nil
}

// Resolve resolves every key of the schema against the given raw
// properties and decodes the result into the struct pointed to by
// target. Fields are matched by the `konf` tag (see [WithTagName]) or,
// absent a tag, by case-insensitive field name. A pointer field gets
// optional semantics; a non-pointer field is required. Embedded struct
// fields are flattened, so a merged schema resolves into a struct
// embedding one sub-struct per sub-schema.
//
// Keys are resolved independently, in declaration order; the first key
// that fails aborts resolution with that single error and target is
// left untouched. A key without a matching field, or whose value type
// disagrees with the field type, fails with a *MissingNameError.
func (s *Schema) Resolve(props map[string]string, target any, opts ...Option) error {
	option := apply(opts)

	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Pointer || targetValue.IsNil() ||
		targetValue.Elem().Kind() != reflect.Struct {
		return errNotStructPointer
	}

	fields := make(map[string]reflect.Type)
	collectFields(targetValue.Elem().Type(), option.tagName, fields)

	values := make(map[string]any, s.Len())
	for _, key := range s.order {
		fieldType, ok := fields[strings.ToLower(key.Name())]
		if !ok {
			return &MissingNameError{Name: key.Name()}
		}

		optional := fieldType.Kind() == reflect.Pointer
		if optional {
			fieldType = fieldType.Elem()
		}
		if fieldType != key.valueType() {
			return &MissingNameError{Name: key.Name()}
		}

		if optional {
			value, ok, err := key.resolveOptional(props)
			if err != nil {
				return err
			}
			if ok {
				values[key.Name()] = value
			}

			continue
		}

		value, err := key.resolve(props)
		if err != nil {
			return err
		}
		values[key.Name()] = value
	}

	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:  target,
			TagName: option.tagName,
			Squash:  true,
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

// collectFields indexes the struct's fields by lower-cased config name,
// descending into embedded structs so merged sub-schemas flatten.
func collectFields(structType reflect.Type, tagName string, fields map[string]reflect.Type) {
	for i := range structType.NumField() {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		if field.Anonymous {
			embedded := field.Type
			if embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				collectFields(embedded, tagName, fields)

				continue
			}
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup(tagName); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}

		if _, ok := fields[strings.ToLower(name)]; !ok {
			fields[strings.ToLower(name)] = field.Type
		}
	}
}

var errNotStructPointer = errors.New("cannot resolve into target that is not a pointer to struct")
