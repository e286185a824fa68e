// Copyright (c) 2026 The konfdef authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package konfdef

// WithTagName provides the struct tag name used to match schema keys
// to struct fields while resolving into a struct.
//
// The default tag name is `konf`.
func WithTagName(tagName string) Option {
	return func(option *options) {
		option.tagName = tagName
	}
}

// Option configures how a Schema resolves into a struct.
type Option func(*options)

type options struct {
	tagName string
}

func apply(opts []Option) options {
	option := options{
		tagName: "konf",
	}
	for _, opt := range opts {
		opt(&option)
	}

	return option
}
