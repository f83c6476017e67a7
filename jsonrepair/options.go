//
// Tencent is pleased to support the open source community by making trpc-jsonrepair available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-jsonrepair is licensed under the Apache License Version 2.0.
//
//

package jsonrepair

// DefaultMaxPasses is the default bound on repair iterations.
const DefaultMaxPasses = 6

type options struct {
	maxPasses int
}

// Option configures a repair call.
type Option func(*options)

// WithMaxPasses sets the maximum number of repair passes. Values below one
// are ignored.
func WithMaxPasses(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPasses = n
		}
	}
}

func newOptions(opt ...Option) *options {
	opts := &options{maxPasses: DefaultMaxPasses}
	for _, o := range opt {
		o(opts)
	}
	return opts
}
