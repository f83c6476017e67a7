//
// Tencent is pleased to support the open source community by making trpc-jsonrepair available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-jsonrepair is licensed under the Apache License Version 2.0.
//
//

package batch

import (
	"trpc.group/trpc-go/trpc-jsonrepair/jsonrepair"
)

// DefaultParallelism is the worker count used when none is configured.
const DefaultParallelism = 1

type options struct {
	parallelism int
	repairOpts  []jsonrepair.Option
}

// Option configures the batch service.
type Option func(*options)

// WithParallelism sets the number of concurrent repair workers. Values above
// one enable the worker pool.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithMaxPasses sets the per-document repair pass bound.
func WithMaxPasses(n int) Option {
	return func(o *options) {
		o.repairOpts = append(o.repairOpts, jsonrepair.WithMaxPasses(n))
	}
}

func newOptions(opt ...Option) *options {
	opts := &options{parallelism: DefaultParallelism}
	for _, o := range opt {
		o(opts)
	}
	return opts
}
