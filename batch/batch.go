//
// Tencent is pleased to support the open source community by making trpc-jsonrepair available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-jsonrepair is licensed under the Apache License Version 2.0.
//
//

// Package batch repairs collections of JSON documents, optionally in
// parallel on a bounded worker pool. Results keep the input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"trpc.group/trpc-go/trpc-jsonrepair/jsonrepair"
	"trpc.group/trpc-go/trpc-jsonrepair/log"
)

// Item is the repair outcome of one document in a batch.
type Item struct {
	ID     string             // ID is a generated identifier for the task.
	Index  int                // Index is the document's position in the input slice.
	Result *jsonrepair.Result // Result is the repair outcome.
}

// Summary aggregates the outcomes of one batch.
type Summary struct {
	Total       int     `json:"total"`
	Succeeded   int     `json:"succeeded"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
}

// Report holds the per-document items of one batch, in input order, with the
// aggregate summary.
type Report struct {
	Items   []*Item
	Summary Summary
}

// Service repairs batches of documents.
type Service struct {
	parallelism int
	repairOpts  []jsonrepair.Option
	pool        *ants.PoolWithFunc
}

// New returns a new batch repair service.
// If no Option is provided, the service repairs serially.
func New(opt ...Option) (*Service, error) {
	opts := newOptions(opt...)
	if opts.parallelism <= 0 {
		return nil, errors.New("parallelism must be greater than 0")
	}
	svc := &Service{
		parallelism: opts.parallelism,
		repairOpts:  opts.repairOpts,
	}
	if svc.parallelism > 1 {
		pool, err := createRepairPool(svc.parallelism)
		if err != nil {
			return nil, fmt.Errorf("create repair pool: %w", err)
		}
		svc.pool = pool
	}
	return svc, nil
}

// Close closes the service and releases the worker pool.
func (s *Service) Close() error {
	if s.pool != nil {
		s.pool.Release()
	}
	return nil
}

// Repair repairs a single document.
func (s *Service) Repair(ctx context.Context, input string) *Item {
	return s.repairOne(ctx, 0, input)
}

// RepairAll repairs every document in inputs and returns a report whose items
// are in input order.
func (s *Service) RepairAll(ctx context.Context, inputs []string) (*Report, error) {
	var items []*Item
	if s.pool != nil {
		items = s.repairParallel(ctx, inputs)
	} else {
		items = s.repairSerial(ctx, inputs)
	}
	return &Report{Items: items, Summary: summarize(items)}, nil
}

func (s *Service) repairSerial(ctx context.Context, inputs []string) []*Item {
	items := make([]*Item, 0, len(inputs))
	for idx, input := range inputs {
		items = append(items, s.repairOne(ctx, idx, input))
	}
	return items
}

func (s *Service) repairParallel(ctx context.Context, inputs []string) []*Item {
	items := make([]*Item, len(inputs))
	var wg sync.WaitGroup
	for idx, input := range inputs {
		wg.Add(1)
		param := repairTaskParamPool.Get().(*repairTaskParam)
		param.idx = idx
		param.ctx = ctx
		param.input = input
		param.svc = s
		param.items = items
		param.wg = &wg
		if err := s.pool.Invoke(param); err != nil {
			wg.Done()
			items[idx] = failedItem(idx, input, fmt.Errorf("submit repair task %d: %w", idx, err))
			param.reset()
			repairTaskParamPool.Put(param)
		}
	}
	wg.Wait()
	return items
}

// repairOne repairs one document and logs its outcome.
func (s *Service) repairOne(ctx context.Context, idx int, input string) *Item {
	if err := ctx.Err(); err != nil {
		return failedItem(idx, input, err)
	}
	item := &Item{ID: uuid.NewString(), Index: idx, Result: jsonrepair.Repair(input, s.repairOpts...)}
	if item.Result.Success {
		log.Debugf("repair task %s (index %d) succeeded with %d diagnostic(s)",
			item.ID, item.Index, len(item.Result.Diagnostics))
	} else {
		log.Warnf("repair task %s (index %d) failed: %v", item.ID, item.Index, item.Result.Outcome.Err())
	}
	return item
}

// failedItem builds the item for a document that never reached the repair
// pipeline.
func failedItem(idx int, input string, err error) *Item {
	log.Warnf("repair task at index %d not run: %v", idx, err)
	return &Item{
		ID:    uuid.NewString(),
		Index: idx,
		Result: &jsonrepair.Result{
			Input:    input,
			Repaired: input,
			Outcome:  jsonrepair.Outcome{Message: err.Error(), Offset: -1},
		},
	}
}

func summarize(items []*Item) Summary {
	s := Summary{Total: len(items)}
	for _, item := range items {
		if item != nil && item.Result != nil && item.Result.Success {
			s.Succeeded++
		}
	}
	s.Failed = s.Total - s.Succeeded
	if s.Total > 0 {
		s.SuccessRate = float64(s.Succeeded) / float64(s.Total)
	}
	return s
}
