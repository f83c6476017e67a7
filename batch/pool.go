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
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

type repairTaskParam struct {
	idx   int
	ctx   context.Context
	input string
	svc   *Service
	items []*Item
	wg    *sync.WaitGroup
}

func (p *repairTaskParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.input = ""
	p.svc = nil
	p.items = nil
	p.wg = nil
}

var repairTaskParamPool = &sync.Pool{
	New: func() any { return new(repairTaskParam) },
}

func createRepairPool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*repairTaskParam)
		if !ok {
			panic("repair pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			repairTaskParamPool.Put(param)
		}()
		param.items[param.idx] = param.svc.repairOne(param.ctx, param.idx, param.input)
	})
	if err != nil {
		return nil, fmt.Errorf("create repair pool: %w", err)
	}
	return pool, nil
}
