/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package pipeline runs the codec over batches of independent configuration
// images in parallel. Every codec operation is pure and synchronous, so
// workers need no coordination beyond the job channel; record order within
// each image is preserved end-to-end.
package pipeline

import (
	"runtime"
	"strconv"
	"sync"

	"github.com/Link512/stealthpool"
	"github.com/cespare/xxhash"
	"github.com/cornelk/hashmap"

	"github.com/gocsis/gocsis/core"
	"github.com/gocsis/gocsis/docsis/mic"
	"github.com/gocsis/gocsis/docsis/tlv"
	"github.com/gocsis/gocsis/utils/comparison"
)

const maxWorkers = 64

// Pool geometry for re-encode scratch buffers. Images larger than one block
// fall back to the regular allocator.
const (
	poolBlockSize = 65536
	poolBlockCnt  = 128
)

// Job is one named configuration image to process.
type Job struct {
	Name  string
	Image []byte
}

// Result is the outcome of processing one job. Encoded may reference a pooled
// buffer and is only valid for the duration of the Sink call.
type Result struct {
	Name     string
	Records  tlv.Sequence
	SubTLVs  map[int]tlv.Sequence
	Warnings []tlv.Warning
	Encoded  []byte
	// DuplicateOf names the earlier job with a byte-identical image, if any.
	DuplicateOf string
	Err         error
	MICErr      error
}

// Options configures a Processor.
type Options struct {
	// Workers is the number of worker goroutines; 0 means one per CPU.
	Workers int
	// Secret enables CM and CMTS MIC validation when non-nil. It is held for
	// the duration of the run and never logged.
	Secret []byte
	// Policy enables sub-TLV resolution when non-nil.
	Policy tlv.SubTLVPolicy
	// Preflight rejects obviously-foreign input before decoding.
	Preflight bool
	// Sink receives every result, called from worker goroutines.
	Sink func(Result)
}

// Processor fans a batch of jobs out over a worker pool.
type Processor struct {
	opts Options
	pool *stealthpool.Pool
	seen *hashmap.HashMap
}

// NewProcessor creates a processor. The options are fixed for its lifetime.
func NewProcessor(opts Options) *Processor {
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}
	opts.Workers = comparison.Clamp(opts.Workers, 1, maxWorkers)
	return &Processor{
		opts: opts,
		seen: &hashmap.HashMap{},
	}
}

func (p *Processor) String() string {
	return "Processor"
}

// Run processes the batch and returns once every result has been delivered
// to the sink. Jobs with byte-identical images are decoded once; later
// copies yield a DuplicateOf result.
func (p *Processor) Run(jobs []Job) {
	pool, err := stealthpool.New(poolBlockCnt, stealthpool.WithBlockSize(poolBlockSize))
	if err != nil {
		core.LogWarn(p, "Unable to allocate buffer pool, falling back to the regular allocator: ", err)
	} else {
		p.pool = pool
		defer func() {
			p.pool.Close()
			p.pool = nil
		}()
	}

	queue := make(chan Job)
	var wg sync.WaitGroup
	for i := 0; i < p.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				p.process(job)
			}
		}()
	}

	core.LogDebug(p, "Processing ", len(jobs), " job(s) on ", p.opts.Workers, " worker(s)")
	for _, job := range jobs {
		queue <- job
	}
	close(queue)
	wg.Wait()
}

func (p *Processor) process(job Job) {
	result := Result{Name: job.Name}

	imageKey := strconv.FormatUint(xxhash.Sum64(job.Image), 16)
	if prior, loaded := p.seen.GetOrInsert(imageKey, job.Name); loaded {
		result.DuplicateOf = prior.(string)
		AddToCounter("jobs_duplicate", 1)
		p.emit(result, nil)
		return
	}

	if p.opts.Preflight {
		if err := tlv.LooksLikeConfig(job.Image); err != nil {
			result.Err = err
			AddToCounter("jobs_rejected", 1)
			p.emit(result, nil)
			return
		}
	}

	seq, warnings, err := tlv.Decode(job.Image)
	if err != nil {
		result.Err = err
		AddToCounter("jobs_failed", 1)
		p.emit(result, nil)
		return
	}
	result.Records = seq
	result.Warnings = warnings

	if p.opts.Policy != nil {
		for i, rec := range seq {
			if subs, ok := tlv.ResolveSubTLVs(rec, p.opts.Policy); ok {
				if result.SubTLVs == nil {
					result.SubTLVs = make(map[int]tlv.Sequence)
				}
				result.SubTLVs[i] = subs
				AddToCounter("compounds_resolved", 1)
			}
		}
	}

	if p.opts.Secret != nil {
		micWarnings, err := mic.ValidateCMMIC(seq, p.opts.Secret)
		result.Warnings = append(result.Warnings, micWarnings...)
		if err == nil {
			micWarnings, err = mic.ValidateCMTSMIC(seq, p.opts.Secret)
			result.Warnings = append(result.Warnings, micWarnings...)
		}
		if err != nil {
			result.MICErr = err
			AddToCounter("mic_failures", 1)
		}
	}

	encoded, err := tlv.Encode(seq)
	if err != nil {
		result.Err = err
		AddToCounter("jobs_failed", 1)
		p.emit(result, nil)
		return
	}

	// Hand the encoded image to the sink in a pooled block when one fits, so
	// high-volume runs stay off the garbage collector.
	block := p.takeBlock(len(encoded))
	if block != nil {
		result.Encoded = append(block[:0], encoded...)
	} else {
		result.Encoded = encoded
	}

	AddToCounter("jobs_processed", 1)
	p.emit(result, block)
}

func (p *Processor) emit(result Result, block []byte) {
	if p.opts.Sink != nil {
		p.opts.Sink(result)
	}
	if block != nil {
		if err := p.pool.Return(block); err != nil {
			core.LogWarn(p, "Unable to return pooled block: ", err)
		}
	}
}

func (p *Processor) takeBlock(need int) []byte {
	if p.pool == nil || need > poolBlockSize {
		return nil
	}
	block, err := p.pool.Get()
	if err != nil {
		return nil
	}
	return block
}
