/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package executor

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/gocsis/gocsis/core"
)

// Config selects which pprof profiles to collect; empty paths disable each.
type Config struct {
	CpuProfile   string
	MemProfile   string
	BlockProfile string
}

type Profiler struct {
	config  *Config
	cpuFile *os.File
	memFile *os.File
	block   *pprof.Profile
}

func NewProfiler(config *Config) *Profiler {
	return &Profiler{config: config}
}

func (p *Profiler) Start() (err error) {
	if p.config.CpuProfile != "" {
		p.cpuFile, err = os.Create(p.config.CpuProfile)
		if err != nil {
			core.LogFatal("Main", "Unable to open output file for CPU profile: ", err)
		}

		core.LogInfo("Main", "Profiling CPU - outputting to ", p.config.CpuProfile)
		pprof.StartCPUProfile(p.cpuFile)
	}

	if p.config.MemProfile != "" {
		p.memFile, err = os.Create(p.config.MemProfile)
		if err != nil {
			core.LogFatal("Main", "Unable to open output file for memory profile: ", err)
		}

		core.LogInfo("Main", "Profiling memory - outputting to ", p.config.MemProfile)
		runtime.GC()
		if err := pprof.WriteHeapProfile(p.memFile); err != nil {
			core.LogFatal("Main", "Unable to write memory profile: ", err)
		}
	}

	if p.config.BlockProfile != "" {
		core.LogInfo("Main", "Profiling blocking operations - outputting to ", p.config.BlockProfile)
		runtime.SetBlockProfileRate(1)
		p.block = pprof.Lookup("block")
	}

	return
}

func (p *Profiler) Stop() {
	if p.block != nil {
		blockProfileFile, err := os.Create(p.config.BlockProfile)
		if err != nil {
			core.LogFatal("Main", "Unable to open output file for block profile: ", err)
		}
		if err := p.block.WriteTo(blockProfileFile, 0); err != nil {
			core.LogFatal("Main", "Unable to write block profile: ", err)
		}
		blockProfileFile.Close()
	}

	if p.memFile != nil {
		p.memFile.Close()
	}

	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
	}
}
