/* gocsis - DOCSIS Cable Modem Configuration Codec
 *
 * Copyright (C) 2026 gocsis authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gocsis/gocsis/core"
	"github.com/gocsis/gocsis/docsis/registry"
	"github.com/gocsis/gocsis/executor"
	"github.com/gocsis/gocsis/pipeline"
	"github.com/gocsis/gocsis/tools"
)

// Version of gocsis.
var Version string

// BuildTime contains the timestamp of when this version of gocsis was built.
var BuildTime string

func main() {
	core.Version = Version
	core.BuildTime = BuildTime
	core.StartTimestamp = time.Now()

	// Parse command line options
	var shouldPrintVersion bool
	flag.BoolVar(&shouldPrintVersion, "version", false, "Print version and exit")
	flag.BoolVar(&shouldPrintVersion, "V", false, "Print version and exit (short)")
	var configFile string
	flag.StringVar(&configFile, "config", "", "Configuration file (TOML)")
	var registryFile string
	flag.StringVar(&registryFile, "registry", "", "Registry override file (TOML)")
	var secretString string
	flag.StringVar(&secretString, "secret", "", "Shared secret for MIC validation")
	var numWorkers int
	flag.IntVar(&numWorkers, "workers", 0, "Number of processing workers (0 = one per CPU)")
	var preflight bool
	flag.BoolVar(&preflight, "preflight", false, "Reject obviously-foreign input before decoding")
	var checkAddr string
	flag.StringVar(&checkAddr, "check-addr", "", "Run the WebSocket check server on this address instead of processing files")
	var pcapFile string
	flag.StringVar(&pcapFile, "pcap", "", "Extract configuration images from TFTP transfers in this pcap capture")
	var profilerConfig executor.Config
	flag.StringVar(&profilerConfig.CpuProfile, "cpu-profile", "", "Write a CPU profile to this file")
	flag.StringVar(&profilerConfig.MemProfile, "mem-profile", "", "Write a memory profile to this file")
	flag.StringVar(&profilerConfig.BlockProfile, "block-profile", "", "Write a block profile to this file")
	flag.Parse()

	if shouldPrintVersion {
		fmt.Println("gocsis: DOCSIS Cable Modem Configuration Codec")
		fmt.Println("Version " + core.Version + " (Built " + core.BuildTime + ")")
		fmt.Println("Released under the terms of the MIT License")
		return
	}

	if configFile != "" {
		core.LoadConfig(configFile)
	}
	core.InitializeLogger()

	profiler := executor.NewProfiler(&profilerConfig)
	if err := profiler.Start(); err != nil {
		os.Exit(2)
	}
	defer profiler.Stop()

	reg := registry.New()
	if registryFile != "" {
		if err := reg.LoadOverrides(registryFile); err != nil {
			core.LogFatal("Main", "Unable to load registry overrides: ", err)
		}
	}

	var secret []byte
	if secretString != "" {
		secret = []byte(secretString)
	}

	if checkAddr != "" {
		server := tools.NewCheckServer(checkAddr, secret)
		if err := server.Run(); err != nil {
			core.LogFatal("Main", "Check server failed: ", err)
		}
		return
	}

	var jobs []pipeline.Job
	for _, path := range flag.Args() {
		image, err := os.ReadFile(path)
		if err != nil {
			core.LogFatal("Main", "Unable to read ", path, ": ", err)
		}
		jobs = append(jobs, pipeline.Job{Name: path, Image: image})
	}
	if pcapFile != "" {
		images, err := tools.ExtractConfigImages(pcapFile)
		if err != nil {
			core.LogFatal("Main", "Unable to extract from ", pcapFile, ": ", err)
		}
		for flow, image := range images {
			jobs = append(jobs, pipeline.Job{Name: pcapFile + " [" + flow + "]", Image: image})
		}
	}
	if len(jobs) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: gocsis [options] <config-file>...")
		fmt.Fprintln(os.Stderr, "")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var outputMutex sync.Mutex
	processor := pipeline.NewProcessor(pipeline.Options{
		Workers:   numWorkers,
		Secret:    secret,
		Policy:    reg,
		Preflight: preflight,
		Sink: func(result pipeline.Result) {
			outputMutex.Lock()
			defer outputMutex.Unlock()
			printResult(os.Stdout, result, reg)
		},
	})
	processor.Run(jobs)

	for key, value := range pipeline.Counters() {
		core.LogInfo("Main", key, " = ", value)
	}
}
