package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// profiler collects an optional CPU profile for the lifetime of a run and an
// optional heap profile written when it stops.
type profiler struct {
	cpu     *os.File
	cpuPath string
	memPath string
}

func startProfiling(cpuPath, memPath string) (*profiler, error) {
	p := &profiler{cpuPath: cpuPath, memPath: memPath}
	if cpuPath == "" {
		return p, nil
	}
	f, err := os.Create(cpuPath)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", cpuPath, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, errors.Join(fmt.Errorf("start cpu profile %s: %w", cpuPath, err), f.Close())
	}
	p.cpu = f
	return p, nil
}

func (p *profiler) stop() error {
	var errs []error
	if p.cpu != nil {
		pprof.StopCPUProfile()
		if err := p.cpu.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cpu profile %s: %w", p.cpuPath, err))
		}
		p.cpu = nil
	}
	if p.memPath != "" {
		errs = append(errs, writeHeapProfile(p.memPath))
	}
	return errors.Join(errs...)
}

func writeHeapProfile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mem profile %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close mem profile %s: %w", path, closeErr)
		}
	}()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write mem profile %s: %w", path, err)
	}
	return nil
}
