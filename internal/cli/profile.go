package cli

import (
	"fmt"
	"github.com/spf13/cobra"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
)

type profileOpts struct {
	cpuProfileFile string
	memProfileFile string
}

func addProfilingFlags(cmd *cobra.Command, opts *profileOpts) {
	cmd.Flags().StringVar(&opts.cpuProfileFile, "cpu-profile-file", "", "Dump a CPU profile into the supplied file")
	cmd.Flags().StringVar(&opts.memProfileFile, "mem-profile-file", "", "Dump a heap profile into the supplied file")
}

// setupProfiling starts the requested profilers and returns the teardown that stops them and writes their
// output. The teardown is safe to call when no profiler was requested.
func setupProfiling(opts profileOpts, errOut io.Writer) (deferredTeardown func(), err error) {
	var cpuTeardown func()
	if opts.cpuProfileFile != "" {
		cpuTeardown, err = setupCPUProfilingAndReturnTeardown(opts.cpuProfileFile)
		if err != nil {
			return nil, err
		}
	}

	return func() {
		if cpuTeardown != nil {
			cpuTeardown()
		}
		if opts.memProfileFile != "" {
			if memErr := writeMemoryProfile(opts.memProfileFile); memErr != nil {
				fmt.Fprintf(errOut, "Error writing memory profile: %v\n", memErr)
			}
		}
	}, nil
}

func setupCPUProfilingAndReturnTeardown(cpuProfilePath string) (deferredTeardown func(), err error) {
	cpuProfileFile, err := os.Create(cpuProfilePath)
	if err != nil {
		return nil, err
	}

	runtime.SetCPUProfileRate(500)
	if err = pprof.StartCPUProfile(cpuProfileFile); err != nil {
		cpuProfileFile.Close()
		return nil, err
	}

	return func() {
		pprof.StopCPUProfile()
		cpuProfileFile.Close()
	}, nil
}

func writeMemoryProfile(memProfilePath string) error {
	memProfileFile, err := os.Create(memProfilePath)
	if err != nil {
		return err
	}
	defer memProfileFile.Close()

	runtime.GC()
	return pprof.WriteHeapProfile(memProfileFile)
}
