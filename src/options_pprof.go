//go:build pprof
// +build pprof

package colorpicker

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/junegunn/colorpicker/src/util"
	"github.com/pkg/errors"
)

func closeProfile(name string, f *os.File) {
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: closing %s profile: %v\n", name, err)
	}
}

// writeProfileAtExit writes the named runtime profile to path when the
// program exits
func writeProfileAtExit(name string, path string, before func()) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create %s profile", name)
	}
	util.AtExit(func() {
		if before != nil {
			before()
		}
		if err := pprof.Lookup(name).WriteTo(f, 0); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not write %s profile: %v\n", name, err)
		}
		closeProfile(name, f)
	})
	return nil
}

func (o *Options) initProfiling() error {
	if o.CPUProfile != "" {
		f, err := os.Create(o.CPUProfile)
		if err != nil {
			return errors.Wrap(err, "could not create cpu profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "could not start cpu profile")
		}
		util.AtExit(func() {
			pprof.StopCPUProfile()
			closeProfile("cpu", f)
		})
	}

	if o.MEMProfile != "" {
		if err := writeProfileAtExit("allocs", o.MEMProfile, runtime.GC); err != nil {
			return err
		}
	}
	if o.BlockProfile != "" {
		runtime.SetBlockProfileRate(1)
		if err := writeProfileAtExit("block", o.BlockProfile, nil); err != nil {
			return err
		}
	}
	if o.MutexProfile != "" {
		runtime.SetMutexProfileFraction(1)
		if err := writeProfileAtExit("mutex", o.MutexProfile, nil); err != nil {
			return err
		}
	}
	return nil
}
