//go:build !pprof
// +build !pprof

package colorpicker

import "github.com/pkg/errors"

func (o *Options) initProfiling() error {
	if o.CPUProfile != "" || o.MEMProfile != "" || o.BlockProfile != "" || o.MutexProfile != "" {
		return errors.New("profiling not supported: colorpicker must be built with '-tags=pprof' to enable profiling")
	}
	return nil
}
