// Package parallel splits row-independent matrix work across goroutines.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// Config controls how row ranges are split.
type Config struct {
	Enabled bool // Whether parallel execution is enabled.
	Workers int  // Upper bound on concurrently running goroutines.
	MinRows int  // Minimum rows per goroutine; smaller inputs run inline.
}

// DefaultConfig sizes the worker pool to the physical core count, or to
// runtime.NumCPU when cpuid cannot report it.
func DefaultConfig() Config {
	n := cpuid.CPU.PhysicalCores
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return Config{
		Enabled: n > 1,
		Workers: n,
		MinRows: 32,
	}
}

// Sequential returns a Config that always runs inline.
func Sequential() Config {
	return Config{Enabled: false, Workers: 1, MinRows: 1}
}

// Rows calls f over disjoint half-open ranges [lo, hi) that cover [0, n).
// Each row is visited exactly once. Results are independent of the split
// as long as f only writes rows inside its own range.
func Rows(n int, cfg Config, f func(lo, hi int)) {
	if n <= 0 {
		return
	}
	minRows := max(cfg.MinRows, 1)
	if !cfg.Enabled || cfg.Workers <= 1 || n < 2*minRows {
		f(0, n)
		return
	}

	chunk := max((n+cfg.Workers-1)/cfg.Workers, minRows)

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
