package physarum

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minBand keeps tiny workloads on the calling goroutine.
const minBand = 64

// DefaultWorkers is the parallelism used when none is configured.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// forEachBand splits [0, n) into contiguous bands and runs fn on each band,
// one goroutine per band. It returns once every band has finished.
func forEachBand(workers, n int, fn func(lo, hi int)) {
	if workers > n/minBand {
		workers = n / minBand
	}
	if workers <= 1 {
		fn(0, n)
		return
	}
	band := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += band {
		hi := min(lo+band, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
