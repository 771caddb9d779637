// Package parallel fans pixel-buffer work out over row bands.
//
// Generators in this module compute cell values sequentially for
// determinism, but broadcasting those values into the pixel buffer is
// independent per row, so it can run on all cores without changing the
// output.
package parallel

import (
	"runtime"
	"sync"
)

// minRowsPerBand keeps goroutine overhead below the work it hides on
// small buffers.
const minRowsPerBand = 32

// Rows invokes fn once per y in [0, height), partitioned into
// contiguous bands across GOMAXPROCS goroutines. fn must not touch
// rows other than the one it is given. Rows blocks until every row is
// done.
func Rows(height int, fn func(y int)) {
	RowsWithWorkers(height, runtime.GOMAXPROCS(0), fn)
}

// RowsWithWorkers is Rows with an explicit worker count. Counts <= 1,
// or buffers too small to split, run inline.
func RowsWithWorkers(height, workers int, fn func(y int)) {
	if height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > height/minRowsPerBand {
		workers = height / minRowsPerBand
	}
	if workers <= 1 {
		for y := 0; y < height; y++ {
			fn(y)
		}
		return
	}

	band := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < height; start += band {
		end := start + band
		if end > height {
			end = height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				fn(y)
			}
		}(start, end)
	}
	wg.Wait()
}
