package parallel

import (
	"sync/atomic"
	"testing"
)

func TestRowsCoversEveryRow(t *testing.T) {
	const height = 200
	var hits [height]int32
	Rows(height, func(y int) {
		atomic.AddInt32(&hits[y], 1)
	})
	for y, n := range hits {
		if n != 1 {
			t.Fatalf("row %d visited %d times", y, n)
		}
	}
}

func TestRowsSmallBufferRunsInline(t *testing.T) {
	var count int // no atomics: inline path must be single-goroutine
	RowsWithWorkers(10, 8, func(y int) { count++ })
	if count != 10 {
		t.Fatalf("count = %d", count)
	}
}

func TestRowsZeroHeight(t *testing.T) {
	called := false
	Rows(0, func(int) { called = true })
	if called {
		t.Error("fn called for empty buffer")
	}
}

func TestRowsWithExplicitWorkers(t *testing.T) {
	const height = 512
	var sum int64
	RowsWithWorkers(height, 4, func(y int) {
		atomic.AddInt64(&sum, int64(y))
	})
	want := int64(height * (height - 1) / 2)
	if sum != want {
		t.Fatalf("sum = %d, want %d", sum, want)
	}
}
