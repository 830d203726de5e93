package gpuexec

import (
	"context"
	"runtime"
	"sync"

	"github.com/Asylian21/ergo-vanity-gpu/internal/searchkernel"
)

// softwareDevice runs the exact per-work-item sweep of internal/searchkernel
// across goroutines instead of GPU lanes. It exists so the controller and
// its termination/aggregation logic can be exercised — and the module
// actually run — without OpenCL hardware, the same role the teacher
// repo's worker() goroutines play relative to its bufferPool and
// atomic-counter bookkeeping.
type softwareDevice struct {
	name string
}

func newSoftwareDevice(name string) *softwareDevice {
	return &softwareDevice{name: name}
}

func (d *softwareDevice) Name() string { return d.name }

func (d *softwareDevice) Close() error { return nil }

// RunBatch partitions [0, batchSize) across GOMAXPROCS goroutines, each
// sweeping its share of global ids independently (spec.md §5: "no
// barriers, no inter-work-item communication other than the shared
// hit_count"). Hits are appended to a shared, mutex-protected slice
// capped at MaxHits; anything beyond that is counted but dropped,
// mirroring the atomic fetch-and-add hit_count semantics of the device
// kernel.
func (d *softwareDevice) RunBatch(ctx context.Context, params searchkernel.Params, counterStart uint64, batchSize uint32) (BatchResult, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	if uint32(workers) > batchSize {
		workers = int(batchSize)
	}

	var mu sync.Mutex
	var hits []searchkernel.Hit
	var matchCount uint32
	var wg sync.WaitGroup

	chunk := batchSize / uint32(workers)
	if chunk == 0 {
		chunk = 1
	}

	for w := 0; w < workers; w++ {
		start := uint32(w) * chunk
		end := start + chunk
		if w == workers-1 {
			end = batchSize
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end uint32) {
			defer wg.Done()
			for gid := start; gid < end; gid++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				hit, ok := searchkernel.Sweep(params, gid, counterStart+uint64(gid))
				if !ok {
					continue
				}
				mu.Lock()
				matchCount++
				if len(hits) < MaxHits {
					hits = append(hits, hit)
				}
				mu.Unlock()
			}
		}(start, end)
	}
	wg.Wait()

	return BatchResult{
		Hits:       hits,
		MatchCount: matchCount,
		Overflowed: matchCount > MaxHits,
	}, nil
}
