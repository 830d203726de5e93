/*
Package controller is the host-side dispatch/aggregation loop of
spec.md §4.J: it owns the single piece of process-wide mutable state
for a search (salt, counter_start, the result aggregator, a
cancellation flag, and a deadline), drives one goroutine per device
through the batch protocol, and stops when enough matches are found or
the deadline fires.

Concurrency model:

	┌────────────┐
	│ Controller │
	└─────┬──────┘
	      ├──> [device worker 1] ─┐
	      ├──> [device worker 2] ─┼──> addMatch (under resultsMu) ──> results
	      └──> [device worker N] ─┘
	      └──> [stats reporter] ──> console (every 10s)

Only the counter_start sequencer and the result aggregator need mutual
exclusion (spec.md §5); each device's own command queue already
serialises its batches, and, for the software device, its own batch of
goroutines.

This is the module's adaptation of the teacher repo's worker pool: the
teacher spins up N identical CPU worker goroutines sharing one atomic
counter and one buffered match channel
(bitcoin-wallet-bruteforce-offline.go's worker()/matchWriter()/
statsReporter()); here each "worker" is a whole device driven through
gpuexec.Device.RunBatch, the shared counter becomes the mutex-protected
counter_start sequencer, and the match writer becomes a verifying
aggregator since every device-reported hit must be independently
re-derived before being reported (spec.md §4.J step 4).
*/
package controller

import (
	"crypto/rand"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Asylian21/ergo-vanity-gpu/internal/gpuexec"
	"github.com/Asylian21/ergo-vanity-gpu/internal/pattern"
	"github.com/Asylian21/ergo-vanity-gpu/internal/searcherr"
	"github.com/Asylian21/ergo-vanity-gpu/internal/searchkernel"
)

// Config is the per-search state spec.md §4.J names. Salt is generated
// internally (platform CSPRNG, spec.md §6) rather than accepted from the
// caller, so every search gets a fresh one.
type Config struct {
	Devices    []int // global device indices, as returned by gpuexec.ListDevices
	Patterns   pattern.Set
	NumIndices uint32
	BatchSize  uint32 // 0 selects gpuexec.DefaultBatchSize
	MaxResults int
	Deadline   time.Duration // 0 means no deadline
}

// Match is one verified, host-reconstructed hit.
type Match = searchkernel.Verified

// Result is what Run returns: every verified match found, plus whichever
// termination condition ended the search and any non-fatal warnings
// collected along the way (overflow and verification-failure events,
// spec.md §7).
type Result struct {
	Matches  []Match
	Stopped  error // searcherr.ErrMatchLimitReached or searcherr.ErrDeadlineExceeded
	Warnings []error
}

// Run drives the full search to completion. It validates num_indices and
// max_results per spec.md §7 before touching any device, opens every
// requested device, and tears them all down on return.
func Run(cfg Config) (Result, error) {
	if cfg.NumIndices < searchkernel.MinIndices || cfg.NumIndices > searchkernel.MaxIndices {
		return Result{}, fmt.Errorf("controller: num_indices out of range [1,100]: %w", searcherr.ErrInvalidPrefix)
	}
	if cfg.MaxResults < 1 {
		return Result{}, fmt.Errorf("controller: max_results must be >= 1: %w", searcherr.ErrInvalidPrefix)
	}
	if len(cfg.Devices) == 0 {
		return Result{}, searcherr.ErrNoDevices
	}
	batchSize := cfg.BatchSize
	if batchSize == 0 {
		batchSize = gpuexec.DefaultBatchSize
	}

	devices := make([]gpuexec.Device, 0, len(cfg.Devices))
	for _, idx := range cfg.Devices {
		dev, err := gpuexec.Open(idx)
		if err != nil {
			for _, d := range devices {
				d.Close()
			}
			return Result{}, fmt.Errorf("%w: %v", searcherr.ErrDeviceInit, err)
		}
		devices = append(devices, dev)
	}
	defer func() {
		for _, d := range devices {
			d.Close()
		}
	}()

	var salt [32]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return Result{}, fmt.Errorf("controller: failed to draw search salt: %w", err)
	}

	c := &search{
		cfg:    cfg,
		params: searchkernel.Params{Salt: salt, Patterns: cfg.Patterns, NumIndices: cfg.NumIndices},
	}
	if cfg.Deadline > 0 {
		c.deadline = time.Now().Add(cfg.Deadline)
	}

	return c.run(devices, batchSize)
}

// search holds the single controller object's mutable state, scoped to
// the lifetime of one Run call (spec.md §9: "lifetime = one search. No
// singletons.").
type search struct {
	cfg    Config
	params searchkernel.Params

	counterMu   sync.Mutex
	counterNext uint64

	stop     atomic.Bool
	deadline time.Time

	resultsMu sync.Mutex
	matches   []Match
	warnings  []error

	attempted uint64 // total work items dispatched, for progress reporting
}

// nextCounterStart atomically allocates the next disjoint slice of the
// logical search space for a device's batch (spec.md §4.J step 5): the
// counter_start sequencer is the only piece of state every device
// worker contends on.
func (s *search) nextCounterStart(batchSize uint32) uint64 {
	s.counterMu.Lock()
	defer s.counterMu.Unlock()
	start := s.counterNext
	s.counterNext += uint64(batchSize)
	return start
}

func (s *search) deadlineExceeded() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

func (s *search) run(devices []gpuexec.Device, batchSize uint32) (Result, error) {
	ctx, cancel := newStopContext(&s.stop)
	defer cancel()

	startTime := time.Now()
	go statsReporter(&s.attempted, startTime, &s.stop)

	var wg sync.WaitGroup
	for _, dev := range devices {
		wg.Add(1)
		go func(dev gpuexec.Device) {
			defer wg.Done()
			s.driveDevice(ctx, dev, batchSize)
		}(dev)
	}
	wg.Wait()

	s.resultsMu.Lock()
	defer s.resultsMu.Unlock()

	stopped := searcherr.ErrMatchLimitReached
	if s.deadlineExceeded() && len(s.matches) < s.cfg.MaxResults {
		stopped = searcherr.ErrDeadlineExceeded
	}
	return Result{Matches: s.matches, Stopped: stopped, Warnings: s.warnings}, nil
}

// driveDevice is the per-device worker: repeatedly allocate a
// counter_start, run a batch, verify every hit, and feed verified
// matches to the shared aggregator, until the controller's stop flag is
// set (spec.md §5: "cancellation... checked between batches (not
// during)").
func (s *search) driveDevice(ctx stopContext, dev gpuexec.Device, batchSize uint32) {
	for {
		if s.stop.Load() {
			return
		}
		counterStart := s.nextCounterStart(batchSize)
		result, err := dev.RunBatch(ctx, s.params, counterStart, batchSize)
		if err != nil {
			log.Printf("controller: device %q batch failed: %v", dev.Name(), err)
			return
		}
		atomic.AddUint64(&s.attempted, uint64(batchSize))

		if result.Overflowed {
			s.addWarning(fmt.Errorf("%w: device %q reported %d matches, capacity %d",
				searcherr.ErrHitBufferOverflow, dev.Name(), result.MatchCount, gpuexec.MaxHits))
		}

		for _, hit := range result.Hits {
			verified, ok := searchkernel.Verify(hit, s.params.Patterns)
			if !ok {
				s.addWarning(fmt.Errorf("%w: work_item_id=%d address_index=%d",
					searcherr.ErrVerificationFailed, hit.WorkItemID, hit.AddressIndex))
				continue
			}
			if s.addMatch(verified) {
				s.stop.Store(true)
				return
			}
		}

		if s.deadlineExceeded() {
			s.stop.Store(true)
			return
		}
	}
}

// addMatch appends a verified match under the aggregator lock and
// reports whether the search has now reached its target, i.e. whether
// the caller should stop dispatching further batches.
func (s *search) addMatch(m Match) bool {
	s.resultsMu.Lock()
	defer s.resultsMu.Unlock()
	s.matches = append(s.matches, m)
	return len(s.matches) >= s.cfg.MaxResults
}

func (s *search) addWarning(err error) {
	s.resultsMu.Lock()
	defer s.resultsMu.Unlock()
	s.warnings = append(s.warnings, err)
	log.Printf("controller: %v", err)
}
