// Package gpuexec is the host-side device abstraction of spec.md §4.J:
// it drives one or more "devices" (real OpenCL GPUs, or — when none are
// present — a pure-Go software device running the same pipeline) through
// the batch protocol the host controller needs: zero hit_count, enqueue
// a fixed-size sweep, read back hit_count and the claimed hit slots.
//
// Grounded on the other_examples cgo/OpenCL binding pattern
// (Amr-9-HexHunter's tron-gpu.go: platform/device/context/queue/program/
// kernel lifecycle, write-enqueue-read buffer cycle) for the real device,
// and on the teacher repo's goroutine worker-pool shape
// (bitcoin-wallet-bruteforce-offline.go's worker()/atomic counters) for
// the software device that keeps this module testable and runnable
// without OpenCL hardware.
package gpuexec

import (
	"context"
	"errors"

	"github.com/Asylian21/ergo-vanity-gpu/internal/searchkernel"
)

// MaxHits is the shared hit buffer capacity per batch (spec.md §4.I/§5).
const MaxHits = 1024

// DefaultBatchSize is the default global work size per kernel launch
// (spec.md §4.J: 2^18).
const DefaultBatchSize = 1 << 18

// ErrOverflow is not a fault; it records that more work items matched in
// a batch than MaxHits could record (spec.md §7: "not fatal").
var ErrOverflow = errors.New("gpuexec: hit buffer overflow")

// BatchResult is what a single device returns for one dispatched batch.
type BatchResult struct {
	Hits       []searchkernel.Hit
	MatchCount uint32 // the raw hit_count the device reported, possibly > len(Hits)
	Overflowed bool
}

// Device is the uniform interface the controller drives, whether backed
// by real OpenCL hardware or the software fallback.
type Device interface {
	// Name identifies the device for progress reporting.
	Name() string
	// RunBatch dispatches one kernel launch covering global ids
	// [0, batchSize) at logical counter counterStart+gid, and returns
	// the hits it produced. The OpenCL device checks ctx only before a
	// launch (spec.md §5: "no cancellation mechanism inside a launch");
	// the software device also checks it before each global id and stops
	// sweeping further ids once ctx is done.
	RunBatch(ctx context.Context, params searchkernel.Params, counterStart uint64, batchSize uint32) (BatchResult, error)
	// Close releases any device-side resources.
	Close() error
}

// DeviceInfo describes a discovered device without opening it, for the
// out-of-scope CLI's device-listing feature (spec.md §1 excludes the CLI
// itself, but device discovery/validation is part of SPEC_FULL.md's
// supplemented feature set).
type DeviceInfo struct {
	Index    int
	Name     string
	Platform string
	IsGPU    bool
}

// ListDevices enumerates every usable device: real OpenCL GPUs first (via
// listOpenCLDevices, which is a no-op returning nil on a build without
// the `opencl` tag), falling back to the always-available software
// device so a search can run on any machine.
func ListDevices() []DeviceInfo {
	devices := listOpenCLDevices()
	devices = append(devices, DeviceInfo{
		Index: len(devices),
		Name:  "software (CPU fallback)",
		IsGPU: false,
	})
	return devices
}

// Open opens the device at the given global index, as returned by
// ListDevices. Real OpenCL devices are indices [0, numOpenCLDevices);
// the software device is always the last index.
func Open(index int) (Device, error) {
	infos := ListDevices()
	if index < 0 || index >= len(infos) {
		return nil, errors.New("gpuexec: device index out of range")
	}
	if infos[index].IsGPU {
		return openOpenCLDevice(index)
	}
	return newSoftwareDevice(infos[index].Name), nil
}
