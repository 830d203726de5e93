//go:build opencl

package gpuexec

/*
#cgo CFLAGS: -I${SRCDIR}/../../deps/opencl-headers
#cgo windows LDFLAGS: -L${SRCDIR}/../../deps/lib -lOpenCL
#cgo linux LDFLAGS: -lOpenCL
#cgo darwin LDFLAGS: -framework OpenCL

#ifdef __APPLE__
#include <OpenCL/opencl.h>
#else
#include <CL/cl.h>
#endif

#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/Asylian21/ergo-vanity-gpu/assets"
	"github.com/Asylian21/ergo-vanity-gpu/internal/pattern"
	"github.com/Asylian21/ergo-vanity-gpu/internal/searchkernel"
	"github.com/Asylian21/ergo-vanity-gpu/internal/wordlist"
)

// openCLDevice drives one physical GPU through the batch protocol of
// spec.md §4.J: platform/device/context/queue/program/kernel lifecycle
// and a write-enqueue-read buffer cycle per batch, grounded directly on
// the cgo OpenCL binding pattern in the HexHunter example (tron-gpu.go's
// TronGPUGenerator).
type openCLDevice struct {
	name string

	platform C.cl_platform_id
	device   C.cl_device_id
	context  C.cl_context
	queue    C.cl_command_queue
	program  C.cl_program
	kernel   C.cl_kernel

	bufSalt           C.cl_mem
	bufWords8         C.cl_mem
	bufWordLens       C.cl_mem
	bufPatterns       C.cl_mem
	bufPatternOffsets C.cl_mem
	bufPatternLens    C.cl_mem
	bufHits           C.cl_mem
	bufHitCount       C.cl_mem
}

func listOpenCLDevices() []DeviceInfo {
	var numPlatforms C.cl_uint
	if C.clGetPlatformIDs(0, nil, &numPlatforms) != C.CL_SUCCESS || numPlatforms == 0 {
		return nil
	}
	platforms := make([]C.cl_platform_id, numPlatforms)
	C.clGetPlatformIDs(numPlatforms, &platforms[0], nil)

	var infos []DeviceInfo
	for _, plat := range platforms {
		var numDevices C.cl_uint
		if C.clGetDeviceIDs(plat, C.CL_DEVICE_TYPE_GPU, 0, nil, &numDevices) != C.CL_SUCCESS || numDevices == 0 {
			continue
		}
		devices := make([]C.cl_device_id, numDevices)
		C.clGetDeviceIDs(plat, C.CL_DEVICE_TYPE_GPU, numDevices, &devices[0], nil)
		for _, dev := range devices {
			var nameBuf [256]C.char
			C.clGetDeviceInfo(dev, C.CL_DEVICE_NAME, 256, unsafe.Pointer(&nameBuf[0]), nil)
			infos = append(infos, DeviceInfo{
				Index:    len(infos),
				Name:     C.GoString(&nameBuf[0]),
				Platform: "OpenCL",
				IsGPU:    true,
			})
		}
	}
	return infos
}

func openOpenCLDevice(index int) (Device, error) {
	var numPlatforms C.cl_uint
	if C.clGetPlatformIDs(0, nil, &numPlatforms) != C.CL_SUCCESS || numPlatforms == 0 {
		return nil, fmt.Errorf("gpuexec: no OpenCL platform found")
	}
	platforms := make([]C.cl_platform_id, numPlatforms)
	C.clGetPlatformIDs(numPlatforms, &platforms[0], nil)

	var chosenDevice C.cl_device_id
	var chosenPlatform C.cl_platform_id
	found := false
	count := 0
	for _, plat := range platforms {
		var numDevices C.cl_uint
		if C.clGetDeviceIDs(plat, C.CL_DEVICE_TYPE_GPU, 0, nil, &numDevices) != C.CL_SUCCESS {
			continue
		}
		devices := make([]C.cl_device_id, numDevices)
		C.clGetDeviceIDs(plat, C.CL_DEVICE_TYPE_GPU, numDevices, &devices[0], nil)
		for _, dev := range devices {
			if count == index {
				chosenDevice = dev
				chosenPlatform = plat
				found = true
			}
			count++
		}
	}
	if !found {
		return nil, fmt.Errorf("gpuexec: device index %d out of range", index)
	}

	var ret C.cl_int
	ctx := C.clCreateContext(nil, 1, &chosenDevice, nil, nil, &ret)
	if ret != C.CL_SUCCESS {
		return nil, fmt.Errorf("gpuexec: clCreateContext failed: %d", ret)
	}
	queue := C.clCreateCommandQueue(ctx, chosenDevice, 0, &ret)
	if ret != C.CL_SUCCESS {
		return nil, fmt.Errorf("gpuexec: clCreateCommandQueue failed: %d", ret)
	}

	src := C.CString(assets.VanitySearchKernel)
	defer C.free(unsafe.Pointer(src))
	srcLen := C.size_t(len(assets.VanitySearchKernel))
	program := C.clCreateProgramWithSource(ctx, 1, &src, &srcLen, &ret)
	if ret != C.CL_SUCCESS {
		return nil, fmt.Errorf("gpuexec: clCreateProgramWithSource failed: %d", ret)
	}
	if C.clBuildProgram(program, 1, &chosenDevice, nil, nil, nil) != C.CL_SUCCESS {
		var logSize C.size_t
		C.clGetProgramBuildInfo(program, chosenDevice, C.CL_PROGRAM_BUILD_LOG, 0, nil, &logSize)
		logBuf := make([]C.char, logSize)
		C.clGetProgramBuildInfo(program, chosenDevice, C.CL_PROGRAM_BUILD_LOG, logSize, unsafe.Pointer(&logBuf[0]), nil)
		return nil, fmt.Errorf("gpuexec: kernel build failed: %s", C.GoString(&logBuf[0]))
	}

	kernelName := C.CString("vanity_search")
	defer C.free(unsafe.Pointer(kernelName))
	kernel := C.clCreateKernel(program, kernelName, &ret)
	if ret != C.CL_SUCCESS {
		return nil, fmt.Errorf("gpuexec: clCreateKernel failed: %d", ret)
	}

	var nameBuf [256]C.char
	C.clGetDeviceInfo(chosenDevice, C.CL_DEVICE_NAME, 256, unsafe.Pointer(&nameBuf[0]), nil)

	d := &openCLDevice{
		name:     C.GoString(&nameBuf[0]),
		platform: chosenPlatform,
		device:   chosenDevice,
		context:  ctx,
		queue:    queue,
		program:  program,
		kernel:   kernel,
	}
	if err := d.createStaticBuffers(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

// createStaticBuffers uploads the constant-across-the-search wordlist
// once (spec.md §6: "words8"/"word_lens"), since it never changes per
// batch.
func (d *openCLDevice) createStaticBuffers() error {
	words8, lens := wordlist.Words8()

	var ret C.cl_int
	d.bufWords8 = C.clCreateBuffer(d.context, C.CL_MEM_READ_ONLY, C.size_t(len(words8)*8), nil, &ret)
	if ret != C.CL_SUCCESS {
		return fmt.Errorf("gpuexec: allocate words8 buffer failed: %d", ret)
	}
	flat := make([]byte, len(words8)*8)
	for i, w := range words8 {
		copy(flat[i*8:], w[:])
	}
	C.clEnqueueWriteBuffer(d.queue, d.bufWords8, C.CL_TRUE, 0, C.size_t(len(flat)), unsafe.Pointer(&flat[0]), 0, nil, nil)

	d.bufWordLens = C.clCreateBuffer(d.context, C.CL_MEM_READ_ONLY, C.size_t(len(lens)), nil, &ret)
	if ret != C.CL_SUCCESS {
		return fmt.Errorf("gpuexec: allocate word_lens buffer failed: %d", ret)
	}
	C.clEnqueueWriteBuffer(d.queue, d.bufWordLens, C.CL_TRUE, 0, C.size_t(len(lens)), unsafe.Pointer(&lens[0]), 0, nil, nil)

	d.bufHits = C.clCreateBuffer(d.context, C.CL_MEM_WRITE_ONLY, C.size_t(MaxHits*searchkernel.HitSize), nil, &ret)
	if ret != C.CL_SUCCESS {
		return fmt.Errorf("gpuexec: allocate hits buffer failed: %d", ret)
	}
	d.bufHitCount = C.clCreateBuffer(d.context, C.CL_MEM_READ_WRITE, 4, nil, &ret)
	if ret != C.CL_SUCCESS {
		return fmt.Errorf("gpuexec: allocate hit_count buffer failed: %d", ret)
	}
	return nil
}

func (d *openCLDevice) Name() string { return d.name }

func (d *openCLDevice) Close() error {
	if d.bufSalt != nil {
		C.clReleaseMemObject(d.bufSalt)
	}
	if d.bufPatterns != nil {
		C.clReleaseMemObject(d.bufPatterns)
	}
	if d.bufPatternOffsets != nil {
		C.clReleaseMemObject(d.bufPatternOffsets)
	}
	if d.bufPatternLens != nil {
		C.clReleaseMemObject(d.bufPatternLens)
	}
	if d.bufWords8 != nil {
		C.clReleaseMemObject(d.bufWords8)
	}
	if d.bufWordLens != nil {
		C.clReleaseMemObject(d.bufWordLens)
	}
	if d.bufHits != nil {
		C.clReleaseMemObject(d.bufHits)
	}
	if d.bufHitCount != nil {
		C.clReleaseMemObject(d.bufHitCount)
	}
	if d.kernel != nil {
		C.clReleaseKernel(d.kernel)
	}
	if d.program != nil {
		C.clReleaseProgram(d.program)
	}
	if d.queue != nil {
		C.clReleaseCommandQueue(d.queue)
	}
	if d.context != nil {
		C.clReleaseContext(d.context)
	}
	return nil
}

// flattenPatterns packs a validated pattern set into the concatenated
// buffer + offsets/lengths layout spec.md §6 names.
func flattenPatterns(set pattern.Set) (flat []byte, offsets []uint32, lens []uint32) {
	offsets = make([]uint32, len(set.Patterns))
	lens = make([]uint32, len(set.Patterns))
	off := uint32(0)
	for i, p := range set.Patterns {
		offsets[i] = off
		lens[i] = uint32(len(p.Bytes))
		flat = append(flat, p.Bytes...)
		off += uint32(len(p.Bytes))
	}
	return flat, offsets, lens
}

// RunBatch implements the per-batch protocol of spec.md §4.J steps 1-3:
// zero hit_count, upload the per-batch-varying arguments (salt,
// counter_start, pattern buffers — the wordlist was uploaded once at
// Open time), enqueue the kernel over batchSize work items, and read
// back hit_count plus the first min(hit_count, MaxHits) hit records.
func (d *openCLDevice) RunBatch(ctx context.Context, params searchkernel.Params, counterStart uint64, batchSize uint32) (BatchResult, error) {
	select {
	case <-ctx.Done():
		return BatchResult{}, ctx.Err()
	default:
	}

	zero := C.cl_uint(0)
	C.clEnqueueWriteBuffer(d.queue, d.bufHitCount, C.CL_TRUE, 0, 4, unsafe.Pointer(&zero), 0, nil, nil)

	salt := params.Salt
	if d.bufSalt == nil {
		var ret C.cl_int
		d.bufSalt = C.clCreateBuffer(d.context, C.CL_MEM_READ_ONLY, 32, nil, &ret)
	}
	C.clEnqueueWriteBuffer(d.queue, d.bufSalt, C.CL_TRUE, 0, 32, unsafe.Pointer(&salt[0]), 0, nil, nil)

	flat, offsets, lens := flattenPatterns(params.Patterns)
	var ret C.cl_int
	if d.bufPatterns != nil {
		C.clReleaseMemObject(d.bufPatterns)
	}
	patternBufSize := len(flat)
	if patternBufSize == 0 {
		patternBufSize = 1
	}
	d.bufPatterns = C.clCreateBuffer(d.context, C.CL_MEM_READ_ONLY, C.size_t(patternBufSize), nil, &ret)
	if len(flat) > 0 {
		C.clEnqueueWriteBuffer(d.queue, d.bufPatterns, C.CL_TRUE, 0, C.size_t(len(flat)), unsafe.Pointer(&flat[0]), 0, nil, nil)
	}

	if d.bufPatternOffsets != nil {
		C.clReleaseMemObject(d.bufPatternOffsets)
	}
	if d.bufPatternLens != nil {
		C.clReleaseMemObject(d.bufPatternLens)
	}
	d.bufPatternOffsets = C.clCreateBuffer(d.context, C.CL_MEM_READ_ONLY, C.size_t(len(offsets)*4+4), nil, &ret)
	d.bufPatternLens = C.clCreateBuffer(d.context, C.CL_MEM_READ_ONLY, C.size_t(len(lens)*4+4), nil, &ret)
	if len(offsets) > 0 {
		C.clEnqueueWriteBuffer(d.queue, d.bufPatternOffsets, C.CL_TRUE, 0, C.size_t(len(offsets)*4), unsafe.Pointer(&offsets[0]), 0, nil, nil)
		C.clEnqueueWriteBuffer(d.queue, d.bufPatternLens, C.CL_TRUE, 0, C.size_t(len(lens)*4), unsafe.Pointer(&lens[0]), 0, nil, nil)
	}

	ignoreCase := C.cl_uint(0)
	if params.Patterns.IgnoreCase {
		ignoreCase = 1
	}
	numPatterns := C.cl_uint(len(params.Patterns.Patterns))
	numIndices := C.cl_uint(params.NumIndices)
	maxHits := C.cl_uint(MaxHits)
	counterStartArg := C.cl_ulong(counterStart)

	args := []unsafe.Pointer{
		unsafe.Pointer(&d.bufSalt), unsafe.Pointer(&counterStartArg),
		unsafe.Pointer(&d.bufWords8), unsafe.Pointer(&d.bufWordLens),
		unsafe.Pointer(&d.bufPatterns), unsafe.Pointer(&d.bufPatternOffsets), unsafe.Pointer(&d.bufPatternLens),
		unsafe.Pointer(&numPatterns), unsafe.Pointer(&ignoreCase), unsafe.Pointer(&numIndices),
		unsafe.Pointer(&d.bufHits), unsafe.Pointer(&d.bufHitCount), unsafe.Pointer(&maxHits),
	}
	sizes := []C.size_t{
		C.size_t(unsafe.Sizeof(d.bufSalt)), C.size_t(unsafe.Sizeof(counterStartArg)),
		C.size_t(unsafe.Sizeof(d.bufWords8)), C.size_t(unsafe.Sizeof(d.bufWordLens)),
		C.size_t(unsafe.Sizeof(d.bufPatterns)), C.size_t(unsafe.Sizeof(d.bufPatternOffsets)), C.size_t(unsafe.Sizeof(d.bufPatternLens)),
		C.size_t(unsafe.Sizeof(numPatterns)), C.size_t(unsafe.Sizeof(ignoreCase)), C.size_t(unsafe.Sizeof(numIndices)),
		C.size_t(unsafe.Sizeof(d.bufHits)), C.size_t(unsafe.Sizeof(d.bufHitCount)), C.size_t(unsafe.Sizeof(maxHits)),
	}
	for i, arg := range args {
		if C.clSetKernelArg(d.kernel, C.cl_uint(i), sizes[i], arg) != C.CL_SUCCESS {
			return BatchResult{}, fmt.Errorf("gpuexec: clSetKernelArg(%d) failed", i)
		}
	}

	globalSize := C.size_t(batchSize)
	if C.clEnqueueNDRangeKernel(d.queue, d.kernel, 1, nil, &globalSize, nil, 0, nil, nil) != C.CL_SUCCESS {
		return BatchResult{}, fmt.Errorf("gpuexec: clEnqueueNDRangeKernel failed")
	}

	var hitCount C.cl_uint
	C.clEnqueueReadBuffer(d.queue, d.bufHitCount, C.CL_TRUE, 0, 4, unsafe.Pointer(&hitCount), 0, nil, nil)

	readCount := uint32(hitCount)
	overflowed := readCount > MaxHits
	toRead := readCount
	if toRead > MaxHits {
		toRead = MaxHits
	}

	hits := make([]searchkernel.Hit, 0, toRead)
	if toRead > 0 {
		raw := make([]byte, int(toRead)*searchkernel.HitSize)
		C.clEnqueueReadBuffer(d.queue, d.bufHits, C.CL_TRUE, 0, C.size_t(len(raw)), unsafe.Pointer(&raw[0]), 0, nil, nil)
		for i := uint32(0); i < toRead; i++ {
			hit, ok := searchkernel.UnmarshalHit(raw[i*searchkernel.HitSize : (i+1)*searchkernel.HitSize])
			if ok {
				hits = append(hits, hit)
			}
		}
	}

	return BatchResult{Hits: hits, MatchCount: readCount, Overflowed: overflowed}, nil
}
