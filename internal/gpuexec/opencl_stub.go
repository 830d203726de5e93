//go:build !opencl

package gpuexec

import "errors"

// listOpenCLDevices is a no-op without the `opencl` build tag: the
// module still builds and runs (via the software device) on a machine
// with no OpenCL headers/library installed.
func listOpenCLDevices() []DeviceInfo { return nil }

func openOpenCLDevice(index int) (Device, error) {
	return nil, errors.New("gpuexec: built without the 'opencl' tag; no OpenCL devices are available")
}
