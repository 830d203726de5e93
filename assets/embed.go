// Package assets embeds the OpenCL kernel source so the host binary is
// self-contained: no separate .cl file needs to ship alongside it.
package assets

import _ "embed"

// VanitySearchKernel is the full source of the vanity_search kernel
// (components A-I), compiled at runtime by internal/gpuexec's OpenCL
// device via clCreateProgramWithSource/clBuildProgram.
//
//go:embed vanity_kernel.cl
var VanitySearchKernel string
