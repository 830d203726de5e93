/*
Command ergovanity is the thin, flat-argument CLI front-end wiring the
search controller together (spec.md §1 explicitly treats the
command-line front-end as an external collaborator out of scope for the
core pipeline; SPEC_FULL.md keeps a minimal one so the module is a
runnable program, in the same positional-argument style as the teacher
repo's bitcoin-wallet-bruteforce-offline.go).

Usage:

	ergovanity list-devices
	ergovanity search <patterns> <num-indices> <max-results> <deadline-seconds> [device-index]

Arguments:

	patterns            comma-separated Base58 prefixes, e.g. "9err,9ego"
	num-indices         address indices tried per work item (1..100)
	max-results         stop after this many verified matches
	deadline-seconds    stop after this many seconds (0 = no deadline)
	device-index        optional device index from "list-devices"; default
	                     is the software (CPU) fallback device
*/
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Asylian21/ergo-vanity-gpu/internal/controller"
	"github.com/Asylian21/ergo-vanity-gpu/internal/gpuexec"
	"github.com/Asylian21/ergo-vanity-gpu/internal/pattern"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "list-devices":
		runListDevices()
	case "search":
		runSearch(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  ergovanity list-devices")
	fmt.Println("  ergovanity search <patterns> <num-indices> <max-results> <deadline-seconds> [device-index]")
}

func runListDevices() {
	infos := gpuexec.ListDevices()
	for _, info := range infos {
		kind := "GPU"
		if !info.IsGPU {
			kind = "CPU fallback"
		}
		fmt.Printf("[%d] %s (%s)\n", info.Index, info.Name, kind)
	}
}

func runSearch(args []string) {
	if len(args) < 4 {
		usage()
		os.Exit(1)
	}

	rawPatterns := strings.Split(args[0], ",")
	patterns := make([][]byte, len(rawPatterns))
	for i, p := range rawPatterns {
		patterns[i] = []byte(strings.TrimSpace(p))
	}
	set, err := pattern.NewSet(patterns, false)
	if err != nil {
		log.Fatalf("invalid pattern set: %v", err)
	}

	numIndices, err := strconv.Atoi(args[1])
	if err != nil {
		log.Fatalf("invalid num-indices: %v", err)
	}
	maxResults, err := strconv.Atoi(args[2])
	if err != nil {
		log.Fatalf("invalid max-results: %v", err)
	}
	deadlineSecs, err := strconv.Atoi(args[3])
	if err != nil {
		log.Fatalf("invalid deadline-seconds: %v", err)
	}

	deviceIndex := -1
	if len(args) >= 5 {
		deviceIndex, err = strconv.Atoi(args[4])
		if err != nil {
			log.Fatalf("invalid device-index: %v", err)
		}
	}
	if deviceIndex == -1 {
		for _, info := range gpuexec.ListDevices() {
			if !info.IsGPU {
				deviceIndex = info.Index
			}
		}
	}

	cfg := controller.Config{
		Devices:    []int{deviceIndex},
		Patterns:   set,
		NumIndices: uint32(numIndices),
		MaxResults: maxResults,
		Deadline:   time.Duration(deadlineSecs) * time.Second,
	}

	fmt.Printf("Searching for %d pattern(s), %d address index(es) per attempt, up to %d match(es)...\n",
		len(set.Patterns), numIndices, maxResults)

	result, err := controller.Run(cfg)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	for _, m := range result.Matches {
		fmt.Printf("MATCH address_index=%d pattern_index=%d\n  address:  %s\n  mnemonic: %s\n",
			m.AddressIndex, m.PatternIndex, m.Address, m.Mnemonic)
	}
	if len(result.Warnings) > 0 {
		var b bytes.Buffer
		for _, w := range result.Warnings {
			b.WriteString("  - ")
			b.WriteString(w.Error())
			b.WriteByte('\n')
		}
		fmt.Printf("Warnings:\n%s", b.String())
	}
	fmt.Printf("Stopped: %v\n", result.Stopped)
}
