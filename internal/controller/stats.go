package controller

import (
	"fmt"
	"sync/atomic"
	"time"
)

// statsReporter prints total-throughput progress every 10 seconds
// (spec.md §4.J: "Total-throughput progress is reported periodically"),
// the same overall/instant-rate shape as the teacher repo's
// statsReporter, adapted from "keys generated" to "work items attempted"
// and stopped by the controller's atomic flag instead of running forever.
func statsReporter(attempted *uint64, startTime time.Time, stop *atomic.Bool) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	lastTotal := uint64(0)
	lastTime := startTime

	for range ticker.C {
		if stop.Load() {
			return
		}
		total := atomic.LoadUint64(attempted)
		now := time.Now()

		elapsed := time.Since(startTime).Seconds()
		overallRate := float64(total) / elapsed

		intervalAttempts := total - lastTotal
		intervalTime := now.Sub(lastTime).Seconds()
		instantRate := float64(intervalAttempts) / intervalTime

		fmt.Printf("[search] attempted=%d overall=%.0f/s current=%.0f/s runtime=%.0fs\n",
			total, overallRate, instantRate, elapsed)

		lastTotal = total
		lastTime = now
	}
}
