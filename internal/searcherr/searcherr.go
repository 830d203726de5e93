// Package searcherr defines the sentinel error taxonomy shared by the
// host-side packages (spec.md §7): input validation, device discovery,
// precondition/overflow conditions surfaced from a device, and the
// controller's own verification/timeout outcomes. Derivation rejections
// that spec.md says are "not surfaced to the host" (an invalid BIP32
// child, a zero scalar, a point at infinity) are deliberately absent
// here — internal/searchkernel treats them as a skip, not an error.
//
// The teacher repo (bitcoin-wallet-bruteforce-offline.go) reports
// failures as plain fmt.Errorf-wrapped strings with no sentinel values;
// this module needs errors.Is-comparable sentinels because the
// controller must distinguish "stop, nothing more to do" conditions
// (MatchLimitReached, Deadline) from genuine faults, so the taxonomy is
// built the way the rest of the Go ecosystem (and golang.org/x/crypto's
// own packages) expose comparable sentinels: package-level `var Err... =
// errors.New(...)`, wrapped with %w where context is attached.
package searcherr

import "errors"

var (
	// ErrInvalidPrefix is wrapped by the controller when a search
	// parameter is out of range (num_indices outside [1,100], or
	// max_results < 1). internal/pattern reports prefix validation
	// failures with its own errors, not this one.
	ErrInvalidPrefix = errors.New("searcherr: invalid vanity prefix")

	// ErrNoDevices is returned when the controller is given an empty
	// device list.
	ErrNoDevices = errors.New("searcherr: no usable devices found")

	// ErrDeviceInit is returned when a discovered device fails to build
	// its program/command queue.
	ErrDeviceInit = errors.New("searcherr: device initialisation failed")

	// ErrHitBufferOverflow is returned when a single dispatch produces
	// more hits than the fixed-size hit buffer can record (spec.md §7:
	// the kernel must saturate, never overrun, but the host still
	// reports the condition so the operator can lower the batch size).
	ErrHitBufferOverflow = errors.New("searcherr: hit buffer overflow in a dispatch")

	// ErrVerificationFailed is returned when a device-reported hit does
	// not reproduce under the host-side oracle re-derivation (spec.md
	// §4.J: every hit is independently re-derived before being reported).
	ErrVerificationFailed = errors.New("searcherr: hit failed host-side verification")

	// ErrDeadlineExceeded is returned when the controller stops a search
	// because its configured deadline elapsed before reaching the match
	// target.
	ErrDeadlineExceeded = errors.New("searcherr: search deadline exceeded")

	// ErrMatchLimitReached is the controller's Result.Stopped value when a
	// search ends because enough matches have been found; it is not a
	// fault and callers should not report it as one.
	ErrMatchLimitReached = errors.New("searcherr: match limit reached")
)
