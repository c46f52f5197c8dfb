package runtimeabi

/*
#include <stdint.h>
*/
import "C"

import (
	"os"
	"sync"
	"syscall"
)

// TlStatus mirrors _examples/original_source/runtime_native/src/error.rs's
// TlStatus exactly: four values, no more. Status is reported as a plain
// int32 across the cgo boundary rather than as a Go-defined type so the
// emitted LLVM IR never has to know about it beyond the sentinel integers
// already baked into spec.md §4.4's abort-with-code convention.
type TlStatus int32

const (
	StatusOk                TlStatus = 0
	StatusInvalidArgument   TlStatus = 1
	StatusAllocationFailure TlStatus = 2
	StatusNullPointer       TlStatus = 3
)

func (s TlStatus) message() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusInvalidArgument:
		return "invalid argument"
	case StatusAllocationFailure:
		return "allocation failure"
	case StatusNullPointer:
		return "null pointer"
	default:
		return "invalid argument"
	}
}

// lastError adapts error.rs's thread_local! LAST_ERROR cell: cgo gives a
// reverse call (native code calling an //export'd Go function) a dedicated
// OS thread for its whole lifetime, but exposes no __thread-qualified
// storage to Go, so the slot is keyed by the kernel thread id instead of a
// language-level thread-local (runtime.LockOSThread alone is not enough: it
// pins a goroutine to a thread, it does not give that thread private
// storage).
var lastError struct {
	mu   sync.Mutex
	byTID map[int]TlStatus
}

func init() {
	lastError.byTID = make(map[int]TlStatus)
}

func setLastError(s TlStatus) {
	tid := syscall.Gettid()
	lastError.mu.Lock()
	lastError.byTID[tid] = s
	lastError.mu.Unlock()
}

func getLastError() TlStatus {
	tid := syscall.Gettid()
	lastError.mu.Lock()
	s, ok := lastError.byTID[tid]
	lastError.mu.Unlock()
	if !ok {
		return StatusOk
	}
	return s
}

//export tl_last_error
func tl_last_error() C.int32_t {
	return C.int32_t(getLastError())
}

//export tl_status_to_code
func tl_status_to_code(status C.int32_t) C.int32_t {
	return status
}

//export tl_status_from_code
func tl_status_from_code(code C.int32_t) C.int32_t {
	switch TlStatus(code) {
	case StatusOk, StatusInvalidArgument, StatusAllocationFailure, StatusNullPointer:
		return code
	default:
		return C.int32_t(StatusInvalidArgument)
	}
}

//export tl_status_message
func tl_status_message(code C.int32_t) *C.char {
	return C.CString(TlStatus(code).message())
}

// tl_abort_with_code is the sole symbol internal/codegen's trap and
// non-exhaustive-match paths call (spec.md §4.4 "the generated code calls
// abort-with-code with a sentinel value and then traps"). It prints a
// diagnostic and terminates the process, matching error.rs's
// tl_abort_with_message's behavior but keyed by the plain integer sentinel
// internal/codegen already has in hand instead of a formatted string.
//
//export tl_abort_with_code
func tl_abort_with_code(code C.int64_t) C.int8_t {
	println("typelang runtime: abort, code=", int64(code))
	os.Exit(1)
	return 0
}
