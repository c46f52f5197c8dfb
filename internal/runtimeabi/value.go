package runtimeabi

/*
#include <stdint.h>
*/
import "C"

import (
	"fmt"
	"runtime/cgo"
	"unsafe"
)

// valueKind mirrors value.rs's TlValueKind: what a box carries.
type valueKind int8

const (
	kindInt valueKind = iota
	kindDouble
	kindBool
	kindPointer
)

// box is the Go-side analog of value.rs's TlBox: a tagged union handed to
// native code as an opaque pointer. Rather than hand-allocate C memory and
// reproduce the union's exact byte layout, the handle is a
// runtime/cgo.Handle over this struct — the standard-library mechanism for
// giving foreign code a safe, non-moving reference to a Go value without
// pinning it against the garbage collector by hand (see DESIGN.md: no
// third-party library in the retrieved pack does this, and cgo.Handle is
// the stdlib's purpose-built answer).
type box struct {
	kind valueKind
	i    int64
	d    float64
	b    bool
	ptr  unsafe.Pointer
}

func boxHandle(b *box) unsafe.Pointer {
	return unsafe.Pointer(cgo.NewHandle(b)) //nolint:govet // handle encodes as a pointer-sized value by design
}

func unboxHandle(v unsafe.Pointer) (*box, bool) {
	if v == nil {
		return nil, false
	}
	h := cgo.Handle(uintptr(v))
	b, ok := h.Value().(*box)
	return b, ok
}

//export tl_value_from_int
func tl_value_from_int(value C.int64_t) unsafe.Pointer {
	setLastError(StatusOk)
	return boxHandle(&box{kind: kindInt, i: int64(value)})
}

//export tl_value_from_double
func tl_value_from_double(value C.double) unsafe.Pointer {
	setLastError(StatusOk)
	return boxHandle(&box{kind: kindDouble, d: float64(value)})
}

//export tl_value_from_bool
func tl_value_from_bool(value C.int8_t) unsafe.Pointer {
	setLastError(StatusOk)
	return boxHandle(&box{kind: kindBool, b: value != 0})
}

//export tl_value_from_ptr
func tl_value_from_ptr(ptr unsafe.Pointer) unsafe.Pointer {
	if ptr == nil {
		setLastError(StatusNullPointer)
		return nil
	}
	setLastError(StatusOk)
	return boxHandle(&box{kind: kindPointer, ptr: ptr})
}

//export tl_value_to_int
func tl_value_to_int(value unsafe.Pointer) C.int64_t {
	b, ok := unboxHandle(value)
	if !ok {
		setLastError(StatusNullPointer)
		return 0
	}
	switch b.kind {
	case kindInt:
		setLastError(StatusOk)
		return C.int64_t(b.i)
	case kindBool:
		setLastError(StatusOk)
		return C.int64_t(boolToInt(b.b))
	case kindDouble:
		setLastError(StatusOk)
		return C.int64_t(int64(b.d))
	default:
		setLastError(StatusInvalidArgument)
		return 0
	}
}

//export tl_value_to_double
func tl_value_to_double(value unsafe.Pointer) C.double {
	b, ok := unboxHandle(value)
	if !ok {
		setLastError(StatusNullPointer)
		return 0
	}
	switch b.kind {
	case kindInt:
		setLastError(StatusOk)
		return C.double(float64(b.i))
	case kindBool:
		setLastError(StatusOk)
		return C.double(float64(boolToInt(b.b)))
	case kindDouble:
		setLastError(StatusOk)
		return C.double(b.d)
	default:
		setLastError(StatusInvalidArgument)
		return 0
	}
}

//export tl_value_to_bool
func tl_value_to_bool(value unsafe.Pointer) C.int8_t {
	b, ok := unboxHandle(value)
	if !ok {
		setLastError(StatusNullPointer)
		return 0
	}
	switch b.kind {
	case kindInt:
		setLastError(StatusOk)
		return boolToInt(b.i != 0)
	case kindDouble:
		setLastError(StatusOk)
		return boolToInt(b.d != 0)
	case kindBool:
		setLastError(StatusOk)
		return boolToInt(b.b)
	default:
		setLastError(StatusInvalidArgument)
		return 0
	}
}

//export tl_value_to_ptr
func tl_value_to_ptr(value unsafe.Pointer) unsafe.Pointer {
	b, ok := unboxHandle(value)
	if !ok {
		setLastError(StatusNullPointer)
		return nil
	}
	if b.kind != kindPointer {
		setLastError(StatusInvalidArgument)
		return nil
	}
	setLastError(StatusOk)
	return b.ptr
}

// tl_value_release deletes the handle, letting the garbage collector
// reclaim the underlying box. Unlike value.rs's Box::from_raw drop, there is
// no manual free: cgo.Handle.Delete only removes the GC root.
//
//export tl_value_release
func tl_value_release(value unsafe.Pointer) C.int8_t {
	if value == nil {
		return 0
	}
	cgo.Handle(uintptr(value)).Delete()
	return 0
}

//export tl_print_int
func tl_print_int(value C.int64_t) C.int8_t {
	fmt.Println(int64(value))
	return 0
}

//export tl_print_double
func tl_print_double(value C.double) C.int8_t {
	fmt.Println(float64(value))
	return 0
}

//export tl_print_bool
func tl_print_bool(value C.int8_t) C.int8_t {
	if value != 0 {
		fmt.Println("True")
	} else {
		fmt.Println("False")
	}
	return 0
}

func boolToInt(v bool) C.int8_t {
	if v {
		return 1
	}
	return 0
}
