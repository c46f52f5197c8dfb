package runtimeabi

/*
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// dictEntry and dictionary are the Go analogs of dict.rs's TlDictEntry and
// TlDictionary: a class name plus an ordered list of (methodID, value)
// pairs. The value is always a pointer-kind box wrapping a real function
// pointer, set up by the per-carrier builders in methods.go.
type dictEntry struct {
	methodID int64
	value    unsafe.Pointer
}

type dictionary struct {
	className string
	entries   []dictEntry
}

// dictBuilder is the mutable accumulator tl_dict_builder_* operates on,
// mirroring dict.rs's TlDictBuilder.
type dictBuilder struct {
	className string
	entries   []dictEntry
}

//export tl_dict_builder_new
func tl_dict_builder_new(className *C.char) unsafe.Pointer {
	if className == nil {
		setLastError(StatusNullPointer)
		return nil
	}
	setLastError(StatusOk)
	return unsafe.Pointer(cgo.NewHandle(&dictBuilder{className: C.GoString(className)}))
}

//export tl_dict_builder_push
func tl_dict_builder_push(builder unsafe.Pointer, name *C.char, value unsafe.Pointer) {
	tl_dict_builder_push_ext(builder, name, 0, nil, value)
}

//export tl_dict_builder_push_ext
func tl_dict_builder_push_ext(builder unsafe.Pointer, name *C.char, methodID C.int64_t, signature *C.char, value unsafe.Pointer) {
	b, ok := unboxBuilder(builder)
	if !ok {
		setLastError(StatusNullPointer)
		return
	}
	_ = name      // kept for ABI parity with dict.rs; lookup is by methodID only.
	_ = signature // diagnostic-only in the grounding source, unused here.
	b.entries = append(b.entries, dictEntry{methodID: int64(methodID), value: value})
	setLastError(StatusOk)
}

//export tl_dict_builder_finish
func tl_dict_builder_finish(builder unsafe.Pointer) unsafe.Pointer {
	b, ok := unboxBuilder(builder)
	if !ok {
		setLastError(StatusNullPointer)
		return nil
	}
	d := &dictionary{className: b.className, entries: append([]dictEntry(nil), b.entries...)}
	setLastError(StatusOk)
	return unsafe.Pointer(cgo.NewHandle(d))
}

//export tl_dict_builder_dispose
func tl_dict_builder_dispose(builder unsafe.Pointer) {
	if builder == nil {
		return
	}
	cgo.Handle(uintptr(builder)).Delete()
}

//export tl_dict_lookup
func tl_dict_lookup(dict unsafe.Pointer, methodID C.int64_t) unsafe.Pointer {
	d, ok := unboxDict(dict)
	if !ok {
		setLastError(StatusNullPointer)
		return nil
	}
	for _, e := range d.entries {
		if e.methodID == int64(methodID) {
			setLastError(StatusOk)
			return e.value
		}
	}
	setLastError(StatusInvalidArgument)
	return nil
}

//export tl_dict_free
func tl_dict_free(dict unsafe.Pointer) C.int8_t {
	if dict == nil {
		return 0
	}
	cgo.Handle(uintptr(dict)).Delete()
	return 0
}

func unboxBuilder(v unsafe.Pointer) (*dictBuilder, bool) {
	if v == nil {
		return nil, false
	}
	h := cgo.Handle(uintptr(v))
	b, ok := h.Value().(*dictBuilder)
	return b, ok
}

func unboxDict(v unsafe.Pointer) (*dictionary, bool) {
	if v == nil {
		return nil, false
	}
	h := cgo.Handle(uintptr(v))
	d, ok := h.Value().(*dictionary)
	return d, ok
}
