package runtimeabi

/*
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// dataValue is the Go analog of data.rs's TlData: a constructor tag plus its
// boxed field values, produced by a genCtorApply call in internal/codegen
// and consumed by a genMatch/extractField pair.
type dataValue struct {
	tag    uint32
	fields []unsafe.Pointer
}

//export tl_data_pack
func tl_data_pack(tag C.int64_t, fields *unsafe.Pointer, length C.int64_t) unsafe.Pointer {
	n := int(length)
	if n < 0 {
		setLastError(StatusInvalidArgument)
		return nil
	}
	if n > 0 && fields == nil {
		setLastError(StatusNullPointer)
		return nil
	}
	var fs []unsafe.Pointer
	if n > 0 {
		fs = make([]unsafe.Pointer, n)
		src := unsafe.Slice(fields, n)
		copy(fs, src)
	}
	setLastError(StatusOk)
	return unsafe.Pointer(cgo.NewHandle(&dataValue{tag: uint32(tag), fields: fs}))
}

//export tl_data_tag
func tl_data_tag(data unsafe.Pointer) C.int64_t {
	d, ok := unboxData(data)
	if !ok {
		setLastError(StatusInvalidArgument)
		return 0
	}
	setLastError(StatusOk)
	return C.int64_t(d.tag)
}

//export tl_data_arity
func tl_data_arity(data unsafe.Pointer) C.int64_t {
	d, ok := unboxData(data)
	if !ok {
		setLastError(StatusInvalidArgument)
		return 0
	}
	setLastError(StatusOk)
	return C.int64_t(len(d.fields))
}

//export tl_data_field
func tl_data_field(data unsafe.Pointer, index C.int64_t) unsafe.Pointer {
	d, ok := unboxData(data)
	if !ok {
		setLastError(StatusInvalidArgument)
		return nil
	}
	i := int(index)
	if i < 0 || i >= len(d.fields) {
		setLastError(StatusInvalidArgument)
		return nil
	}
	setLastError(StatusOk)
	return d.fields[i]
}

//export tl_data_free
func tl_data_free(data unsafe.Pointer) C.int8_t {
	if data == nil {
		return 0
	}
	if _, ok := unboxData(data); ok {
		cgo.Handle(uintptr(data)).Delete()
	}
	return 0
}

func unboxData(v unsafe.Pointer) (*dataValue, bool) {
	if v == nil {
		return nil, false
	}
	h := cgo.Handle(uintptr(v))
	d, ok := h.Value().(*dataValue)
	return d, ok
}
