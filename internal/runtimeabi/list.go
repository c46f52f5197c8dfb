package runtimeabi

/*
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// listNode is the Go analog of list.rs's TlListNode, minus the explicit
// EMPTY_TAG/CONS_TAG discriminant: the empty list is represented as a nil
// pointer at the ABI boundary, so only cons cells ever need a handle.
type listNode struct {
	head unsafe.Pointer // a value handle, as returned by tl_value_from_*
	tail unsafe.Pointer // nil (empty) or another listNode handle
}

//export tl_list_empty
func tl_list_empty() unsafe.Pointer {
	setLastError(StatusOk)
	return nil
}

//export tl_list_cons
func tl_list_cons(head unsafe.Pointer, tail unsafe.Pointer) unsafe.Pointer {
	setLastError(StatusOk)
	return unsafe.Pointer(cgo.NewHandle(&listNode{head: head, tail: tail}))
}

//export tl_list_is_empty
func tl_list_is_empty(list unsafe.Pointer) C.int8_t {
	setLastError(StatusOk)
	return boolToInt(list == nil)
}

//export tl_list_head
func tl_list_head(list unsafe.Pointer) unsafe.Pointer {
	n, ok := unboxList(list)
	if !ok {
		setLastError(StatusInvalidArgument)
		return nil
	}
	setLastError(StatusOk)
	return n.head
}

//export tl_list_tail
func tl_list_tail(list unsafe.Pointer) unsafe.Pointer {
	n, ok := unboxList(list)
	if !ok {
		setLastError(StatusInvalidArgument)
		return nil
	}
	setLastError(StatusOk)
	return n.tail
}

// tl_list_free walks the spine releasing each cons cell's handle, matching
// list.rs's tl_list_free: it never releases the head values themselves,
// since those handles may still be reachable from elsewhere.
//
//export tl_list_free
func tl_list_free(list unsafe.Pointer) C.int8_t {
	cur := list
	for cur != nil {
		n, ok := unboxList(cur)
		if !ok {
			break
		}
		next := n.tail
		cgo.Handle(uintptr(cur)).Delete()
		cur = next
	}
	return 0
}

func unboxList(v unsafe.Pointer) (*listNode, bool) {
	if v == nil {
		return nil, false
	}
	h := cgo.Handle(uintptr(v))
	n, ok := h.Value().(*listNode)
	return n, ok
}
