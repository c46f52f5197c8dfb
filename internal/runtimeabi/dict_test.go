package runtimeabi

/*
#include <stdlib.h>
*/
import "C"

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestDictBuilderPushFinishLookup(t *testing.T) {
	name := C.CString("Eq[Int]")
	defer C.free(unsafe.Pointer(name))

	builder := tl_dict_builder_new(name)
	require.NotNil(t, builder)

	eqVal := tl_value_from_int(1)
	tl_dict_builder_push_ext(builder, nil, 30, nil, eqVal)

	dict := tl_dict_builder_finish(builder)
	require.NotNil(t, dict)
	tl_dict_builder_dispose(builder)

	got := tl_dict_lookup(dict, 30)
	require.Equal(t, eqVal, got)
}

func TestDictLookupUnknownMethodIsInvalidArgument(t *testing.T) {
	name := C.CString("Eq[Int]")
	defer C.free(unsafe.Pointer(name))

	builder := tl_dict_builder_new(name)
	dict := tl_dict_builder_finish(builder)
	tl_dict_builder_dispose(builder)

	got := tl_dict_lookup(dict, 999)
	require.Nil(t, got)
	require.EqualValues(t, StatusInvalidArgument, getLastError())
}

func TestDictBuilderNewWithNilNameIsNullPointer(t *testing.T) {
	got := tl_dict_builder_new(nil)
	require.Nil(t, got)
	require.EqualValues(t, StatusNullPointer, getLastError())
}

func TestDictFreeIsSafeOnValidHandle(t *testing.T) {
	name := C.CString("Num[Int]")
	defer C.free(unsafe.Pointer(name))
	builder := tl_dict_builder_new(name)
	dict := tl_dict_builder_finish(builder)
	tl_dict_builder_dispose(builder)

	require.NotPanics(t, func() {
		require.Zero(t, tl_dict_free(dict))
	})
}
