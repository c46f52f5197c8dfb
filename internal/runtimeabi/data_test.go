package runtimeabi

/*
#include <stdint.h>
*/
import "C"

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestDataPackTagArityField(t *testing.T) {
	f0 := tl_value_from_int(10)
	f1 := tl_value_from_int(20)
	fields := []unsafe.Pointer{f0, f1}

	d := tl_data_pack(7, &fields[0], C.int64_t(len(fields)))
	require.NotNil(t, d)
	require.EqualValues(t, 7, tl_data_tag(d))
	require.EqualValues(t, 2, tl_data_arity(d))
	require.Equal(t, f0, tl_data_field(d, 0))
	require.Equal(t, f1, tl_data_field(d, 1))
}

func TestDataPackZeroArity(t *testing.T) {
	d := tl_data_pack(3, nil, 0)
	require.NotNil(t, d)
	require.EqualValues(t, 0, tl_data_arity(d))
}

func TestDataFieldOutOfRangeIsInvalidArgument(t *testing.T) {
	d := tl_data_pack(1, nil, 0)
	got := tl_data_field(d, 0)
	require.Nil(t, got)
	require.EqualValues(t, StatusInvalidArgument, getLastError())
}

func TestDataPackNegativeLengthIsInvalidArgument(t *testing.T) {
	got := tl_data_pack(1, nil, -1)
	require.Nil(t, got)
	require.EqualValues(t, StatusInvalidArgument, getLastError())
}

func TestDataPackNullFieldsWithPositiveLengthIsNullPointer(t *testing.T) {
	got := tl_data_pack(1, nil, 3)
	require.Nil(t, got)
	require.EqualValues(t, StatusNullPointer, getLastError())
}

func TestDataFreeIsSafeOnValidHandle(t *testing.T) {
	d := tl_data_pack(1, nil, 0)
	require.NotPanics(t, func() {
		require.Zero(t, tl_data_free(d))
	})
}
