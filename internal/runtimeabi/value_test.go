package runtimeabi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueIntRoundTrip(t *testing.T) {
	v := tl_value_from_int(42)
	require.NotNil(t, v)
	require.EqualValues(t, 42, tl_value_to_int(v))
	require.EqualValues(t, 42.0, tl_value_to_double(v))
	require.NotZero(t, tl_value_to_bool(v))
	require.EqualValues(t, StatusOk, getLastError())
}

func TestValueBoolConvertsToBoolAndInt(t *testing.T) {
	v := tl_value_from_bool(1)
	require.NotNil(t, v)
	require.NotZero(t, tl_value_to_bool(v))
	require.EqualValues(t, 1, tl_value_to_int(v))
}

func TestValueZeroIntIsFalsy(t *testing.T) {
	v := tl_value_from_int(0)
	require.Zero(t, tl_value_to_bool(v))
}

func TestValueToPtrRejectsNonPointerKind(t *testing.T) {
	v := tl_value_from_int(7)
	got := tl_value_to_ptr(v)
	require.Nil(t, got)
	require.EqualValues(t, StatusInvalidArgument, getLastError())
}

func TestValueFromNilPtrSetsNullPointer(t *testing.T) {
	got := tl_value_from_ptr(nil)
	require.Nil(t, got)
	require.EqualValues(t, StatusNullPointer, getLastError())
}

func TestValueToIntOnNilHandleSetsNullPointer(t *testing.T) {
	got := tl_value_to_int(nil)
	require.Zero(t, got)
	require.EqualValues(t, StatusNullPointer, getLastError())
}

func TestValueReleaseDeletesHandle(t *testing.T) {
	v := tl_value_from_int(5)
	require.Zero(t, tl_value_release(v))
	// cgo.Handle.Value panics on an already-deleted handle; release must not
	// be called twice on the same value, matching value.rs's single-owner
	// Box::from_raw semantics.
	require.Panics(t, func() { unboxHandle(v) })
}
