package runtimeabi

/*
#include <stdint.h>
*/
import "C"

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusRoundTripsThroughCode(t *testing.T) {
	for _, s := range []TlStatus{StatusOk, StatusInvalidArgument, StatusAllocationFailure, StatusNullPointer} {
		code := tl_status_to_code(C.int32_t(s))
		require.EqualValues(t, s, tl_status_from_code(code))
	}
}

func TestStatusFromCodeRejectsUnknownValue(t *testing.T) {
	got := tl_status_from_code(C.int32_t(99))
	require.EqualValues(t, StatusInvalidArgument, got)
}

func TestStatusMessagesAreNonEmpty(t *testing.T) {
	for _, s := range []TlStatus{StatusOk, StatusInvalidArgument, StatusAllocationFailure, StatusNullPointer} {
		require.NotEmpty(t, s.message())
	}
}

func TestLastErrorReflectsMostRecentCallOnThisGoroutine(t *testing.T) {
	setLastError(StatusOk)
	require.EqualValues(t, StatusOk, getLastError())

	tl_value_to_ptr(tl_value_from_int(1)) // wrong kind: sets InvalidArgument
	require.EqualValues(t, StatusInvalidArgument, getLastError())
}
