package runtimeabi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListEmptyIsNilAndEmpty(t *testing.T) {
	empty := tl_list_empty()
	require.Nil(t, empty)
	require.NotZero(t, tl_list_is_empty(empty))
}

func TestListConsHeadTail(t *testing.T) {
	h1 := tl_value_from_int(1)
	h2 := tl_value_from_int(2)

	tail := tl_list_cons(h2, tl_list_empty())
	list := tl_list_cons(h1, tail)

	require.Zero(t, tl_list_is_empty(list))
	require.Equal(t, h1, tl_list_head(list))
	require.Equal(t, tail, tl_list_tail(list))

	second := tl_list_tail(list)
	require.Equal(t, h2, tl_list_head(second))
	require.NotZero(t, tl_list_is_empty(tl_list_tail(second)))
}

func TestListHeadOnEmptyIsInvalidArgument(t *testing.T) {
	got := tl_list_head(tl_list_empty())
	require.Nil(t, got)
	require.EqualValues(t, StatusInvalidArgument, getLastError())
}

func TestListFreeWalksSpineWithoutPanicking(t *testing.T) {
	h1 := tl_value_from_int(1)
	h2 := tl_value_from_int(2)
	list := tl_list_cons(h1, tl_list_cons(h2, tl_list_empty()))

	require.NotPanics(t, func() {
		require.Zero(t, tl_list_free(list))
	})
}
