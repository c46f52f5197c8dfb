package runtimeabi

/*
#include <stdint.h>
*/
import "C"

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumIntArithmetic(t *testing.T) {
	require.EqualValues(t, 7, tl_Num_Int_add(3, 4))
	require.EqualValues(t, -1, tl_Num_Int_sub(3, 4))
	require.EqualValues(t, 12, tl_Num_Int_mul(3, 4))
	require.EqualValues(t, 9, tl_Num_Int_fromInt(9))
}

func TestNumIntArithmeticSaturatesInsteadOfWrapping(t *testing.T) {
	maxInt64 := C.int64_t(math.MaxInt64)
	minInt64 := C.int64_t(math.MinInt64)

	require.EqualValues(t, math.MaxInt64, tl_Num_Int_add(maxInt64, 1))
	require.EqualValues(t, math.MinInt64, tl_Num_Int_add(minInt64, -1))
	require.EqualValues(t, math.MaxInt64, tl_Num_Int_sub(maxInt64, -1))
	require.EqualValues(t, math.MinInt64, tl_Num_Int_sub(minInt64, 1))
	require.EqualValues(t, math.MaxInt64, tl_Num_Int_mul(maxInt64, 2))
	require.EqualValues(t, math.MinInt64, tl_Num_Int_mul(minInt64, 2))
}

func TestFractionalDoubleDivideAndRecip(t *testing.T) {
	require.InDelta(t, 2.5, float64(tl_Fractional_Double_divide(5, 2)), 1e-9)
	require.InDelta(t, 0.5, float64(tl_Fractional_Double_recip(2)), 1e-9)
}

func TestIntegralIntFlooringSemantics(t *testing.T) {
	// Flooring division/modulo, distinct from truncating quot/rem: -7 / 2
	// floors to -4 (Integral_Int_div) but truncates to -3 (Integral_Int_quot).
	require.EqualValues(t, -4, tl_Integral_Int_div(-7, 2))
	require.EqualValues(t, 1, tl_Integral_Int_mod(-7, 2))
	require.EqualValues(t, -3, tl_Integral_Int_quot(-7, 2))
	require.EqualValues(t, -1, tl_Integral_Int_rem(-7, 2))
}

func TestIntegralIntDivisionByZeroIsZeroNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		require.Zero(t, tl_Integral_Int_div(1, 0))
		require.Zero(t, tl_Integral_Int_mod(1, 0))
		require.Zero(t, tl_Integral_Int_quot(1, 0))
		require.Zero(t, tl_Integral_Int_rem(1, 0))
	})
}

func TestEqAndOrd(t *testing.T) {
	require.NotZero(t, tl_Eq_Int_eq(5, 5))
	require.Zero(t, tl_Eq_Int_eq(5, 6))
	require.NotZero(t, tl_Ord_Int_lt(1, 2))
	require.NotZero(t, tl_Ord_Double_ge(3.5, 3.5))
}

func TestBoolLogic(t *testing.T) {
	require.NotZero(t, tl_BoolLogic_Bool_and(1, 1))
	require.Zero(t, tl_BoolLogic_Bool_and(1, 0))
	require.NotZero(t, tl_BoolLogic_Bool_or(0, 1))
	require.NotZero(t, tl_BoolLogic_Bool_not(0))
	require.Zero(t, tl_BoolLogic_Bool_not(1))
}

func TestDictBuildNumIntExposesAllMethods(t *testing.T) {
	dict := tl_dict_build_Num_Int()
	require.NotNil(t, dict)

	for _, id := range []int64{0, 1, 2, 3} {
		box := tl_dict_lookup(dict, C.int64_t(id))
		require.NotNilf(t, box, "method id %d missing from Num[Int] dictionary", id)
		fn := tl_value_to_ptr(box)
		require.NotNilf(t, fn, "method id %d did not unbox to a pointer", id)
	}
}

func TestDictBuildBoolLogicBoolExposesAllMethods(t *testing.T) {
	dict := tl_dict_build_BoolLogic_Bool()
	require.NotNil(t, dict)

	for _, id := range []int64{50, 51, 52} {
		box := tl_dict_lookup(dict, C.int64_t(id))
		require.NotNilf(t, box, "method id %d missing from BoolLogic[Bool] dictionary", id)
	}
}
