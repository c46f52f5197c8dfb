package runtimeabi

/*
#include <stdint.h>
#include <stdlib.h>

// Forward declarations of this file's own //export'd functions. cgo emits
// the matching C definitions into the package's generated _cgo_export.c, so
// declaring the prototypes here and taking their address is the standard
// way for a cgo package to hand one of its own exported functions to
// foreign code as a callable pointer (internal/codegen's genDictDispatch
// bitcasts exactly such a pointer to the target signature and calls it
// directly, per spec.md §4.4 "dictionary method dispatch").
extern int64_t tl_Num_Int_add(int64_t, int64_t);
extern int64_t tl_Num_Int_sub(int64_t, int64_t);
extern int64_t tl_Num_Int_mul(int64_t, int64_t);
extern int64_t tl_Num_Int_fromInt(int64_t);

extern double tl_Num_Double_add(double, double);
extern double tl_Num_Double_sub(double, double);
extern double tl_Num_Double_mul(double, double);
extern double tl_Num_Double_fromInt(int64_t);

extern double tl_Fractional_Double_divide(double, double);
extern double tl_Fractional_Double_recip(double);
extern double tl_Fractional_Double_fromRational(double);

extern int64_t tl_Integral_Int_div(int64_t, int64_t);
extern int64_t tl_Integral_Int_mod(int64_t, int64_t);
extern int64_t tl_Integral_Int_quot(int64_t, int64_t);
extern int64_t tl_Integral_Int_rem(int64_t, int64_t);

extern int8_t tl_Eq_Int_eq(int64_t, int64_t);
extern int8_t tl_Eq_Int_neq(int64_t, int64_t);
extern int8_t tl_Eq_Double_eq(double, double);
extern int8_t tl_Eq_Double_neq(double, double);
extern int8_t tl_Eq_Bool_eq(int8_t, int8_t);
extern int8_t tl_Eq_Bool_neq(int8_t, int8_t);

extern int8_t tl_Ord_Int_lt(int64_t, int64_t);
extern int8_t tl_Ord_Int_le(int64_t, int64_t);
extern int8_t tl_Ord_Int_gt(int64_t, int64_t);
extern int8_t tl_Ord_Int_ge(int64_t, int64_t);
extern int8_t tl_Ord_Double_lt(double, double);
extern int8_t tl_Ord_Double_le(double, double);
extern int8_t tl_Ord_Double_gt(double, double);
extern int8_t tl_Ord_Double_ge(double, double);

extern int8_t tl_BoolLogic_Bool_and(int8_t, int8_t);
extern int8_t tl_BoolLogic_Bool_or(int8_t, int8_t);
extern int8_t tl_BoolLogic_Bool_not(int8_t);

// One address-of helper per symbol: a C function is not a first-class
// value on the Go side of cgo, so each pointer has to be materialized in C
// and handed back as a plain void*.
static void *addr_tl_Num_Int_add(void)       { return (void *)tl_Num_Int_add; }
static void *addr_tl_Num_Int_sub(void)       { return (void *)tl_Num_Int_sub; }
static void *addr_tl_Num_Int_mul(void)       { return (void *)tl_Num_Int_mul; }
static void *addr_tl_Num_Int_fromInt(void)   { return (void *)tl_Num_Int_fromInt; }

static void *addr_tl_Num_Double_add(void)     { return (void *)tl_Num_Double_add; }
static void *addr_tl_Num_Double_sub(void)     { return (void *)tl_Num_Double_sub; }
static void *addr_tl_Num_Double_mul(void)     { return (void *)tl_Num_Double_mul; }
static void *addr_tl_Num_Double_fromInt(void) { return (void *)tl_Num_Double_fromInt; }

static void *addr_tl_Fractional_Double_divide(void)       { return (void *)tl_Fractional_Double_divide; }
static void *addr_tl_Fractional_Double_recip(void)        { return (void *)tl_Fractional_Double_recip; }
static void *addr_tl_Fractional_Double_fromRational(void) { return (void *)tl_Fractional_Double_fromRational; }

static void *addr_tl_Integral_Int_div(void)  { return (void *)tl_Integral_Int_div; }
static void *addr_tl_Integral_Int_mod(void)  { return (void *)tl_Integral_Int_mod; }
static void *addr_tl_Integral_Int_quot(void) { return (void *)tl_Integral_Int_quot; }
static void *addr_tl_Integral_Int_rem(void)  { return (void *)tl_Integral_Int_rem; }

static void *addr_tl_Eq_Int_eq(void)     { return (void *)tl_Eq_Int_eq; }
static void *addr_tl_Eq_Int_neq(void)    { return (void *)tl_Eq_Int_neq; }
static void *addr_tl_Eq_Double_eq(void)  { return (void *)tl_Eq_Double_eq; }
static void *addr_tl_Eq_Double_neq(void) { return (void *)tl_Eq_Double_neq; }
static void *addr_tl_Eq_Bool_eq(void)    { return (void *)tl_Eq_Bool_eq; }
static void *addr_tl_Eq_Bool_neq(void)   { return (void *)tl_Eq_Bool_neq; }

static void *addr_tl_Ord_Int_lt(void) { return (void *)tl_Ord_Int_lt; }
static void *addr_tl_Ord_Int_le(void) { return (void *)tl_Ord_Int_le; }
static void *addr_tl_Ord_Int_gt(void) { return (void *)tl_Ord_Int_gt; }
static void *addr_tl_Ord_Int_ge(void) { return (void *)tl_Ord_Int_ge; }
static void *addr_tl_Ord_Double_lt(void) { return (void *)tl_Ord_Double_lt; }
static void *addr_tl_Ord_Double_le(void) { return (void *)tl_Ord_Double_le; }
static void *addr_tl_Ord_Double_gt(void) { return (void *)tl_Ord_Double_gt; }
static void *addr_tl_Ord_Double_ge(void) { return (void *)tl_Ord_Double_ge; }

static void *addr_tl_BoolLogic_Bool_and(void) { return (void *)tl_BoolLogic_Bool_and; }
static void *addr_tl_BoolLogic_Bool_or(void)  { return (void *)tl_BoolLogic_Bool_or; }
static void *addr_tl_BoolLogic_Bool_not(void) { return (void *)tl_BoolLogic_Bool_not; }
*/
import "C"

import (
	"math"
	"unsafe"
)

// --- Num[Int] -----------------------------------------------------------
//
// Int arithmetic saturates instead of wrapping, matching
// runtime_native/src/dict.rs's tl_num_int_{add,sub,mul} (i64::saturating_*).

// saturatingAddInt64 pins the result at math.MaxInt64/math.MinInt64 instead
// of wrapping when lhs+rhs overflows an int64.
func saturatingAddInt64(lhs, rhs int64) int64 {
	sum := lhs + rhs
	if lhs > 0 && rhs > 0 && sum < 0 {
		return math.MaxInt64
	}
	if lhs < 0 && rhs < 0 && sum > 0 {
		return math.MinInt64
	}
	return sum
}

// saturatingSubInt64 pins the result at math.MaxInt64/math.MinInt64 instead
// of wrapping when lhs-rhs overflows an int64.
func saturatingSubInt64(lhs, rhs int64) int64 {
	diff := lhs - rhs
	if rhs < 0 && diff < lhs {
		return math.MaxInt64
	}
	if rhs > 0 && diff > lhs {
		return math.MinInt64
	}
	return diff
}

// saturatingMulInt64 pins the result at math.MaxInt64/math.MinInt64 instead
// of wrapping when lhs*rhs overflows an int64.
func saturatingMulInt64(lhs, rhs int64) int64 {
	if lhs == 0 || rhs == 0 {
		return 0
	}
	product := lhs * rhs
	if product/rhs != lhs {
		if (lhs > 0) == (rhs > 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return product
}

//export tl_Num_Int_add
func tl_Num_Int_add(lhs, rhs C.int64_t) C.int64_t {
	return C.int64_t(saturatingAddInt64(int64(lhs), int64(rhs)))
}

//export tl_Num_Int_sub
func tl_Num_Int_sub(lhs, rhs C.int64_t) C.int64_t {
	return C.int64_t(saturatingSubInt64(int64(lhs), int64(rhs)))
}

//export tl_Num_Int_mul
func tl_Num_Int_mul(lhs, rhs C.int64_t) C.int64_t {
	return C.int64_t(saturatingMulInt64(int64(lhs), int64(rhs)))
}

//export tl_Num_Int_fromInt
func tl_Num_Int_fromInt(v C.int64_t) C.int64_t { return v }

// --- Num[Double] ----------------------------------------------------------

//export tl_Num_Double_add
func tl_Num_Double_add(lhs, rhs C.double) C.double { return lhs + rhs }

//export tl_Num_Double_sub
func tl_Num_Double_sub(lhs, rhs C.double) C.double { return lhs - rhs }

//export tl_Num_Double_mul
func tl_Num_Double_mul(lhs, rhs C.double) C.double { return lhs * rhs }

//export tl_Num_Double_fromInt
func tl_Num_Double_fromInt(v C.int64_t) C.double { return C.double(int64(v)) }

// --- Fractional[Double] ----------------------------------------------------

//export tl_Fractional_Double_divide
func tl_Fractional_Double_divide(lhs, rhs C.double) C.double { return lhs / rhs }

//export tl_Fractional_Double_recip
func tl_Fractional_Double_recip(v C.double) C.double { return 1.0 / v }

//export tl_Fractional_Double_fromRational
func tl_Fractional_Double_fromRational(v C.double) C.double { return v }

// --- Integral[Int] ----------------------------------------------------------

//export tl_Integral_Int_div
func tl_Integral_Int_div(lhs, rhs C.int64_t) C.int64_t {
	if rhs == 0 {
		return 0
	}
	return C.int64_t(floorDiv(int64(lhs), int64(rhs)))
}

//export tl_Integral_Int_mod
func tl_Integral_Int_mod(lhs, rhs C.int64_t) C.int64_t {
	if rhs == 0 {
		return 0
	}
	return C.int64_t(floorMod(int64(lhs), int64(rhs)))
}

//export tl_Integral_Int_quot
func tl_Integral_Int_quot(lhs, rhs C.int64_t) C.int64_t {
	if rhs == 0 {
		return 0
	}
	return lhs / rhs
}

//export tl_Integral_Int_rem
func tl_Integral_Int_rem(lhs, rhs C.int64_t) C.int64_t {
	if rhs == 0 {
		return 0
	}
	return lhs % rhs
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}

// --- Eq ---------------------------------------------------------------------

//export tl_Eq_Int_eq
func tl_Eq_Int_eq(lhs, rhs C.int64_t) C.int8_t { return boolToInt(lhs == rhs) }

//export tl_Eq_Int_neq
func tl_Eq_Int_neq(lhs, rhs C.int64_t) C.int8_t { return boolToInt(lhs != rhs) }

//export tl_Eq_Double_eq
func tl_Eq_Double_eq(lhs, rhs C.double) C.int8_t { return boolToInt(lhs == rhs) }

//export tl_Eq_Double_neq
func tl_Eq_Double_neq(lhs, rhs C.double) C.int8_t { return boolToInt(lhs != rhs) }

//export tl_Eq_Bool_eq
func tl_Eq_Bool_eq(lhs, rhs C.int8_t) C.int8_t { return boolToInt((lhs != 0) == (rhs != 0)) }

//export tl_Eq_Bool_neq
func tl_Eq_Bool_neq(lhs, rhs C.int8_t) C.int8_t { return boolToInt((lhs != 0) != (rhs != 0)) }

// --- Ord ----------------------------------------------------------------------

//export tl_Ord_Int_lt
func tl_Ord_Int_lt(lhs, rhs C.int64_t) C.int8_t { return boolToInt(lhs < rhs) }

//export tl_Ord_Int_le
func tl_Ord_Int_le(lhs, rhs C.int64_t) C.int8_t { return boolToInt(lhs <= rhs) }

//export tl_Ord_Int_gt
func tl_Ord_Int_gt(lhs, rhs C.int64_t) C.int8_t { return boolToInt(lhs > rhs) }

//export tl_Ord_Int_ge
func tl_Ord_Int_ge(lhs, rhs C.int64_t) C.int8_t { return boolToInt(lhs >= rhs) }

//export tl_Ord_Double_lt
func tl_Ord_Double_lt(lhs, rhs C.double) C.int8_t { return boolToInt(lhs < rhs) }

//export tl_Ord_Double_le
func tl_Ord_Double_le(lhs, rhs C.double) C.int8_t { return boolToInt(lhs <= rhs) }

//export tl_Ord_Double_gt
func tl_Ord_Double_gt(lhs, rhs C.double) C.int8_t { return boolToInt(lhs > rhs) }

//export tl_Ord_Double_ge
func tl_Ord_Double_ge(lhs, rhs C.double) C.int8_t { return boolToInt(lhs >= rhs) }

// --- BoolLogic[Bool] ------------------------------------------------------------

//export tl_BoolLogic_Bool_and
func tl_BoolLogic_Bool_and(lhs, rhs C.int8_t) C.int8_t { return boolToInt(lhs != 0 && rhs != 0) }

//export tl_BoolLogic_Bool_or
func tl_BoolLogic_Bool_or(lhs, rhs C.int8_t) C.int8_t { return boolToInt(lhs != 0 || rhs != 0) }

//export tl_BoolLogic_Bool_not
func tl_BoolLogic_Bool_not(v C.int8_t) C.int8_t { return boolToInt(v == 0) }

// builtinMethod names one catalog method's concrete implementation, by
// method id, so buildDictionary can assemble a dictionary the same way
// dict_fallback.rs's build_dictionary does: push one pointer-valued entry
// per method, keyed by its catalog-wide numeric id.
type builtinMethod struct {
	methodID int64
	fnPtr    unsafe.Pointer
}

// buildDictionary mirrors dict_fallback.rs's build_dictionary: open a
// builder, push each method as a tl_value_from_ptr-boxed function pointer,
// finish, dispose the builder, and return the assembled dictionary.
func buildDictionary(className string, methods []builtinMethod) unsafe.Pointer {
	cName := C.CString(className)
	defer C.free(unsafe.Pointer(cName))

	builder := tl_dict_builder_new(cName)
	if builder == nil {
		return nil
	}
	defer tl_dict_builder_dispose(builder)

	for _, m := range methods {
		value := tl_value_from_ptr(m.fnPtr)
		tl_dict_builder_push_ext(builder, nil, C.int64_t(m.methodID), nil, value)
	}
	return tl_dict_builder_finish(builder)
}

//export tl_dict_build_Num_Int
func tl_dict_build_Num_Int() unsafe.Pointer {
	return buildDictionary("Num[Int]", []builtinMethod{
		{0, C.addr_tl_Num_Int_add()},
		{1, C.addr_tl_Num_Int_sub()},
		{2, C.addr_tl_Num_Int_mul()},
		{3, C.addr_tl_Num_Int_fromInt()},
	})
}

//export tl_dict_build_Num_Double
func tl_dict_build_Num_Double() unsafe.Pointer {
	return buildDictionary("Num[Double]", []builtinMethod{
		{0, C.addr_tl_Num_Double_add()},
		{1, C.addr_tl_Num_Double_sub()},
		{2, C.addr_tl_Num_Double_mul()},
		{3, C.addr_tl_Num_Double_fromInt()},
	})
}

//export tl_dict_build_Fractional_Double
func tl_dict_build_Fractional_Double() unsafe.Pointer {
	return buildDictionary("Fractional[Double]", []builtinMethod{
		{10, C.addr_tl_Fractional_Double_divide()},
		{11, C.addr_tl_Fractional_Double_recip()},
		{12, C.addr_tl_Fractional_Double_fromRational()},
	})
}

//export tl_dict_build_Integral_Int
func tl_dict_build_Integral_Int() unsafe.Pointer {
	return buildDictionary("Integral[Int]", []builtinMethod{
		{20, C.addr_tl_Integral_Int_div()},
		{21, C.addr_tl_Integral_Int_mod()},
		{22, C.addr_tl_Integral_Int_quot()},
		{23, C.addr_tl_Integral_Int_rem()},
	})
}

//export tl_dict_build_Eq_Int
func tl_dict_build_Eq_Int() unsafe.Pointer {
	return buildDictionary("Eq[Int]", []builtinMethod{
		{30, C.addr_tl_Eq_Int_eq()},
		{31, C.addr_tl_Eq_Int_neq()},
	})
}

//export tl_dict_build_Eq_Double
func tl_dict_build_Eq_Double() unsafe.Pointer {
	return buildDictionary("Eq[Double]", []builtinMethod{
		{30, C.addr_tl_Eq_Double_eq()},
		{31, C.addr_tl_Eq_Double_neq()},
	})
}

//export tl_dict_build_Eq_Bool
func tl_dict_build_Eq_Bool() unsafe.Pointer {
	return buildDictionary("Eq[Bool]", []builtinMethod{
		{30, C.addr_tl_Eq_Bool_eq()},
		{31, C.addr_tl_Eq_Bool_neq()},
	})
}

//export tl_dict_build_Ord_Int
func tl_dict_build_Ord_Int() unsafe.Pointer {
	return buildDictionary("Ord[Int]", []builtinMethod{
		{40, C.addr_tl_Ord_Int_lt()},
		{41, C.addr_tl_Ord_Int_le()},
		{42, C.addr_tl_Ord_Int_gt()},
		{43, C.addr_tl_Ord_Int_ge()},
	})
}

//export tl_dict_build_Ord_Double
func tl_dict_build_Ord_Double() unsafe.Pointer {
	return buildDictionary("Ord[Double]", []builtinMethod{
		{40, C.addr_tl_Ord_Double_lt()},
		{41, C.addr_tl_Ord_Double_le()},
		{42, C.addr_tl_Ord_Double_gt()},
		{43, C.addr_tl_Ord_Double_ge()},
	})
}

//export tl_dict_build_BoolLogic_Bool
func tl_dict_build_BoolLogic_Bool() unsafe.Pointer {
	return buildDictionary("BoolLogic[Bool]", []builtinMethod{
		{50, C.addr_tl_BoolLogic_Bool_and()},
		{51, C.addr_tl_BoolLogic_Bool_or()},
		{52, C.addr_tl_BoolLogic_Bool_not()},
	})
}
