// Package errors centralizes stable, classified error codes and the
// structured Report type used across every compile phase.
package errors

// Error code constants, grouped by phase (spec.md §4.6/§7). The front-end
// parser prefix (PAR*) is carried over from the teacher's own
// taxonomy since codegen and lowering funnel every error through the same
// Report shape, but only TYPE*, COREIR*, CODEGEN* and the runtime statuses
// are ever produced by this repo's own components.
const (
	// ============================================================
	// Parser errors (PAR###) — external front end, kept for Report shape
	// ============================================================
	PAR001 = "PAR001"
	PAR002 = "PAR002"

	// ============================================================
	// Type system errors (TYPE###) — internal/types, internal/infer
	// ============================================================

	// TYPE001 indicates a unification mismatch: different constructors,
	// mismatched tuple arity, or function vs. non-function.
	TYPE001 = "TYPE001"
	// TYPE002 indicates an occurs-check failure: a variable's own identity
	// appears in the type it would be bound to.
	TYPE002 = "TYPE002"
	// TYPE003 indicates constraint entailment could not be discharged.
	TYPE003 = "TYPE003"
	// TYPE010 indicates an unbound variable reference.
	TYPE010 = "TYPE010"

	// ============================================================
	// Core IR lowering errors (COREIR###) — internal/lower
	// ============================================================

	// COREIR021 indicates the Value-kind parameter count does not match the
	// surface parameter count.
	COREIR021 = "COREIR021"
	// COREIR033 indicates a scheme could not be flattened into a parameter
	// list (malformed function type).
	COREIR033 = "COREIR033"
	// COREIR050 indicates a forbidden local lambda.
	COREIR050 = "COREIR050"
	// COREIR054 indicates Match arm bodies fail to unify.
	COREIR054 = "COREIR054"
	// COREIR070 indicates an unresolved identifier during lowering.
	COREIR070 = "COREIR070"
	// COREIR080 indicates no concrete or dictionary-fallback BinOpSpec case
	// matched the operand kinds.
	COREIR080 = "COREIR080"
	// COREIR132 indicates a value-argument count mismatch at an Apply site.
	COREIR132 = "COREIR132"
	// COREIR162 indicates a non-empty list pattern (unsupported: nested
	// list patterns are rejected).
	COREIR162 = "COREIR162"
	// COREIR163 indicates a non-empty tuple pattern (unsupported: nested
	// tuple patterns are rejected), or a constructor pattern whose argument
	// count differs from the constructor's arity.
	COREIR163 = "COREIR163"
	// COREIR170 indicates a class or instance declaration reached the
	// lowerer (rejected: user-defined classes are out of scope).
	COREIR170 = "COREIR170"

	// ============================================================
	// Native codegen errors (CODEGEN###) — internal/codegen
	// ============================================================

	// CODEGEN001 indicates the entry function is missing.
	CODEGEN001 = "CODEGEN001"
	// CODEGEN002 indicates the entry function has dictionary parameters
	// (an entry point must be fully monomorphic).
	CODEGEN002 = "CODEGEN002"
	// CODEGEN003 indicates the entry function's result type is not one of
	// Int, Double, Bool, Unit.
	CODEGEN003 = "CODEGEN003"
	// CODEGEN004 indicates the host ISA could not be determined.
	CODEGEN004 = "CODEGEN004"
	// CODEGEN005 indicates target machine creation failed.
	CODEGEN005 = "CODEGEN005"
	// CODEGEN006 indicates module verification failed before emission.
	CODEGEN006 = "CODEGEN006"
	// CODEGEN041 indicates a Function/Primitive/Intrinsic variable was used
	// as a first-class value (unsupported: no closures).
	CODEGEN041 = "CODEGEN041"
	// CODEGEN050 indicates a function-typed Let binding (unsupported).
	CODEGEN050 = "CODEGEN050"
	// CODEGEN070 indicates a Core construct codegen cannot resolve or has no
	// rule for: an unsupported backend, expression or primop, an unbound
	// local, an unknown function, constructor, class or method, a missing
	// dictionary, or a match binding path that is not one level deep.
	CODEGEN070 = "CODEGEN070"
	// CODEGEN100 indicates an unsupported ValueTy at the native boundary
	// (Char, String, Tuple, Function).
	CODEGEN100 = "CODEGEN100"
	// CODEGEN105 indicates object-file emission failed.
	CODEGEN105 = "CODEGEN105"
	// CODEGEN214 indicates an unsupported coercion between ValueTys.
	CODEGEN214 = "CODEGEN214"
	// CODEGEN300 indicates the link driver (cc) exited non-zero.
	CODEGEN300 = "CODEGEN300"
)

// ErrorInfo describes one error code for documentation/lookup purposes.
type ErrorInfo struct {
	Code        string
	Phase       string
	Description string
}

// ErrorRegistry maps every code this repo produces to its ErrorInfo.
var ErrorRegistry = map[string]ErrorInfo{
	TYPE001: {TYPE001, "typecheck", "Unification mismatch"},
	TYPE002: {TYPE002, "typecheck", "Occurs check failed"},
	TYPE003: {TYPE003, "typecheck", "Constraint entailment failed"},
	TYPE010: {TYPE010, "typecheck", "Unbound variable"},

	COREIR021: {COREIR021, "lower", "Parameter count mismatch"},
	COREIR033: {COREIR033, "lower", "Malformed scheme"},
	COREIR050: {COREIR050, "lower", "Local lambda forbidden"},
	COREIR054: {COREIR054, "lower", "Match arm type mismatch"},
	COREIR070: {COREIR070, "lower", "Unresolved identifier"},
	COREIR080: {COREIR080, "lower", "No matching BinOpSpec case"},
	COREIR132: {COREIR132, "lower", "Apply argument count mismatch"},
	COREIR162: {COREIR162, "lower", "Non-empty list pattern"},
	COREIR163: {COREIR163, "lower", "Non-empty tuple pattern or constructor pattern arity mismatch"},
	COREIR170: {COREIR170, "lower", "Class/instance declaration rejected"},

	CODEGEN001: {CODEGEN001, "codegen", "Missing entry function"},
	CODEGEN002: {CODEGEN002, "codegen", "Entry function is polymorphic"},
	CODEGEN003: {CODEGEN003, "codegen", "Unsupported entry result type"},
	CODEGEN004: {CODEGEN004, "codegen", "Host ISA detection failed"},
	CODEGEN005: {CODEGEN005, "codegen", "Target machine creation failed"},
	CODEGEN006: {CODEGEN006, "codegen", "Module verification failed"},
	CODEGEN041: {CODEGEN041, "codegen", "Function used as first-class value"},
	CODEGEN050: {CODEGEN050, "codegen", "Function-typed let binding"},
	CODEGEN070: {CODEGEN070, "codegen", "Unresolved or unsupported Core construct"},
	CODEGEN100: {CODEGEN100, "codegen", "Unsupported native ValueTy"},
	CODEGEN105: {CODEGEN105, "codegen", "Object emission failed"},
	CODEGEN214: {CODEGEN214, "codegen", "Unsupported coercion"},
	CODEGEN300: {CODEGEN300, "codegen", "Link driver failed"},
}

// GetErrorInfo returns the registered information for a code, if known.
func GetErrorInfo(code string) (ErrorInfo, bool) {
	info, ok := ErrorRegistry[code]
	return info, ok
}
