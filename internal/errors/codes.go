// Package errors provides the structured error taxonomy for the ingc
// front-end. Every user-facing failure surfaces as a *Report with one of
// the codes below; internal invariant violations panic instead
// (spec.md 7: "panics are reserved for invariant violations").
package errors

const (
	// ============================================================
	// Discovery errors (component B) — DIS0xx
	// ============================================================

	// DIS001 indicates a `mod name;` declaration has no matching file.
	DIS001 = "DIS001"

	// DIS002 indicates two `mod` declarations in the same parent map to
	// the same module path.
	DIS002 = "DIS002"

	// DIS003 indicates the external parser failed on a discovered file.
	DIS003 = "DIS003"

	// ============================================================
	// Resolution errors (components C, D) — RES0xx
	// ============================================================

	// RES001 indicates a variable/function/struct reference with no
	// binding in scope.
	RES001 = "RES001"

	// RES002 indicates a name redefined in the same scope frame.
	RES002 = "RES002"

	// RES003 indicates a `use` path that could not be resolved to an
	// exported definition.
	RES003 = "RES003"

	// RES004 indicates an unqualified reference that could not be
	// resolved against the owning module's definitions.
	RES004 = "RES004"

	// ============================================================
	// Type errors (component F) — TC0xx
	// ============================================================

	// TC001 indicates a declaration or assignment whose declared type and
	// expression type differ (also covers call-site argument mismatch,
	// DESIGN.md Open Question).
	TC001 = "TC001"

	// TC002 indicates a unary operator applied to an incompatible operand
	// type.
	TC002 = "TC002"

	// TC003 indicates a binary operator applied to incompatible operand
	// types.
	TC003 = "TC003"

	// TC004 indicates a dotted field access through a non-struct type or
	// naming a field the struct does not have.
	TC004 = "TC004"

	// TC005 indicates a `return` expression whose type does not match the
	// enclosing function's declared return type.
	TC005 = "TC005"

	// TC006 indicates an if/while/for condition that is not Bool.
	TC006 = "TC006"

	// ============================================================
	// Internal errors — never triggered by valid or even invalid user
	// input; these are programmer-logic errors in the front-end itself
	// and are raised as panics, never returned as a Report.
	// ============================================================

	INT001 = "INT001" // InternalMergeConflict
	INT002 = "INT002" // MissingResolution
)

// Phase names used in Report.Phase.
const (
	PhaseDiscovery  = "discovery"
	PhaseResolve    = "resolve"
	PhaseMerge      = "merge"
	PhaseTypecheck  = "typecheck"
	PhaseParse      = "parse"
)
