package ast

// TypeKind enumerates the fixed set of types in the source language
// (spec.md 3: Type ∈ {Void, Bool, Int, Float, Double, String, Struct(Reference)}).
type TypeKind int

const (
	Void TypeKind = iota
	Bool
	Int
	Float
	Double
	String
	Struct
)

func (k TypeKind) String() string {
	switch k {
	case Void:
		return "Void"
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case String:
		return "String"
	case Struct:
		return "Struct"
	default:
		return "InvalidType"
	}
}

// Type is a resolved type. StructRef is populated only when Kind ==
// Struct, and by the time a Type reaches the merged definition table its
// Ref.GlobalResolved must be filled (struct equality is nominal, compared
// on the global name — spec.md 4.F).
type Type struct {
	Kind      TypeKind
	StructRef *Reference
}

// Equal implements spec.md 4.F's nominal struct-type comparison: two
// struct types are equal iff their global resolved names match; all other
// kinds compare by kind alone.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind != Struct {
		return true
	}
	if t.StructRef == nil || other.StructRef == nil {
		return t.StructRef == other.StructRef
	}
	if t.StructRef.GlobalResolved == nil || other.StructRef.GlobalResolved == nil {
		return false
	}
	return *t.StructRef.GlobalResolved == *other.StructRef.GlobalResolved
}

func (t Type) String() string {
	if t.Kind == Struct && t.StructRef != nil {
		return "Struct(" + t.StructRef.String() + ")"
	}
	return t.Kind.String()
}

func IsNumeric(t Type) bool {
	return t.Kind == Int || t.Kind == Float || t.Kind == Double
}

// UnOp enumerates the unary operators of spec.md 3.
type UnOp int

const (
	Neg UnOp = iota
	Not
	Deref
	Ref
	PreInc
	PreDec
	PostInc
	PostDec
)

func (op UnOp) String() string {
	switch op {
	case Neg:
		return "-"
	case Not:
		return "!"
	case Deref:
		return "*"
	case Ref:
		return "&"
	case PreInc:
		return "++_"
	case PreDec:
		return "--_"
	case PostInc:
		return "_++"
	case PostDec:
		return "_--"
	default:
		return "?unop?"
	}
}

// BinOp enumerates the binary operators of spec.md 3.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Neq
	Lt
	Gt
	Leq
	Geq
	And
	Or
)

func (op BinOp) String() string {
	names := [...]string{"+", "-", "*", "/", "%", "==", "!=", "<", ">", "<=", ">=", "&&", "||"}
	if int(op) < len(names) {
		return names[op]
	}
	return "?binop?"
}

// IsArithmetic reports whether op belongs to the {Add,Sub,Mul,Div,Mod} class.
func (op BinOp) IsArithmetic() bool {
	return op == Add || op == Sub || op == Mul || op == Div || op == Mod
}

// IsOrdering reports whether op belongs to the {Lt,Gt,Leq,Geq} class.
func (op BinOp) IsOrdering() bool {
	return op == Lt || op == Gt || op == Leq || op == Geq
}

// IsEquality reports whether op belongs to the {Eq,Neq} class.
func (op BinOp) IsEquality() bool {
	return op == Eq || op == Neq
}

// IsBoolean reports whether op belongs to the {And,Or} class.
func (op BinOp) IsBoolean() bool {
	return op == And || op == Or
}
