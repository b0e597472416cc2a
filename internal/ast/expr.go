package ast

import (
	"fmt"
	"strings"
)

// ExprNode is implemented by the concrete expression variants. Expression
// (below) wraps one of these together with the type annotation filled in
// by the type resolver (component F).
type ExprNode interface {
	Node
	exprNode()
}

// Expression is spec.md 3's `Expression { expr, type_? }`. Type is nil
// until the type resolver visits this node; every well-formed program has
// Type != nil on every Expression once F completes (invariant 4).
type Expression struct {
	Node ExprNode
	Type *Type
	Pos  Pos
}

func (e *Expression) String() string {
	if e.Node == nil {
		return "<empty>"
	}
	return e.Node.String()
}

func (e *Expression) Position() Pos { return e.Pos }

// LiteralKind enumerates literal shapes.
type LiteralKind int

const (
	LitNull LiteralKind = iota
	LitBool
	LitInt
	LitDecimal
	LitString
	LitCompound
)

// Literal is an atomic constant. Value holds the parsed Go value for
// scalar kinds (bool, int64, float64, string) and is nil for Null and
// Compound; CompoundFields holds the field expressions of a Compound
// literal, which StructInit consumes and validates.
type Literal struct {
	Kind           LiteralKind
	Value          any
	CompoundFields map[string]*Expression
	Pos            Pos
}

func (l *Literal) exprNode() {}
func (l *Literal) Position() Pos { return l.Pos }
func (l *Literal) String() string {
	switch l.Kind {
	case LitNull:
		return "null"
	case LitCompound:
		parts := make([]string, 0, len(l.CompoundFields))
		for k, v := range l.CompoundFields {
			parts = append(parts, fmt.Sprintf("%s: %s", k, v.String()))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", l.Value)
	}
}

// NamePath is a variable reference optionally followed by dotted field
// access segments (spec.md 3). Segments are resolved against struct
// definitions by the type resolver, never by the scope table (invariant 5:
// a NamePath whose head is not a struct must have an empty Path).
type NamePath struct {
	Name *Reference
	Path []string
	Pos  Pos
}

func (n *NamePath) Position() Pos { return n.Pos }
func (n *NamePath) String() string {
	if len(n.Path) == 0 {
		return n.Name.String()
	}
	return n.Name.String() + "." + strings.Join(n.Path, ".")
}

// Variable wraps a NamePath used in expression position.
type Variable struct {
	Path *NamePath
	Pos  Pos
}

func (v *Variable) exprNode()       {}
func (v *Variable) Position() Pos   { return v.Pos }
func (v *Variable) String() string  { return v.Path.String() }

// FnCall is a function call expression; during pass 2 of the type
// resolver its argument count and types are checked against the callee's
// parameters (when the callee is in this package), with mismatches
// reported as TypeError::MultipleTypes (DESIGN.md).
type FnCall struct {
	Name *Reference
	Args []*Expression
	Pos  Pos
}

func (f *FnCall) exprNode()     {}
func (f *FnCall) Position() Pos { return f.Pos }
func (f *FnCall) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Name.String(), strings.Join(parts, ", "))
}

// StructInit constructs a struct value. TypeRef names the struct type;
// Fields holds the initializer expressions keyed by field name.
type StructInit struct {
	TypeRef    *Reference
	Fields     map[string]*Expression
	FieldOrder []string
	Pos        Pos
}

func (s *StructInit) exprNode()     {}
func (s *StructInit) Position() Pos { return s.Pos }
func (s *StructInit) String() string {
	parts := make([]string, 0, len(s.FieldOrder))
	for _, name := range s.FieldOrder {
		parts = append(parts, fmt.Sprintf("%s: %s", name, s.Fields[name].String()))
	}
	return fmt.Sprintf("%s { %s }", s.TypeRef.String(), strings.Join(parts, ", "))
}

// UnaryExpr is a unary operator application.
type UnaryExpr struct {
	Op      UnOp
	Operand *Expression
	Pos     Pos
}

func (u *UnaryExpr) exprNode()     {}
func (u *UnaryExpr) Position() Pos { return u.Pos }
func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", u.Op.String(), u.Operand.String())
}

// BinaryExpr is a binary operator application.
type BinaryExpr struct {
	Op    BinOp
	Left  *Expression
	Right *Expression
	Pos   Pos
}

func (b *BinaryExpr) exprNode()     {}
func (b *BinaryExpr) Position() Pos { return b.Pos }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.String(), b.Right.String())
}
