package typecheck

import "github.com/ing-lang/ingc/internal/ast"

// collectVariableTypes is Pass 1 (spec.md 4.F): record the declared type of
// every VarDef — function arguments, free-standing VarDecls, and
// VarDecls local to a function body — plus every function's own name
// bound to its return type. Struct definitions do not contribute.
func (c *Checker) collectVariableTypes() {
	for _, fn := range c.allFunctions() {
		c.varTypes[mustResolved(fn.Name)] = fn.ReturnType
		c.funcDefs[mustResolved(fn.Name)] = fn
		for _, arg := range fn.Args {
			c.varTypes[mustResolved(arg.Name)] = arg.Type
		}
		if fn.Body != nil {
			c.collectBlock(fn.Body)
		}
	}
	for _, vd := range c.allGlobalVars() {
		c.varTypes[mustResolved(vd.VarDef.Name)] = vd.VarDef.Type
	}
}

// collectBlock walks a block recursively, registering every VarDecl it
// finds (as a local Stmt, or as a nested Definition) and descending into
// every nested block reachable through a statement.
func (c *Checker) collectBlock(b *ast.Block) {
	for _, def := range b.Definitions {
		if vd, ok := def.(*ast.VarDecl); ok {
			c.varTypes[mustResolved(vd.VarDef.Name)] = vd.VarDef.Type
		}
		if fn, ok := def.(*ast.FnDef); ok {
			c.varTypes[mustResolved(fn.Name)] = fn.ReturnType
			c.funcDefs[mustResolved(fn.Name)] = fn
			for _, arg := range fn.Args {
				c.varTypes[mustResolved(arg.Name)] = arg.Type
			}
			if fn.Body != nil {
				c.collectBlock(fn.Body)
			}
		}
	}
	for _, stmt := range b.Statements {
		c.collectStmt(stmt)
	}
}

func (c *Checker) collectStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		c.varTypes[mustResolved(s.VarDef.Name)] = s.VarDef.Type
	case *ast.If:
		c.collectBlock(s.Then)
		if s.Else != nil {
			c.collectBlock(s.Else)
		}
	case *ast.While:
		c.collectBlock(s.Body)
	case *ast.For:
		if s.Init != nil {
			c.collectStmt(s.Init)
		}
		if s.Post != nil {
			c.collectStmt(s.Post)
		}
		c.collectBlock(s.Body)
	case *ast.Block:
		c.collectBlock(s)
	}
}
