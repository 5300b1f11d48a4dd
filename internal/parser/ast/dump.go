package ast

import (
	"fmt"
	"strings"
)

// Dump renders prog as an indented tree, one declaration per top-level
// entry — a debugging aid for the `compiler parse` subcommand, not part
// of any wire format.
func Dump(prog *Program) string {
	var b strings.Builder
	for _, d := range prog.Decls {
		dumpNode(&b, d, 0)
	}
	return b.String()
}

func dumpNode(b *strings.Builder, n interface{}, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *FuncDecl:
		fmt.Fprintf(b, "%sFuncDecl %s\n", indent, v.Sig.Name)
		dumpNode(b, v.Body, depth+1)
	case *StructDecl:
		fmt.Fprintf(b, "%sStructDecl %s (%d fields)\n", indent, v.Name, len(v.Fields))
	case *InterfaceDecl:
		fmt.Fprintf(b, "%sInterfaceDecl %s (%d methods)\n", indent, v.Name, len(v.Methods))
	case *ImplDecl:
		fmt.Fprintf(b, "%sImplDecl %s for %s\n", indent, v.Interface, v.Target)
		for _, m := range v.Methods {
			dumpNode(b, m, depth+1)
		}
	case *VarDecl:
		fmt.Fprintf(b, "%sVarDecl %s\n", indent, v.Name)
	case *ConstDecl:
		fmt.Fprintf(b, "%sConstDecl %s\n", indent, v.Name)
	case *BlockStmt:
		fmt.Fprintf(b, "%sBlockStmt\n", indent)
		for _, s := range v.Stmts {
			dumpNode(b, s, depth+1)
		}
	case *DeclStmt:
		fmt.Fprintf(b, "%sDeclStmt\n", indent)
		dumpNode(b, v.Decl, depth+1)
	case *ExprStmt:
		fmt.Fprintf(b, "%sExprStmt\n", indent)
	case *IfStmt:
		fmt.Fprintf(b, "%sIfStmt\n", indent)
		dumpNode(b, v.Then, depth+1)
		if v.Else != nil {
			dumpNode(b, v.Else, depth+1)
		}
	case *WhileStmt:
		fmt.Fprintf(b, "%sWhileStmt\n", indent)
		dumpNode(b, v.Body, depth+1)
	case *ReturnStmt:
		fmt.Fprintf(b, "%sReturnStmt\n", indent)
	case *AssignStmt:
		fmt.Fprintf(b, "%sAssignStmt\n", indent)
	default:
		fmt.Fprintf(b, "%s%T\n", indent, v)
	}
}
