package lower

import (
	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/parser/ast"
)

func (l *Lowerer) VisitBlockStmt(s *ast.BlockStmt) error {
	for _, st := range s.Stmts {
		if err := st.Accept(l); err != nil {
			return err
		}
	}
	return nil
}

func (l *Lowerer) VisitDeclStmt(s *ast.DeclStmt) error {
	return s.Decl.Accept(l)
}

func (l *Lowerer) VisitExprStmt(s *ast.ExprStmt) error {
	v, err := l.lowerExpr(s.X)
	if err != nil {
		return err
	}
	if instr, ok := v.(ir.Instruction); ok {
		l.emit(instr)
	}
	return nil
}

// VisitIfStmt lowers `if cond then [else]` into a CBranch from the
// predecessor block, one block per arm, and a shared merge block that
// becomes the new current block (§4.D).
func (l *Lowerer) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := l.lowerExpr(s.Cond)
	if err != nil {
		return err
	}
	pred := l.block
	thenBlock := ir.NewBlock()
	merge := ir.NewBlock()
	falseTarget := merge
	var elseBlock *ir.Block
	if s.Else != nil {
		elseBlock = ir.NewBlock()
		falseTarget = elseBlock
	}

	pred.Emit(&ir.CBranch{Cond: cond, True: thenBlock, False: falseTarget})
	pred.AddDep(thenBlock)
	pred.AddDep(falseTarget)

	l.block = thenBlock
	if err := s.Then.Accept(l); err != nil {
		return err
	}
	if !l.block.Terminated() {
		l.block.Emit(&ir.Branch{Target: merge})
		l.block.AddDep(merge)
	}

	if elseBlock != nil {
		l.block = elseBlock
		if err := s.Else.Accept(l); err != nil {
			return err
		}
		if !l.block.Terminated() {
			l.block.Emit(&ir.Branch{Target: merge})
			l.block.AddDep(merge)
		}
	}

	l.block = merge
	return nil
}

// VisitWhileStmt lowers `while cond do body` into a dedicated cond block
// (so the condition is re-evaluated each iteration), a loop body block, and
// an exit block that becomes current after the loop (§4.D).
func (l *Lowerer) VisitWhileStmt(s *ast.WhileStmt) error {
	pred := l.block
	cond := ir.NewBlock()
	pred.Emit(&ir.Branch{Target: cond})
	pred.AddDep(cond)

	l.block = cond
	condVal, err := l.lowerExpr(s.Cond)
	if err != nil {
		return err
	}

	body := ir.NewBlock()
	exit := ir.NewBlock()
	cond.Emit(&ir.CBranch{Cond: condVal, True: body, False: exit})
	cond.AddDep(body)
	cond.AddDep(exit)

	l.block = body
	if err := s.Body.Accept(l); err != nil {
		return err
	}
	if !l.block.Terminated() {
		l.block.Emit(&ir.Branch{Target: cond})
		l.block.AddDep(cond)
	}

	l.block = exit
	return nil
}

func (l *Lowerer) VisitReturnStmt(s *ast.ReturnStmt) error {
	var val ir.Value
	if s.Value != nil {
		v, err := l.lowerExpr(s.Value)
		if err != nil {
			return err
		}
		val = v
	}
	if l.fn != nil {
		l.fn.ReturnValues = append(l.fn.ReturnValues, val)
	}
	l.emit(&ir.Return{Val: val, At: s.Pos()})
	return nil
}

func (l *Lowerer) VisitAssignStmt(s *ast.AssignStmt) error {
	target, err := l.lowerRef(s.Target)
	if err != nil {
		return err
	}
	val, err := l.lowerExpr(s.Value)
	if err != nil {
		return err
	}
	target.AddValue(val)
	l.emit(&ir.Assign{Target: target, Val: val, At: s.Pos()})
	return nil
}
