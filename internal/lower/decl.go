package lower

import (
	"fmt"

	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/parser/ast"
	"github.com/hassan/langcore/internal/types"
)

func (l *Lowerer) VisitFuncDecl(d *ast.FuncDecl) error {
	params := make([]*ir.ParameterRef, len(d.Sig.Params))
	paramTypes := make([]types.Type, len(d.Sig.Params))
	for i, p := range d.Sig.Params {
		pr := ir.NewParameterRef(p.Name, d.Sig.Pos())
		hint := l.typeExprToType(p.Type)
		pr.SetType(hint)
		params[i] = pr
		paramTypes[i] = hint
	}
	ret := types.New()
	if d.Sig.Result != nil {
		ret = l.typeExprToType(d.Sig.Result)
	}

	fn := ir.NewFunctionRef(d.Sig.Name, params, d.Pos())
	fn.SetType(&types.Function{Params: paramTypes, Return: ret})
	fn.DeclaredReturn = d.Sig.Result != nil
	l.scope.Declare(d.Sig.Name, fn)
	l.emit(&ir.Declare{Ref: fn, At: d.Pos()})

	outerBlock, outerScope, outerFn := l.block, l.scope, l.fn
	entry := ir.NewBlock()
	fn.Entry = entry
	l.block = entry
	l.scope = outerScope.Child()
	l.fn = fn
	for _, p := range params {
		l.scope.Declare(p.Name(), p)
	}

	err := d.Body.Accept(l)
	l.block, l.scope, l.fn = outerBlock, outerScope, outerFn
	return err
}

func (l *Lowerer) VisitStructDecl(d *ast.StructDecl) error {
	fields := make([]types.Field, len(d.Fields))
	for i, f := range d.Fields {
		fields[i] = types.Field{Name: f.Name, Type: l.typeExprToType(f.Type)}
	}
	l.structTypes[d.Name] = &types.Struct{Name: d.Name, Fields: fields}
	return nil
}

func (l *Lowerer) VisitInterfaceDecl(d *ast.InterfaceDecl) error {
	methods := make(map[string]*types.Function, len(d.Methods))
	for _, sig := range d.Methods {
		params := make([]types.Type, len(sig.Params))
		for i, p := range sig.Params {
			params[i] = l.typeExprToType(p.Type)
		}
		ret := types.Type(types.NoReturn)
		if sig.Result != nil {
			ret = l.typeExprToType(sig.Result)
		}
		methods[sig.Name] = &types.Function{Params: params, Return: ret}
	}
	l.ifaceTypes[d.Name] = &types.Interface{Name: d.Name, Methods_: methods}
	return nil
}

func (l *Lowerer) VisitImplDecl(d *ast.ImplDecl) error {
	target, ok := l.structTypes[d.Target]
	if !ok {
		l.error(d.Pos(), "undeclared type "+d.Target)
		return fmt.Errorf("undeclared type %s", d.Target)
	}

	var iface *types.Interface
	if d.Interface != "" {
		iface, ok = l.ifaceTypes[d.Interface]
		if !ok {
			l.error(d.Pos(), "undeclared interface "+d.Interface)
			return fmt.Errorf("undeclared interface %s", d.Interface)
		}
	}

	implBlock := ir.NewBlock()
	outerBlock, outerScope := l.block, l.scope
	l.block = implBlock
	l.scope = outerScope.Child()
	for _, m := range d.Methods {
		if err := l.lowerMethod(m, target); err != nil {
			l.block, l.scope = outerBlock, outerScope
			return err
		}
	}
	l.block, l.scope = outerBlock, outerScope

	l.emit(&ir.DeclareMethods{Target: target, Interface: iface, Block: implBlock, At: d.Pos()})
	return nil
}

// lowerMethod is VisitFuncDecl's counterpart for impl-block methods: the
// same block/scope/fn bookkeeping, with an implicit `self` parameter of
// the impl's target type prepended (§4.G "A method's first parameter is
// the implicit self of type T").
func (l *Lowerer) lowerMethod(m *ast.FuncDecl, target *types.Struct) error {
	params := make([]*ir.ParameterRef, 0, len(m.Sig.Params)+1)
	paramTypes := make([]types.Type, 0, len(m.Sig.Params)+1)

	self := ir.NewParameterRef("self", m.Pos())
	self.SetType(target)
	params = append(params, self)
	paramTypes = append(paramTypes, target)

	for _, p := range m.Sig.Params {
		pr := ir.NewParameterRef(p.Name, m.Pos())
		hint := l.typeExprToType(p.Type)
		pr.SetType(hint)
		params = append(params, pr)
		paramTypes = append(paramTypes, hint)
	}
	ret := types.New()
	if m.Sig.Result != nil {
		ret = l.typeExprToType(m.Sig.Result)
	}

	fn := ir.NewFunctionRef(m.Sig.Name, params, m.Pos())
	sig := &types.Function{Params: paramTypes, Return: ret}
	fn.SetType(sig)
	fn.DeclaredReturn = m.Sig.Result != nil
	types.AddMethod(target, m.Sig.Name, sig)
	l.emit(&ir.Declare{Ref: fn, At: m.Pos()})

	outerBlock, outerScope, outerFn := l.block, l.scope, l.fn
	entry := ir.NewBlock()
	fn.Entry = entry
	l.block = entry
	l.scope = outerScope.Child()
	l.fn = fn
	for _, p := range params {
		l.scope.Declare(p.Name(), p)
	}

	err := m.Body.Accept(l)
	l.block, l.scope, l.fn = outerBlock, outerScope, outerFn
	return err
}

func (l *Lowerer) VisitVarDecl(d *ast.VarDecl) error {
	ref := ir.NewVariableRef(d.Name, d.Pos())
	hint := l.typeExprToType(d.Type)
	ref.SetType(hint)
	l.scope.Declare(d.Name, ref)
	l.emit(&ir.Declare{Ref: ref, At: d.Pos()})

	if d.Value != nil {
		val, err := l.lowerExpr(d.Value)
		if err != nil {
			return err
		}
		ref.AddValue(val)
		l.emit(&ir.Assign{Target: ref, Val: val, At: d.Pos()})
	}
	return nil
}

func (l *Lowerer) VisitConstDecl(d *ast.ConstDecl) error {
	ref := ir.NewVariableRef(d.Name, d.Pos())
	ref.Constant = true
	ref.SetType(l.typeExprToType(d.Type))
	l.scope.Declare(d.Name, ref)
	l.emit(&ir.Declare{Ref: ref, At: d.Pos()})

	val, err := l.lowerExpr(d.Value)
	if err != nil {
		return err
	}
	ref.AddValue(val)
	l.emit(&ir.Assign{Target: ref, Val: val, At: d.Pos()})
	return nil
}
