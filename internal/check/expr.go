package check

import (
	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/types"
)

// checkValue resolves v's type as far as possible this sweep and returns
// it (still Unknown if dependencies are themselves unresolved).
func (c *Checker) checkValue(v ir.Value) types.Type {
	if v == nil {
		return types.New()
	}
	switch n := v.(type) {
	case *ir.Constant:
		return n.Typ
	case *ir.Sequence:
		return c.checkSequence(n)
	case *ir.StructLiteral:
		return c.checkStructLiteral(n)
	case *ir.Load:
		c.checkRef(n.Ref)
		updated, err := types.Update(n.Typ, n.Ref.Type())
		if err == nil {
			n.Typ = updated
		}
		return n.Typ
	case *ir.Call:
		return c.checkCall(n)
	case *ir.Unary:
		return c.checkUnary(n)
	case *ir.Binary:
		return c.checkBinary(n)
	case ir.Ref:
		c.checkRef(n)
		return n.Type()
	default:
		return types.New()
	}
}

func (c *Checker) checkSequence(n *ir.Sequence) types.Type {
	seq, ok := n.Typ.(*types.Sequence)
	if !ok {
		return n.Typ
	}
	for _, el := range n.Elements {
		elt := c.checkValue(el)
		if types.IsUnknown(elt) {
			continue
		}
		updated, err := types.Update(seq.Elem, elt)
		if err != nil {
			c.error(lexer.Position{}, err.Error())
			continue
		}
		seq.Elem = updated
	}
	return seq
}

func (c *Checker) checkStructLiteral(n *ir.StructLiteral) types.Type {
	st, ok := n.StructType.(*types.Struct)
	if !ok {
		return n.StructType
	}
	if len(n.Fields) != len(st.Fields) {
		c.error(lexer.Position{}, "struct literal field count does not match "+st.Name)
		return st
	}
	for i, f := range n.Fields {
		ft := c.checkValue(f)
		if types.IsUnknown(ft) {
			continue
		}
		updated, err := types.Update(st.Fields[i].Type, ft)
		if err != nil {
			c.error(lexer.Position{}, err.Error())
			continue
		}
		st.Fields[i].Type = updated
	}
	return st
}

// checkCall resolves the target's signature (a free function, a method
// reached through a field selector, or a value of function type) and
// unifies each argument against the matching parameter (§4.G "Calls" —
// mirrors the deferred parameter inference the Python original gestures
// at with `if target.typ.param_types[i] is None: ...`).
func (c *Checker) checkCall(n *ir.Call) types.Type {
	switch target := n.Target.(type) {
	case *ir.FunctionRef:
		c.checkRef(target)
		sig, ok := target.Type().(*types.Function)
		if !ok {
			return n.Typ
		}
		return c.unifyCall(n, sig.Params, sig.Return)
	case *ir.FieldRef:
		c.checkRef(target)
		parentType := target.Parent.Type()
		if !parentType.Known() {
			return n.Typ
		}
		st, ok := parentType.(*types.Struct)
		if !ok {
			return n.Typ
		}
		fn, ok := st.Methods()[target.Name()]
		if !ok {
			c.error(target.Pos(), "no method "+target.Name()+" on "+st.Name)
			return n.Typ
		}
		return c.unifyCall(n, fn.Params, fn.Return)
	default:
		vt := c.checkValue(target)
		sig, ok := vt.(*types.Function)
		if !ok {
			return n.Typ
		}
		return c.unifyCall(n, sig.Params, sig.Return)
	}
}

func (c *Checker) unifyCall(n *ir.Call, params []types.Type, ret types.Type) types.Type {
	if len(n.Args) != len(params) {
		c.error(n.At, "call arity mismatch")
	}
	for i, a := range n.Args {
		if i >= len(params) {
			break
		}
		at := c.checkValue(a)
		if types.IsUnknown(at) {
			continue
		}
		updated, err := types.Update(params[i], at)
		if err != nil {
			c.error(n.At, err.Error())
			continue
		}
		params[i] = updated
	}
	updated, err := types.Update(n.Typ, ret)
	if err == nil {
		n.Typ = updated
	}
	return n.Typ
}

func (c *Checker) checkUnary(n *ir.Unary) types.Type {
	ot := c.checkValue(n.Operand)
	if types.IsUnknown(ot) {
		return n.Typ
	}
	switch n.Op {
	case "-":
		if !types.IsNumeric(ot) {
			c.error(n.At, "unary - requires a numeric operand")
		}
	case "!":
		if !types.IsBool(ot) {
			c.error(n.At, "unary ! requires a bool operand")
		}
	}
	updated, err := types.Update(n.Typ, ot)
	if err == nil {
		n.Typ = updated
	}
	return n.Typ
}

// checkBinary mirrors binary_op_preds/get_binary_numeric from the Python
// original: comparisons need matching operand kinds and produce bool,
// `/` always widens to float, `+` additionally accepts two strings, and
// the remaining arithmetic operators widen int < rational < float.
func (c *Checker) checkBinary(n *ir.Binary) types.Type {
	lt := c.checkValue(n.Left)
	rt := c.checkValue(n.Right)
	if types.IsUnknown(lt) || types.IsUnknown(rt) {
		return n.Typ
	}

	var result types.Type
	switch n.Op {
	case "==", "!=", "<", "<=", ">", ">=":
		if !operandsMatch(lt, rt) {
			c.error(n.At, "mismatched operand types")
		}
		result = types.BoolType
	case "/":
		if !types.IsNumeric(lt) || !types.IsNumeric(rt) {
			c.error(n.At, "/ requires numeric operands")
		}
		result = types.FloatType
	case "+":
		if types.IsString(lt) && types.IsString(rt) {
			result = types.StrType
		} else if types.IsNumeric(lt) && types.IsNumeric(rt) {
			result = types.Widen(lt, rt)
		} else {
			c.error(n.At, "+ requires two strings or two numeric operands")
			result = types.New()
		}
	case "-", "*":
		if !types.IsNumeric(lt) || !types.IsNumeric(rt) {
			c.error(n.At, "operator "+n.Op+" requires numeric operands")
			result = types.New()
		} else {
			result = types.Widen(lt, rt)
		}
	default:
		c.error(n.At, "unknown operator "+n.Op)
		result = types.New()
	}

	updated, err := types.Update(n.Typ, result)
	if err == nil {
		n.Typ = updated
	}
	return n.Typ
}

func operandsMatch(a, b types.Type) bool {
	if types.IsNumeric(a) && types.IsNumeric(b) {
		return true
	}
	return a.String() == b.String()
}
