package check

import (
	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/types"
)

// checkConformance asserts that an impl block's method set matches its
// declared interface name-for-name, each signature unified with Update
// (self stripped from the receiver's parameter list before comparison).
// The Python original only asserted `isinstance(interface, types.Interface)`
// at the impl site; this is the stricter exact method-set check the
// language's interfaces call for.
func (c *Checker) checkConformance(n *ir.DeclareMethods) {
	st, ok := n.Target.(*types.Struct)
	if !ok {
		return
	}
	have := st.Methods()
	want := n.Interface.Methods_

	for name, reqSig := range want {
		got, ok := have[name]
		if !ok {
			c.error(n.At, st.Name+" does not implement "+n.Interface.Name+": missing method "+name)
			continue
		}
		gotSig := stripSelf(got)
		if _, err := types.Update(gotSig, reqSig); err != nil {
			c.error(n.At, st.Name+"."+name+" does not match "+n.Interface.Name+"."+name+": "+err.Error())
		}
	}
	for name := range have {
		if _, ok := want[name]; !ok {
			c.error(n.At, st.Name+"."+name+" is not part of interface "+n.Interface.Name)
		}
	}
}

func stripSelf(fn *types.Function) *types.Function {
	if len(fn.Params) == 0 {
		return fn
	}
	return &types.Function{Params: fn.Params[1:], Return: fn.Return}
}
