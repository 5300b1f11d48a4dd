package check

import (
	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/types"
)

// checkRef resolves r's type as far as this sweep allows, returning
// whether it is now fully known. The progress map breaks self-reference
// cycles (a field ref whose parent is itself still being resolved) within
// a single sweep; genuine multi-sweep refinement is driven by Check's
// outer fixed-point loop.
func (c *Checker) checkRef(r ir.Ref) bool {
	switch c.progress[r] {
	case progressUpdating:
		return r.Type().Known()
	case progressCompleted:
		return true
	}
	c.progress[r] = progressUpdating
	resolved := c.resolveRef(r)
	if resolved {
		c.progress[r] = progressCompleted
	} else {
		c.progress[r] = progressEmpty
	}
	return resolved
}

func (c *Checker) resolveRef(r ir.Ref) bool {
	switch ref := r.(type) {
	case *ir.VariableRef:
		return c.refineFromValues(ref)
	case *ir.ParameterRef:
		return c.refineFromValues(ref)
	case *ir.FieldRef:
		return c.resolveFieldRef(ref)
	case *ir.IndexRef:
		return c.resolveIndexRef(ref)
	case *ir.FunctionRef:
		return ref.Type().Known()
	default:
		return r.Type().Known()
	}
}

// refineFromValues narrows r's type using every value ever assigned or
// passed to it (§4.G "a ref's type is the join of every value recorded
// against it").
func (c *Checker) refineFromValues(r ir.Ref) bool {
	for _, v := range r.AllValues() {
		vt := c.checkValue(v)
		if types.IsUnknown(vt) {
			continue
		}
		updated, err := types.Update(r.Type(), vt)
		if err != nil {
			c.error(r.Pos(), err.Error())
			continue
		}
		r.SetType(updated)
	}
	return r.Type().Known()
}

func (c *Checker) resolveFieldRef(f *ir.FieldRef) bool {
	parentType := f.Parent.Type()
	if !parentType.Known() {
		c.checkValueType(f.Parent)
		parentType = f.Parent.Type()
	}
	if !parentType.Known() {
		return false
	}

	st, isStruct := parentType.(*types.Struct)
	if !isStruct {
		if fn, ok := parentType.Methods()[f.Name()]; ok {
			return c.updateRefType(f, fn)
		}
		c.error(f.Pos(), "value has no member "+f.Name())
		return true
	}

	fieldType, fieldOK := st.FieldType(f.Name())
	methodFn, methodOK := st.Methods()[f.Name()]
	if fieldOK && methodOK {
		c.error(f.Pos(), "ambiguous selector "+f.Name()+": both a field and a method")
		return true
	}
	if fieldOK {
		return c.updateRefType(f, fieldType)
	}
	if methodOK {
		return c.updateRefType(f, methodFn)
	}
	c.error(f.Pos(), "undefined field or method "+f.Name())
	return true
}

func (c *Checker) resolveIndexRef(ix *ir.IndexRef) bool {
	parentType := ix.Parent.Type()
	if !parentType.Known() {
		return false
	}
	idxType := c.checkValue(ix.Index)
	if !types.IsUnknown(idxType) && !types.IsInt(idxType) {
		c.error(ix.Pos(), "index must be an int")
	}

	var elem types.Type
	switch t := parentType.(type) {
	case *types.Sequence:
		elem = t.Elem
	default:
		if types.IsString(parentType) {
			elem = types.CharType
		} else {
			c.error(ix.Pos(), "value is not indexable")
			return true
		}
	}
	return c.updateRefType(ix, elem)
}

func (c *Checker) updateRefType(r ir.Ref, t types.Type) bool {
	updated, err := types.Update(r.Type(), t)
	if err != nil {
		c.error(r.Pos(), err.Error())
		return true
	}
	r.SetType(updated)
	return r.Type().Known()
}

// checkValueType is a checkRef-compatible entry point for parent values
// that are themselves ir.Ref (used when resolving chained selectors).
func (c *Checker) checkValueType(v ir.Value) {
	if r, ok := v.(ir.Ref); ok {
		c.checkRef(r)
	}
}
