package types

import "fmt"

// Update unifies a ref's current type with an incoming observation without
// ever broadening a known type (spec §4.G "Type refinement", invariant I7).
// It returns the refined type, or an error describing the mismatch.
//
// Update is symmetric in its failure mode (current≠incoming primitives
// error regardless of order) and refining in its success mode: the result
// is never less specific than whichever of current/incoming was more
// specific going in.
func Update(current, incoming Type) (Type, error) {
	if IsUnknown(current) {
		return incoming, nil
	}
	if IsUnknown(incoming) {
		return current, nil
	}

	switch c := current.(type) {
	case *Primitive:
		inc, ok := incoming.(*Primitive)
		if !ok || inc.Kind != c.Kind {
			return nil, fmt.Errorf("cannot unify %s with %s", current, incoming)
		}
		return current, nil

	case *noReturn:
		if IsNoReturn(incoming) {
			return current, nil
		}
		return nil, fmt.Errorf("cannot unify %s with %s", current, incoming)

	case *Function:
		inc, ok := incoming.(*Function)
		if !ok || len(inc.Params) != len(c.Params) {
			return nil, fmt.Errorf("cannot unify %s with %s", current, incoming)
		}
		params := make([]Type, len(c.Params))
		for i := range c.Params {
			p, err := Update(c.Params[i], inc.Params[i])
			if err != nil {
				return nil, fmt.Errorf("parameter %d: %w", i, err)
			}
			params[i] = p
		}
		ret, err := Update(c.Return, inc.Return)
		if err != nil {
			return nil, fmt.Errorf("return type: %w", err)
		}
		c.Params, c.Return = params, ret
		return c, nil

	case *Struct:
		inc, ok := incoming.(*Struct)
		if !ok || len(inc.Fields) != len(c.Fields) {
			return nil, fmt.Errorf("cannot unify %s with %s", current, incoming)
		}
		for i := range c.Fields {
			if c.Fields[i].Name != inc.Fields[i].Name {
				return nil, fmt.Errorf("cannot unify %s with %s: field name mismatch", current, incoming)
			}
			f, err := Update(c.Fields[i].Type, inc.Fields[i].Type)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", c.Fields[i].Name, err)
			}
			c.Fields[i].Type = f
		}
		return c, nil

	case *Sequence:
		inc, ok := incoming.(*Sequence)
		if !ok || inc.SeqKind != c.SeqKind {
			return nil, fmt.Errorf("cannot unify %s with %s", current, incoming)
		}
		elem, err := Update(c.Elem, inc.Elem)
		if err != nil {
			return nil, fmt.Errorf("element type: %w", err)
		}
		c.Elem = elem
		if c.Length < 0 {
			c.Length = inc.Length
		} else if inc.Length >= 0 && inc.Length != c.Length {
			return nil, fmt.Errorf("cannot unify %s with %s: length mismatch", current, incoming)
		}
		return c, nil

	case *Interface:
		if inc, ok := incoming.(*Interface); ok && inc.Name == c.Name {
			return current, nil
		}
		return nil, fmt.Errorf("cannot unify %s with %s", current, incoming)

	default:
		return nil, fmt.Errorf("cannot unify %s with %s", current, incoming)
	}
}
