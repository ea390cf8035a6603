package interp

import (
	"github.com/akashmaji946/mylang/env"
	"github.com/akashmaji946/mylang/lexer"
	"github.com/akashmaji946/mylang/parser"
	"github.com/akashmaji946/mylang/value"
)

func (it *Interpreter) evalListExpr(n *parser.ListExpr, e *env.Environment) (value.Value, error) {
	elements := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := it.Eval(el, e)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return &value.List{Elements: elements}, nil
}

func (it *Interpreter) evalDictExpr(n *parser.DictExpr, e *env.Environment) (value.Value, error) {
	dict := value.NewDict()
	for i := range n.Keys {
		k, err := it.Eval(n.Keys[i], e)
		if err != nil {
			return nil, err
		}
		v, err := it.Eval(n.Values[i], e)
		if err != nil {
			return nil, err
		}
		dict.Set(k, v) // later duplicate keys overwrite earlier ones (spec.md §4.3.4)
	}
	return dict, nil
}

func (it *Interpreter) evalIndexExpr(n *parser.IndexExpr, e *env.Environment) (value.Value, error) {
	base, err := it.Eval(n.Base, e)
	if err != nil {
		return nil, err
	}
	idx, err := it.Eval(n.Index, e)
	if err != nil {
		return nil, err
	}
	switch b := base.(type) {
	case *value.List:
		i, err := listIndex(n.Token, idx, len(b.Elements))
		if err != nil {
			return nil, err
		}
		return b.Elements[i], nil
	case *value.Dict:
		v, ok := b.Get(idx)
		if !ok {
			return nil, runtimeErrorf(n.Token, "key %s not found", idx.String())
		}
		return v, nil
	default:
		return nil, runtimeErrorf(n.Token, "cannot index into %s", base.GetType())
	}
}

// listIndex validates idx against spec.md §3 invariant 5: integers or
// integer-valued floats coerce to an index; anything else, or an
// out-of-range index, is an error.
func listIndex(tok lexer.Token, idx value.Value, length int) (int, error) {
	n, ok := idx.(*value.Number)
	if !ok || !value.IsInteger(n.Val) {
		return 0, runtimeErrorf(tok, "list index must be an integer, got %s", idx.GetType())
	}
	i := int(n.Val)
	if i < 0 || i >= length {
		return 0, runtimeErrorf(tok, "list index %s out of range for length %d", idx.String(), length)
	}
	return i, nil
}

func (it *Interpreter) evalIndexAssign(n *parser.IndexAssignStmt, e *env.Environment) (value.Value, error) {
	base, err := it.Eval(n.Base, e)
	if err != nil {
		return nil, err
	}
	idx, err := it.Eval(n.Index, e)
	if err != nil {
		return nil, err
	}
	val, err := it.Eval(n.Value, e)
	if err != nil {
		return nil, err
	}

	switch b := base.(type) {
	case *value.List:
		i, err := listIndex(n.Token, idx, len(b.Elements))
		if err != nil {
			return nil, err
		}
		b.Elements[i] = val
	case *value.Dict:
		b.Set(idx, val) // writes may create new keys (spec.md §4.3.4)
	default:
		return nil, runtimeErrorf(n.Token, "cannot index into %s", base.GetType())
	}
	return &value.Nil{}, nil
}

func (it *Interpreter) evalRemove(n *parser.RemoveStmt, e *env.Environment) (value.Value, error) {
	base, err := it.Eval(n.Base, e)
	if err != nil {
		return nil, err
	}
	idx, err := it.Eval(n.Index, e)
	if err != nil {
		return nil, err
	}

	switch b := base.(type) {
	case *value.List:
		i, err := listIndex(n.Token, idx, len(b.Elements))
		if err != nil {
			return nil, err
		}
		b.Elements = append(b.Elements[:i], b.Elements[i+1:]...)
	case *value.Dict:
		if !b.Remove(idx) {
			return nil, runtimeErrorf(n.Token, "key %s not found", idx.String())
		}
	default:
		return nil, runtimeErrorf(n.Token, "cannot index into %s", base.GetType())
	}
	return &value.Nil{}, nil
}
