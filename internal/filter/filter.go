package filter

import (
	"encoding/json"
	"errors"
)

// Combinator operators for branch nodes. They share the Operator wire slot
// with predicate operators.
const (
	OpAnd Operator = "And"
	OpOr  Operator = "Or"
)

// ErrInvalidFilter reports a violated construction invariant, e.g. a
// combinator with zero operands. A zero-operand combinator is rejected rather
// than collapsed to "no filter": an absent filter matches everything, which
// is a different query.
var ErrInvalidFilter = errors.New("filter: invalid filter expression")

// Expr is a filter expression operand: either a *Predicate leaf or a nested
// *Filter. The marker method keeps the variant set closed.
type Expr interface {
	isExpr()
}

// Filter is one node of the boolean expression tree. It is a tagged variant:
// either a leaf wrapping a predicate, or an And/Or branch with ordered
// operands. Trees are finite, built bottom-up, and immutable after
// construction.
type Filter struct {
	operator  Operator
	predicate *Predicate
	operands  []*Filter
}

// isExpr marks *Filter as a filter expression operand.
func (f *Filter) isExpr() {}

// And combines one or more predicates or sub-filters into an And node.
// Zero operands fail with ErrInvalidFilter. A single operand stays a
// one-operand And node, never a bare leaf.
func And(exprs ...Expr) (*Filter, error) {
	return combine(OpAnd, exprs)
}

// Or combines one or more predicates or sub-filters into an Or node.
func Or(exprs ...Expr) (*Filter, error) {
	return combine(OpOr, exprs)
}

func combine(op Operator, exprs []Expr) (*Filter, error) {
	if len(exprs) == 0 {
		return nil, ErrInvalidFilter
	}

	operands := make([]*Filter, 0, len(exprs))
	for _, e := range exprs {
		switch v := e.(type) {
		case *Predicate:
			if v == nil || len(v.Path) == 0 {
				return nil, ErrInvalidFilter
			}
			operands = append(operands, &Filter{predicate: v})
		case *Filter:
			if v == nil {
				return nil, ErrInvalidFilter
			}
			operands = append(operands, v)
		default:
			return nil, ErrInvalidFilter
		}
	}

	return &Filter{operator: op, operands: operands}, nil
}

// IsLeaf reports whether the node wraps a single predicate.
func (f *Filter) IsLeaf() bool { return f.predicate != nil }

// Operator returns the combinator of a branch node (OpAnd or OpOr); empty for
// leaves.
func (f *Filter) Operator() Operator { return f.operator }

// Predicate returns the wrapped predicate of a leaf node, nil for branches.
func (f *Filter) Predicate() *Predicate { return f.predicate }

// Operands returns the ordered children of a branch node, nil for leaves.
// The returned slice must not be mutated.
func (f *Filter) Operands() []*Filter { return f.operands }

// Serialize recursively produces the wire structure: leaves flatten to the
// predicate record, branches carry the operator tag plus the ordered operand
// list.
func (f *Filter) Serialize() map[string]any {
	if f.IsLeaf() {
		return f.predicate.Serialize()
	}

	operands := make([]map[string]any, len(f.operands))
	for i, op := range f.operands {
		operands[i] = op.Serialize()
	}

	return map[string]any{
		"operator": string(f.operator),
		"operands": operands,
	}
}

// MarshalJSON emits the Serialize structure, keeping the JSON form identical
// to the wire contract.
func (f *Filter) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Serialize())
}
