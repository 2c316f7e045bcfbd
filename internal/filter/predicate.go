package filter

import "time"

// Operator is a comparison kind. The constant values double as the wire
// strings, so adding an operator never changes the serialization contract.
type Operator string

const (
	OpEqual       Operator = "Equal"
	OpNotEqual    Operator = "NotEqual"
	OpGreaterThan Operator = "GreaterThan"
	OpLessThan    Operator = "LessThan"
	OpLike        Operator = "Like"
)

// ValueKind selects the typed slot a predicate value occupies at
// serialization time. Exactly one kind is active per predicate.
type ValueKind string

const (
	ValueText    ValueKind = "valueText"
	ValueBoolean ValueKind = "valueBoolean"
	ValueInt     ValueKind = "valueInt"
	ValueNumber  ValueKind = "valueNumber"
	ValueDate    ValueKind = "valueDate"
)

// Predicate is a single atomic filter condition: a field path, an operator,
// an operand, and the kind tag naming the operand's wire slot.
//
// The path must contain at least one segment (nested fields use multiple
// segments). Constructing a predicate whose value does not match its kind is
// a caller error: serialization emits the value under the kind's slot without
// coercion, and the backend will reject it.
type Predicate struct {
	Path     []string
	Operator Operator
	Value    any
	Kind     ValueKind
}

// NewPredicate builds a predicate from its four parts. No validation is
// performed beyond what the type system gives; see the convenience
// constructors below for the common typed cases.
func NewPredicate(path []string, op Operator, value any, kind ValueKind) *Predicate {
	return &Predicate{Path: path, Operator: op, Value: value, Kind: kind}
}

// TextEqual builds an Equal predicate on a text field.
func TextEqual(field string, value string) *Predicate {
	return NewPredicate([]string{field}, OpEqual, value, ValueText)
}

// BoolEqual builds an Equal predicate on a boolean field.
func BoolEqual(field string, value bool) *Predicate {
	return NewPredicate([]string{field}, OpEqual, value, ValueBoolean)
}

// IntEqual builds an Equal predicate on an integer field.
func IntEqual(field string, value int64) *Predicate {
	return NewPredicate([]string{field}, OpEqual, value, ValueInt)
}

// DateCompare builds a date comparison predicate. The value is serialized in
// RFC 3339, which every supported backend accepts for date payloads.
func DateCompare(field string, op Operator, value time.Time) *Predicate {
	return NewPredicate([]string{field}, op, value.Format(time.RFC3339), ValueDate)
}

// Serialize flattens the predicate into its wire record:
// {path, operator, value<Kind>}.
func (p *Predicate) Serialize() map[string]any {
	return map[string]any{
		"path":          p.Path,
		"operator":      string(p.Operator),
		string(p.Kind): p.Value,
	}
}

// isExpr marks *Predicate as a filter expression operand.
func (p *Predicate) isExpr() {}
