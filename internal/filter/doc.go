// Package filter implements the predicate algebra used to constrain vector
// similarity searches.
//
// # Overview
//
// A [Predicate] is a single typed field comparison (path, operator, value,
// value kind). Predicates compose into a [Filter] expression tree through
// [And] and [Or]; trees nest to arbitrary depth and are immutable once built.
//
// Serialization produces the backend-neutral wire structure consumed by the
// vector-store adapter:
//
//	Leaf:    { "path": [...], "operator": "Equal", "valueText": "labrador" }
//	Branch:  { "operator": "And", "operands": [ ... ] }
//
// Operand order is preserved exactly as supplied; the backend may treat it as
// significant for query planning.
//
// # Usage
//
//	f, err := filter.And(
//	    filter.TextEqual("breed", "labrador"),
//	    filter.BoolEqual("isMatched", false),
//	)
//	if err != nil {
//	    return err
//	}
//	wire := f.Serialize()
//
// Filters are cheap per-request values. Build one per query and discard it;
// they are never shared or mutated across requests.
package filter
