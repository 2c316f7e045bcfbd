package qdrant

import (
	"fmt"
	"strings"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/AlexPavAi/dog-finder/internal/filter"
	"github.com/AlexPavAi/dog-finder/internal/vectordb"
)

// ── Filter Conversion ────────────────────────────────────────────────────────

// convertFilter converts a filter expression tree to a Qdrant filter.
// And maps to must, Or to should; nested trees become condition-wrapped
// filters. A nil tree means "match everything" and converts to nil.
//
// Conversion is exhaustive: an operator/kind combination the backend cannot
// express fails loudly instead of silently dropping the condition.
func convertFilter(f *filter.Filter) (*qdrant.Filter, error) {
	if f == nil {
		return nil, nil
	}

	if f.IsLeaf() {
		cond, err := convertPredicate(f.Predicate())
		if err != nil {
			return nil, err
		}
		return &qdrant.Filter{Must: []*qdrant.Condition{cond}}, nil
	}

	conditions := make([]*qdrant.Condition, 0, len(f.Operands()))
	for _, op := range f.Operands() {
		cond, err := convertNode(op)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}

	switch f.Operator() {
	case filter.OpAnd:
		return &qdrant.Filter{Must: conditions}, nil
	case filter.OpOr:
		return &qdrant.Filter{Should: conditions}, nil
	default:
		return nil, fmt.Errorf("qdrant: unsupported combinator %q", f.Operator())
	}
}

// convertNode converts one tree node to a single Qdrant condition. Branch
// nodes are wrapped as sub-filters, which preserves arbitrary nesting.
func convertNode(f *filter.Filter) (*qdrant.Condition, error) {
	if f.IsLeaf() {
		return convertPredicate(f.Predicate())
	}

	sub, err := convertFilter(f)
	if err != nil {
		return nil, err
	}
	return &qdrant.Condition{
		ConditionOneOf: &qdrant.Condition_Filter{Filter: sub},
	}, nil
}

// convertPredicate converts a single predicate to its native condition.
func convertPredicate(p *filter.Predicate) (*qdrant.Condition, error) {
	if p == nil || len(p.Path) == 0 {
		return nil, fmt.Errorf("qdrant: predicate with empty path")
	}
	key := strings.Join(p.Path, ".")

	switch p.Operator {
	case filter.OpEqual:
		return convertEqual(key, p)
	case filter.OpNotEqual:
		eq, err := convertEqual(key, p)
		if err != nil {
			return nil, err
		}
		return &qdrant.Condition{
			ConditionOneOf: &qdrant.Condition_Filter{
				Filter: &qdrant.Filter{MustNot: []*qdrant.Condition{eq}},
			},
		}, nil
	case filter.OpGreaterThan, filter.OpLessThan:
		return convertOrdered(key, p)
	case filter.OpLike:
		s, ok := p.Value.(string)
		if !ok || p.Kind != filter.ValueText {
			return nil, fmt.Errorf("qdrant: Like requires a text value, got %T (%s)", p.Value, p.Kind)
		}
		return qdrant.NewMatchText(key, s), nil
	default:
		return nil, fmt.Errorf("qdrant: unsupported operator %q", p.Operator)
	}
}

func convertEqual(key string, p *filter.Predicate) (*qdrant.Condition, error) {
	switch p.Kind {
	case filter.ValueText:
		s, ok := p.Value.(string)
		if !ok {
			return nil, kindMismatch(key, p)
		}
		return qdrant.NewMatch(key, s), nil
	case filter.ValueBoolean:
		b, ok := p.Value.(bool)
		if !ok {
			return nil, kindMismatch(key, p)
		}
		return qdrant.NewMatchBool(key, b), nil
	case filter.ValueInt:
		n, ok := asInt64(p.Value)
		if !ok {
			return nil, kindMismatch(key, p)
		}
		return qdrant.NewMatchInt(key, n), nil
	case filter.ValueNumber:
		// Qdrant has no exact match for doubles; a closed single-point range
		// is the equivalent.
		v, ok := asFloat64(p.Value)
		if !ok {
			return nil, kindMismatch(key, p)
		}
		return qdrant.NewRange(key, &qdrant.Range{Gte: &v, Lte: &v}), nil
	case filter.ValueDate:
		ts, err := asTimestamp(p.Value)
		if err != nil {
			return nil, kindMismatch(key, p)
		}
		return qdrant.NewDatetimeRange(key, &qdrant.DatetimeRange{Gte: ts, Lte: ts}), nil
	default:
		return nil, fmt.Errorf("qdrant: unsupported value kind %q for field %q", p.Kind, key)
	}
}

func convertOrdered(key string, p *filter.Predicate) (*qdrant.Condition, error) {
	greater := p.Operator == filter.OpGreaterThan

	switch p.Kind {
	case filter.ValueInt, filter.ValueNumber:
		v, ok := asFloat64(p.Value)
		if !ok {
			return nil, kindMismatch(key, p)
		}
		r := &qdrant.Range{}
		if greater {
			r.Gt = &v
		} else {
			r.Lt = &v
		}
		return qdrant.NewRange(key, r), nil
	case filter.ValueDate:
		ts, err := asTimestamp(p.Value)
		if err != nil {
			return nil, kindMismatch(key, p)
		}
		r := &qdrant.DatetimeRange{}
		if greater {
			r.Gt = ts
		} else {
			r.Lt = ts
		}
		return qdrant.NewDatetimeRange(key, r), nil
	default:
		return nil, fmt.Errorf("qdrant: %s not supported for value kind %q", p.Operator, p.Kind)
	}
}

func kindMismatch(key string, p *filter.Predicate) error {
	return fmt.Errorf("qdrant: field %q: value %T does not match kind %s", key, p.Value, p.Kind)
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		// JSON numbers decode as float64.
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func asTimestamp(v any) (*timestamppb.Timestamp, error) {
	switch t := v.(type) {
	case time.Time:
		return timestamppb.New(t), nil
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return nil, err
		}
		return timestamppb.New(parsed), nil
	default:
		return nil, fmt.Errorf("unsupported date value %T", v)
	}
}

// ── Result Conversion ────────────────────────────────────────────────────────

// parseSearchResults converts a Qdrant response to vectordb records.
func parseSearchResults(resp []*qdrant.ScoredPoint) ([]vectordb.Record, error) {
	results := make([]vectordb.Record, 0, len(resp))
	for _, r := range resp {
		id, err := extractPointID(r.Id)
		if err != nil {
			return nil, err
		}
		results = append(results, vectordb.Record{
			ID:         id,
			Score:      r.Score,
			Properties: convertPayload(r.Payload),
		})
	}
	return results, nil
}

// extractPointID extracts a string ID from Qdrant's PointId type.
func extractPointID(id *qdrant.PointId) (string, error) {
	if id == nil {
		return "", fmt.Errorf("qdrant: nil point ID")
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Num:
		return fmt.Sprintf("%d", v.Num), nil
	case *qdrant.PointId_Uuid:
		return v.Uuid, nil
	default:
		return "", fmt.Errorf("qdrant: unexpected PointId type: %T", v)
	}
}

// convertPayload converts Qdrant's protobuf payload to a generic map.
func convertPayload(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = extractValue(v)
	}
	return result
}

// extractValue recursively converts a Qdrant Value to a Go native type.
func extractValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return convertPayload(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		items := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			items[i] = extractValue(item)
		}
		return items
	default:
		return nil
	}
}
