package filter

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestPredicateSerialize_Text(t *testing.T) {
	p := TextEqual("breed", "labrador")
	got := p.Serialize()

	want := map[string]any{
		"path":      []string{"breed"},
		"operator":  "Equal",
		"valueText": "labrador",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPredicateSerialize_Boolean(t *testing.T) {
	p := BoolEqual("isMatched", false)
	got := p.Serialize()

	if got["operator"] != "Equal" {
		t.Errorf("expected operator Equal, got %v", got["operator"])
	}
	if got["valueBoolean"] != false {
		t.Errorf("expected valueBoolean false, got %v", got["valueBoolean"])
	}
	if _, ok := got["valueText"]; ok {
		t.Error("boolean predicate must not carry a valueText slot")
	}
}

func TestPredicateSerialize_NestedPath(t *testing.T) {
	p := NewPredicate([]string{"contact", "phone"}, OpEqual, "555", ValueText)
	got := p.Serialize()

	path, ok := got["path"].([]string)
	if !ok || len(path) != 2 || path[0] != "contact" || path[1] != "phone" {
		t.Errorf("expected nested path [contact phone], got %v", got["path"])
	}
}

func TestAnd_ZeroOperands(t *testing.T) {
	_, err := And()
	if !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestOr_ZeroOperands(t *testing.T) {
	_, err := Or()
	if !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestAnd_SingleOperandNotCollapsed(t *testing.T) {
	f, err := And(TextEqual("breed", "poodle"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := f.Serialize()
	if got["operator"] != "And" {
		t.Errorf("expected And node, got %v", got["operator"])
	}
	operands, ok := got["operands"].([]map[string]any)
	if !ok || len(operands) != 1 {
		t.Fatalf("expected 1 operand, got %v", got["operands"])
	}
	if operands[0]["valueText"] != "poodle" {
		t.Errorf("expected leaf operand for poodle, got %v", operands[0])
	}
}

func TestAnd_PreservesOperandOrder(t *testing.T) {
	p1 := TextEqual("breed", "labrador")
	p2 := BoolEqual("isMatched", false)

	f, err := And(p1, p2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := f.Serialize()
	want := map[string]any{
		"operator": "And",
		"operands": []map[string]any{p1.Serialize(), p2.Serialize()},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAnd_NilOperand(t *testing.T) {
	var p *Predicate
	if _, err := And(p); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter for nil predicate, got %v", err)
	}
}

func TestAnd_EmptyPath(t *testing.T) {
	p := NewPredicate(nil, OpEqual, "x", ValueText)
	if _, err := And(p); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter for empty path, got %v", err)
	}
}

func TestNestedTree(t *testing.T) {
	inner, err := Or(TextEqual("color", "black"), TextEqual("color", "brown"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := And(TextEqual("type", "lost"), inner, BoolEqual("isMatched", false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := f.Serialize()
	operands := got["operands"].([]map[string]any)
	if len(operands) != 3 {
		t.Fatalf("expected 3 operands, got %d", len(operands))
	}
	if operands[1]["operator"] != "Or" {
		t.Errorf("expected nested Or at position 1, got %v", operands[1]["operator"])
	}
	orOperands := operands[1]["operands"].([]map[string]any)
	if len(orOperands) != 2 {
		t.Errorf("expected 2 Or operands, got %d", len(orOperands))
	}
}

func TestMarshalJSON_MatchesSerialize(t *testing.T) {
	f, err := And(TextEqual("breed", "labrador"), BoolEqual("isMatched", false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["operator"] != "And" {
		t.Errorf("expected And operator in JSON, got %v", decoded["operator"])
	}
	operands := decoded["operands"].([]any)
	first := operands[0].(map[string]any)
	if first["valueText"] != "labrador" {
		t.Errorf("expected first operand labrador, got %v", first)
	}
	second := operands[1].(map[string]any)
	if second["valueBoolean"] != false {
		t.Errorf("expected second operand isMatched=false, got %v", second)
	}
}
