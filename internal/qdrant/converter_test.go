package qdrant

import (
	"testing"
	"time"

	"github.com/AlexPavAi/dog-finder/internal/filter"
)

func TestConvertFilter_Nil(t *testing.T) {
	result, err := convertFilter(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil filter, got %v", result)
	}
}

func TestConvertFilter_AndBecomesMust(t *testing.T) {
	f, err := filter.And(
		filter.TextEqual("breed", "labrador"),
		filter.BoolEqual("isMatched", false),
		filter.IntEqual("dogId", 42),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := convertFilter(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected filter, got nil")
	}
	if len(result.Must) != 3 {
		t.Errorf("expected 3 must conditions, got %d", len(result.Must))
	}
	if len(result.Should) != 0 {
		t.Errorf("expected 0 should conditions, got %d", len(result.Should))
	}
}

func TestConvertFilter_OrBecomesShould(t *testing.T) {
	f, err := filter.Or(
		filter.TextEqual("color", "black"),
		filter.TextEqual("color", "brown"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := convertFilter(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Should) != 2 {
		t.Errorf("expected 2 should conditions, got %d", len(result.Should))
	}
}

func TestConvertFilter_NestedTree(t *testing.T) {
	colors, err := filter.Or(
		filter.TextEqual("color", "black"),
		filter.TextEqual("color", "brown"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := filter.And(filter.TextEqual("type", "lost"), colors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := convertFilter(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Must) != 2 {
		t.Fatalf("expected 2 must conditions, got %d", len(result.Must))
	}

	nested := result.Must[1].GetFilter()
	if nested == nil {
		t.Fatal("expected nested filter condition at position 1")
	}
	if len(nested.Should) != 2 {
		t.Errorf("expected 2 should conditions in nested filter, got %d", len(nested.Should))
	}
}

func TestConvertPredicate_NotEqual(t *testing.T) {
	p := filter.NewPredicate([]string{"sex"}, filter.OpNotEqual, "male", filter.ValueText)

	cond, err := convertPredicate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sub := cond.GetFilter()
	if sub == nil {
		t.Fatal("expected NotEqual to wrap a must_not sub-filter")
	}
	if len(sub.MustNot) != 1 {
		t.Errorf("expected 1 must_not condition, got %d", len(sub.MustNot))
	}
}

func TestConvertPredicate_DateRange(t *testing.T) {
	when := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	p := filter.DateCompare("dogFoundOn", filter.OpGreaterThan, when)

	cond, err := convertPredicate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	field := cond.GetField()
	if field == nil || field.GetDatetimeRange() == nil {
		t.Fatal("expected a datetime range condition")
	}
	if field.GetDatetimeRange().Gt == nil {
		t.Error("expected Gt bound set for GreaterThan")
	}
}

func TestConvertPredicate_NestedPathJoinsDots(t *testing.T) {
	p := filter.NewPredicate([]string{"contact", "phone"}, filter.OpEqual, "555", filter.ValueText)

	cond, err := convertPredicate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cond.GetField().GetKey(); got != "contact.phone" {
		t.Errorf("expected key contact.phone, got %q", got)
	}
}

func TestConvertPredicate_KindMismatch(t *testing.T) {
	p := filter.NewPredicate([]string{"breed"}, filter.OpEqual, 12, filter.ValueText)
	if _, err := convertPredicate(p); err == nil {
		t.Error("expected error for value/kind mismatch")
	}
}

func TestConvertPredicate_LikeRequiresText(t *testing.T) {
	p := filter.NewPredicate([]string{"isMatched"}, filter.OpLike, true, filter.ValueBoolean)
	if _, err := convertPredicate(p); err == nil {
		t.Error("expected error for Like on boolean")
	}
}
