package mapx

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var todoSchema = NewSchema(
	Field{Key: "userId", Kind: KindInt},
	Field{Key: "id", Kind: KindInt},
	Field{Key: "title", Kind: KindString},
	Field{Key: "completed", Kind: KindBool},
)

func TestSchemaValidate(t *testing.T) {
	t.Run("on success every field is available with its canonical type", func(t *testing.T) {
		// unmarshal through encoding/json so numbers arrive as float64
		var input Mapping
		if err := json.Unmarshal([]byte(`{"userId":7,"id":21,"title":"Buy milk","completed":false}`), &input); err != nil {
			t.Fatal(err)
		}

		values, err := todoSchema.Validate(input)
		if err != nil {
			t.Fatal(err)
		}

		if values.Int("userId") != 7 {
			t.Fatal("unexpected userId", values.Int("userId"))
		}
		if values.Int("id") != 21 {
			t.Fatal("unexpected id", values.Int("id"))
		}
		if values.String("title") != "Buy milk" {
			t.Fatal("unexpected title", values.String("title"))
		}
		if values.Bool("completed") != false {
			t.Fatal("unexpected completed", values.Bool("completed"))
		}
	})

	t.Run("a missing key fails the whole validation", func(t *testing.T) {
		input := Mapping{
			"userId": float64(7),
			"id":     float64(21),
			"title":  "Buy milk",
			// completed intentionally missing
		}

		values, err := todoSchema.Validate(input)

		var expect *ErrFieldValidation
		if !errors.As(err, &expect) {
			t.Fatal("not an *ErrFieldValidation instance", err)
		}
		if expect.Key != "completed" {
			t.Fatal("unexpected failing key", expect.Key)
		}
		if values != nil {
			t.Fatal("expected nil values")
		}
	})

	t.Run("a wrong-kind value fails the whole validation", func(t *testing.T) {
		input := Mapping{
			"userId":    "not-an-int",
			"id":        float64(1),
			"title":     "x",
			"completed": true,
		}

		values, err := todoSchema.Validate(input)

		var expect *ErrFieldValidation
		if !errors.As(err, &expect) {
			t.Fatal("not an *ErrFieldValidation instance", err)
		}
		if expect.Key != "userId" {
			t.Fatal("unexpected failing key", expect.Key)
		}
		if values != nil {
			t.Fatal("expected nil values")
		}
	})

	t.Run("a fractional number is not an int", func(t *testing.T) {
		input := Mapping{
			"userId":    float64(1.5),
			"id":        float64(1),
			"title":     "x",
			"completed": true,
		}

		values, err := todoSchema.Validate(input)

		if err == nil {
			t.Fatal("expected an error")
		}
		if values != nil {
			t.Fatal("expected nil values")
		}
	})

	t.Run("an integral float beyond the int64 range is not an int", func(t *testing.T) {
		schema := NewSchema(Field{Key: "id", Kind: KindInt})

		values, err := schema.Validate(Mapping{"id": float64(1e300)})

		var failure *ErrFieldValidation
		if !errors.As(err, &failure) {
			t.Fatal("not an *ErrFieldValidation instance", err)
		}
		if failure.Key != "id" {
			t.Fatal("unexpected failing key", failure.Key)
		}
		if values != nil {
			t.Fatal("expected nil values")
		}
	})

	t.Run("the int64 boundaries are enforced exactly", func(t *testing.T) {
		schema := NewSchema(Field{Key: "id", Kind: KindInt})

		// 2^63 is the first float64 past math.MaxInt64
		if values, err := schema.Validate(Mapping{"id": float64(1 << 63)}); err == nil || values != nil {
			t.Fatal("expected a validation failure", err)
		}

		// -2^63 is math.MinInt64 and still representable
		values, err := schema.Validate(Mapping{"id": float64(-(1 << 63))})
		if err != nil {
			t.Fatal(err)
		}
		if values.Int("id") != math.MinInt64 {
			t.Fatal("unexpected id", values.Int("id"))
		}
	})

	t.Run("an integral float validates as int", func(t *testing.T) {
		schema := NewSchema(Field{Key: "count", Kind: KindInt})

		values, err := schema.Validate(Mapping{"count": float64(42)})
		if err != nil {
			t.Fatal(err)
		}

		if values.Int("count") != 42 {
			t.Fatal("unexpected count", values.Int("count"))
		}
	})

	t.Run("an int validates as float", func(t *testing.T) {
		schema := NewSchema(Field{Key: "ratio", Kind: KindFloat})

		values, err := schema.Validate(Mapping{"ratio": int64(3)})
		if err != nil {
			t.Fatal(err)
		}

		if values.Float("ratio") != 3.0 {
			t.Fatal("unexpected ratio", values.Float("ratio"))
		}
	})

	t.Run("we validate nested mappings", func(t *testing.T) {
		schema := NewSchema(Field{Key: "author", Kind: KindMapping})
		input := Mapping{"author": map[string]any{"name": "Tom"}}

		values, err := schema.Validate(input)
		if err != nil {
			t.Fatal(err)
		}

		expect := Mapping{"name": "Tom"}
		if diff := cmp.Diff(expect, values.Mapping("author")); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("we validate sequences of mappings", func(t *testing.T) {
		schema := NewSchema(Field{Key: "entries", Kind: KindSequence})
		input := Mapping{"entries": []any{
			map[string]any{"id": float64(1)},
			map[string]any{"id": float64(2)},
		}}

		values, err := schema.Validate(input)
		if err != nil {
			t.Fatal(err)
		}

		expect := []Mapping{{"id": float64(1)}, {"id": float64(2)}}
		if diff := cmp.Diff(expect, values.Sequence("entries")); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("a sequence containing a non-mapping entry fails", func(t *testing.T) {
		schema := NewSchema(Field{Key: "entries", Kind: KindSequence})
		input := Mapping{"entries": []any{map[string]any{}, "nope"}}

		values, err := schema.Validate(input)

		if err == nil {
			t.Fatal("expected an error")
		}
		if values != nil {
			t.Fatal("expected nil values")
		}
	})
}

func TestNewSchemaPanicsOnDuplicateKeys(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	NewSchema(
		Field{Key: "id", Kind: KindInt},
		Field{Key: "id", Kind: KindString},
	)
}

func TestValuesAccessorPanicsOnUnknownKey(t *testing.T) {
	values, err := todoSchema.Validate(Mapping{
		"userId":    float64(1),
		"id":        float64(1),
		"title":     "x",
		"completed": true,
	})
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	values.String("antani")
}
