package ontology

import (
	"testing"
)

func TestEntityValue_BareStringWeightOne(t *testing.T) {
	ev, err := Decode[EntityValue]([]byte(`"a"`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Value != "a" || ev.Weight != 1 {
		t.Errorf("got %+v, want {a 1}", ev)
	}
}

func TestEntityValue_ArrayForm(t *testing.T) {
	ev, err := Decode[EntityValue]([]byte(`["b",42]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ev.Value != "b" || ev.Weight != 42 {
		t.Errorf("got %+v, want {b 42}", ev)
	}
}

func TestEntityValue_EncodeWeightOneIsBareString(t *testing.T) {
	b, err := Encode(NewEntityValue("a"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != `"a"` {
		t.Errorf("got %s, want \"a\"", b)
	}
}

func TestEntityValue_EncodeWeightOtherIsArray(t *testing.T) {
	b, err := Encode(EntityValue{Value: "b", Weight: 42})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != `["b",42]` {
		t.Errorf("got %s, want [\"b\",42]", b)
	}
}

func TestEntityValue_RoundTrip(t *testing.T) {
	cases := []EntityValue{
		NewEntityValue("a"),
		{Value: "b", Weight: 42},
		{Value: "tea with milk", Weight: 7},
	}
	for _, ev := range cases {
		b, err := Encode(ev)
		if err != nil {
			t.Fatalf("encode(%+v): %v", ev, err)
		}
		got, err := Decode[EntityValue](b)
		if err != nil {
			t.Fatalf("decode(%s): %v", b, err)
		}
		if got != ev {
			t.Errorf("round trip: got %+v, want %+v", got, ev)
		}
	}
}

func TestEntityValue_WeightBelowOneIsMalformed(t *testing.T) {
	_, err := Decode[EntityValue]([]byte(`["b",0]`))
	if err == nil {
		t.Fatal("expected error for weight < 1")
	}
}

func TestInjectionOperation_ScenarioFour(t *testing.T) {
	// §8 scenario 4: entity-value custom codec.
	const input = `["add",{"e":["a",["b",42]]}]`
	op, err := Decode[InjectionOperation]([]byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if op.Kind != InjectionKindAdd {
		t.Errorf("kind = %q, want add", op.Kind)
	}
	values, ok := op.Values["e"]
	if !ok || len(values) != 2 {
		t.Fatalf("values[e] = %+v", op.Values)
	}
	if values[0] != (EntityValue{Value: "a", Weight: 1}) {
		t.Errorf("values[0] = %+v", values[0])
	}
	if values[1] != (EntityValue{Value: "b", Weight: 42}) {
		t.Errorf("values[1] = %+v", values[1])
	}

	reEncoded, err := Encode(op)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	again, err := Decode[InjectionOperation](reEncoded)
	if err != nil {
		t.Fatalf("decode again: %v", err)
	}
	if again.Kind != op.Kind || len(again.Values["e"]) != 2 {
		t.Errorf("round trip mismatch: %+v", again)
	}
}
