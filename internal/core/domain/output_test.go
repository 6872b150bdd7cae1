package domain

import (
	"encoding/json"
	"testing"
)

func TestOutputKeepsInsertionOrder(t *testing.T) {
	o := NewOutput()
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("b", 3)

	keys := o.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("unexpected key order %v", keys)
	}
	if v, _ := o.Get("b"); v != 3 {
		t.Fatalf("replace did not keep latest value, got %v", v)
	}
}

func TestOutputMarshalOrderAndEscaping(t *testing.T) {
	o := NewOutput()
	o.Set("z", "&amp;")
	o.Set("a", []any{NewOutput().Set("n", 1)})

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"z":"&amp;","a":[{"n":1}]}`
	if string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
}

func TestOutputUnmarshalRestoresOrderAndNumbers(t *testing.T) {
	o := NewOutput()
	if err := json.Unmarshal([]byte(`{"count":2,"avg":2.5,"items":["x"],"empty":{}}`), o); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	keys := o.Keys()
	want := []string{"count", "avg", "items", "empty"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("key %d = %q, want %q (all: %v)", i, keys[i], k, keys)
		}
	}
	if v, _ := o.Get("count"); v != 2 {
		t.Fatalf("count decoded as %T %v, want int 2", v, v)
	}
	if v, _ := o.Get("avg"); v != 2.5 {
		t.Fatalf("avg decoded as %T %v, want float64 2.5", v, v)
	}
	if v, _ := o.Get("empty"); v.(*Output).Len() != 0 {
		t.Fatalf("empty object decoded as %v", v)
	}
}
