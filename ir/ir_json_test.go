package ir

import (
	"errors"
	"testing"
)

func TestFromJSON(t *testing.T) {
	got, err := FromJSON([]byte(`{"a":[1,2.5,"x",{"b":1.0}],"c":true}`))
	if err != nil {
		t.Fatal(err)
	}
	want := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{
			FromInt(1),
			FromFloat(2.5),
			FromString("x"),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromFloat(1)}}),
		})},
		{Key: "c", Val: FromString("true")},
	})
	if !Equal(want, got) {
		t.Errorf("unexpected document %+v", got)
	}
	if k := got.Get("a").Values[3].Get("b").Kind(); k != FloatKind {
		t.Errorf("1.0 decoded as %s", k)
	}
}

func TestFromJSONErrors(t *testing.T) {
	for _, in := range []string{`{"a":null}`, `{"a":`, `{} {}`} {
		if _, err := FromJSON([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("%s: got %v, want ErrParse", in, err)
		}
	}
}
