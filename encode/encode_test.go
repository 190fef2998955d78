package encode

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/signadot/linefold/format"
	"github.com/signadot/linefold/ir"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func sampleDoc() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1),
			ir.FromFloat(2),
			ir.FromKeyVals([]ir.KeyVal{{Key: "c", Val: ir.FromString("x<y>&\"z\"")}}),
		})},
		{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "value", Val: ir.FromInt(1)},
			{Key: "c", Val: ir.FromFloat(1.5)},
		})},
		{Key: "e", Val: ir.Mapping()},
		{Key: "d", Val: ir.FromSlice(nil)},
	})
}

func TestEncodeJSON(t *testing.T) {
	got := MustString(sampleDoc())
	want := `{"a":{"c":1.5,"value":1},"b":[1,2.0,{"c":"x<y>&\"z\""}],"d":[],"e":{}}`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
		{Key: "b", Val: ir.FromString("x")},
	})
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": [\n    1,\n    2\n  ],\n  \"b\": \"x\"\n}\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeEmpty(t *testing.T) {
	if got := MustString(ir.Mapping()); got != "{}" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeNonFinite(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{
		{Key: "n", Val: ir.FromFloat(math.NaN())},
		{Key: "p", Val: ir.FromFloat(math.Inf(1))},
		{Key: "m", Val: ir.FromFloat(math.Inf(-1))},
		{Key: "big", Val: ir.FromFloat(1e21)},
	})
	got := MustString(doc)
	want := `{"big":1e+21,"m":"-Inf","n":"NaN","p":"+Inf"}`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if !json.Valid([]byte(got)) {
		t.Errorf("invalid JSON %s", got)
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []*ir.Node{
		sampleDoc(),
		ir.Mapping(),
		ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.InferScalar("007")}}),
		ir.FromKeyVals([]ir.KeyVal{{Key: "f", Val: ir.FromFloat(1e-7)}}),
		ir.FromKeyVals([]ir.KeyVal{
			{Key: "i", Val: ir.FromFloat(2)},
			{Key: "h", Val: ir.FromString("<a href='x'>&amp;</a>")},
			{Key: "s", Val: ir.FromSlice([]*ir.Node{ir.FromFloat(2), ir.FromInt(2)})},
		}),
	}
	for i, doc := range docs {
		text := MustString(doc)

		// standard decoder, then re-encode
		var v any
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			t.Fatalf("doc %d: %v", i, err)
		}
		again, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		if !SameJSON([]byte(text), again) {
			t.Errorf("doc %d: %s != %s", i, text, again)
		}

		// back into a document
		back, err := ir.FromJSON([]byte(text))
		if err != nil {
			t.Fatalf("doc %d: %v", i, err)
		}
		if !ir.Equal(doc, back) {
			t.Errorf("doc %d: decoded %s differs from original %s", i, MustString(back), text)
		}
	}
}

func TestSameJSON(t *testing.T) {
	if !SameJSON([]byte(`{"a":1,"b":[1,2]}`), []byte(`{ "b": [1, 2], "a": 1 }`)) {
		t.Errorf("key order should not matter")
	}
	if SameJSON([]byte(`{"a":[1,2]}`), []byte(`{"a":[2,1]}`)) {
		t.Errorf("array order should matter")
	}
	same := [][2]string{
		{`{"a":2.0}`, `{"a":2}`},
		{`{"a":[2.0]}`, `{"a":[2]}`},
		{`{"f":1e-07}`, `{"f":1e-7}`},
		{`{"s":"<&>"}`, `{"s":"\u003c\u0026\u003e"}`},
	}
	for _, pair := range same {
		if !SameJSON([]byte(pair[0]), []byte(pair[1])) {
			t.Errorf("%s and %s decode to the same value", pair[0], pair[1])
		}
	}
	differ := [][2]string{
		{`{"a":2}`, `{"a":2.5}`},
		{`{"a":"2"}`, `{"a":2}`},
		{`{"a":1}`, `{"a":1`},
	}
	for _, pair := range differ {
		if SameJSON([]byte(pair[0]), []byte(pair[1])) {
			t.Errorf("%s and %s should differ", pair[0], pair[1])
		}
	}
}

func TestEncodeYAML(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("x")})},
		{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "c", Val: ir.FromFloat(1.5)}})},
	})
	got := MustString(doc, EncodeFormat(format.YAMLFormat))
	aIdx := strings.Index(got, "a:")
	bIdx := strings.Index(got, "b:")
	if aIdx == -1 || bIdx == -1 || aIdx > bIdx {
		t.Errorf("keys missing or unsorted:\n%s", got)
	}
	for _, want := range []string{"c: 1.5", "- 1", "- x"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	defer func(v bool) { color.NoColor = v }(color.NoColor)
	color.NoColor = false

	doc := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	got := MustString(doc, EncodeColors(NewColors()))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape codes in %q", got)
	}
	if plain := MustString(doc, EncodeColors(nil)); plain != `{"a":1}` {
		t.Errorf("got %q", plain)
	}
}
