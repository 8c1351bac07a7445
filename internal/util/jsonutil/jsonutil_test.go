package jsonutil

import (
	"errors"
	"testing"
)

func TestExtractObject_PlainObject(t *testing.T) {
	raw, err := ExtractObject(`{"verdict":"TRUE","confidence":82}`)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if string(raw) != `{"verdict":"TRUE","confidence":82}` {
		t.Fatalf("got %s", raw)
	}
}

func TestExtractObject_WrappedInProse(t *testing.T) {
	text := "Here is my verdict:\n```json\n{\"is_fake\": true, \"confidence\": 0.9}\n```\nThanks."
	raw, err := ExtractObject(text)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	var out struct {
		IsFake     bool    `json:"is_fake"`
		Confidence float64 `json:"confidence"`
	}
	if err := UnmarshalFlex(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.IsFake || out.Confidence != 0.9 {
		t.Fatalf("got %+v", out)
	}
}

func TestExtractObject_NestedAndStringBraces(t *testing.T) {
	text := `prefix {"a":{"b":"close } brace in string"},"c":1} suffix`
	raw, err := ExtractObject(text)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if string(raw) != `{"a":{"b":"close } brace in string"},"c":1}` {
		t.Fatalf("got %s", raw)
	}
}

func TestExtractObject_NoObject(t *testing.T) {
	if _, err := ExtractObject("no json here at all"); !errors.Is(err, ErrNoObject) {
		t.Fatalf("want ErrNoObject, got %v", err)
	}
	if _, err := ExtractObject("unbalanced { brace"); !errors.Is(err, ErrNoObject) {
		t.Fatalf("want ErrNoObject for unbalanced, got %v", err)
	}
}

func TestUnmarshalObject(t *testing.T) {
	var out struct {
		Verdict string `json:"verdict"`
	}
	if err := UnmarshalObject(`The answer is {"verdict":"FALSE"}`, &out); err != nil {
		t.Fatalf("unmarshal object: %v", err)
	}
	if out.Verdict != "FALSE" {
		t.Fatalf("got %q", out.Verdict)
	}
}

func TestUnmarshalFlex_DoubleEscaped(t *testing.T) {
	raw := []byte(`{"summary":"score \\u003e 0.5"}`)
	var out struct {
		Summary string `json:"summary"`
	}
	if err := UnmarshalFlex(raw, &out); err != nil {
		t.Fatalf("flex: %v", err)
	}
	if out.Summary != "score > 0.5" {
		t.Fatalf("got %q", out.Summary)
	}
}

func TestMarshalNoEscape(t *testing.T) {
	b, err := MarshalNoEscape(map[string]string{"k": "<b>&</b>"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"k":"<b>&</b>"}` {
		t.Fatalf("got %s", b)
	}
}
