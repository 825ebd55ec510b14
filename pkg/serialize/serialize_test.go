package serialize_test

import (
	"encoding/json"
	stderrors "errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/go-vitrine/vitrine/pkg/errors"
	"github.com/go-vitrine/vitrine/pkg/serialize"
)

func TestBoolRoundTrip(t *testing.T) {
	var s serialize.Bool
	for _, v := range []bool{true, false} {
		raw, err := s.Encode(v)
		if err != nil {
			t.Fatalf("Encode(%v): %v", v, err)
		}
		got, err := s.Decode(raw)
		if err != nil {
			t.Fatalf("Decode(%s): %v", raw, err)
		}
		if got != v {
			t.Errorf("round trip of %v yielded %v", v, got)
		}
	}
}

func TestBoolRejectsNonBool(t *testing.T) {
	var s serialize.Bool
	_, err := s.Decode(json.RawMessage(`"yes"`))
	if err == nil {
		t.Fatal("Decode of a string should fail")
	}
	var ferr *errors.Error
	if !stderrors.As(err, &ferr) || ferr.Kind != errors.KindSerialize {
		t.Errorf("want KindSerialize error, got %v", err)
	}
}

func TestNumberRejectsString(t *testing.T) {
	var s serialize.Number
	if _, err := s.Decode(json.RawMessage(`"3"`)); err == nil {
		t.Fatal("Decode of a quoted number should fail")
	}
}

func TestStringRoundTrip(t *testing.T) {
	var s serialize.String
	raw, err := s.Encode(`with "quotes"`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got != `with "quotes"` {
		t.Errorf("round trip yielded %q", got)
	}
}

func TestImageRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 1, color.RGBA{B: 255, A: 255})

	var s serialize.Image
	raw, err := s.Encode(src)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var uri string
	if err := json.Unmarshal(raw, &uri); err != nil {
		t.Fatalf("encoded form is not a JSON string: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("encoded form %q is not a png data URI", uri[:min(len(uri), 30)])
	}

	got, err := s.Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Bounds() != src.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
}

func TestImageRejectsPlainString(t *testing.T) {
	var s serialize.Image
	if _, err := s.Decode(json.RawMessage(`"hello"`)); err == nil {
		t.Fatal("Decode of a non data URI should fail")
	}
}
