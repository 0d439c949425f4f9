package xmlpull

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestResolveCharset(t *testing.T) {
	tests := []struct {
		label    string
		name     string
		identity bool
	}{
		{label: "UTF-8", name: "UTF-8", identity: true},
		{label: "utf-8", name: "UTF-8", identity: true},
		{label: " utf8 ", name: "UTF-8", identity: true},
		{label: "ISO-8859-1", name: "ISO-8859-1"},
		{label: "windows-1252", name: "windows-1252"},
		{label: "Shift_JIS", name: "Shift_JIS"},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			cs, err := ResolveCharset(tc.label)
			if err != nil {
				t.Fatalf("ResolveCharset(%q) error = %v", tc.label, err)
			}
			if cs.Name() != tc.name {
				t.Fatalf("Name = %q, want %q", cs.Name(), tc.name)
			}
			if cs.IsUTF8() != tc.identity {
				t.Fatalf("IsUTF8 = %v, want %v", cs.IsUTF8(), tc.identity)
			}
			if cs.IsZero() {
				t.Fatalf("IsZero = true, want false")
			}
		})
	}
}

func TestResolveCharsetUnknown(t *testing.T) {
	for _, label := range []string{"", "no-such-charset"} {
		_, err := ResolveCharset(label)
		if !errors.Is(err, ErrEncoding) {
			t.Fatalf("ResolveCharset(%q) error = %v, want ErrEncoding", label, err)
		}
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Fatalf("error type = %T, want *EncodingError", err)
		}
	}
}

func TestCharsetDecoderLatin1(t *testing.T) {
	cs, err := ResolveCharset("ISO-8859-1")
	if err != nil {
		t.Fatalf("ResolveCharset error = %v", err)
	}
	src, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("café"))
	if err != nil {
		t.Fatalf("encode error = %v", err)
	}
	dec := charsetDecoder{charset: cs}
	got, err := dec.appendDecoded([]byte("x"), src)
	if err != nil {
		t.Fatalf("appendDecoded error = %v", err)
	}
	if string(got) != "xcafé" {
		t.Fatalf("decoded = %q, want xcafé", got)
	}
}

func TestCharsetDecoderUTF8Identity(t *testing.T) {
	cs, err := ResolveCharset("UTF-8")
	if err != nil {
		t.Fatalf("ResolveCharset error = %v", err)
	}
	dec := charsetDecoder{charset: cs}
	got, err := dec.appendDecoded(nil, []byte("日本語"))
	if err != nil {
		t.Fatalf("appendDecoded error = %v", err)
	}
	if string(got) != "日本語" {
		t.Fatalf("decoded = %q, want 日本語", got)
	}
	if dec.dec != nil {
		t.Fatalf("valid UTF-8 should not allocate a transformer")
	}
}

func TestAppendTransformedGrowsShortDst(t *testing.T) {
	src := make([]byte, 300)
	for i := range src {
		src[i] = 0xE9
	}
	got, err := appendTransformed(make([]byte, 0, 1), src, charmap.ISO8859_1.NewDecoder())
	if err != nil {
		t.Fatalf("appendTransformed error = %v", err)
	}
	if len(got) != 600 {
		t.Fatalf("len = %d, want 600", len(got))
	}
}
