package m68k

import (
	"errors"
	"testing"
)

func TestParseVariantAcceptsKnownSpellings(t *testing.T) {
	cases := map[string]Variant{
		"68000":   MC68000,
		"m68000":  MC68000,
		"68020":   MC68020,
		"020":     MC68020,
		"68EC020": MC68EC020,
		"  68040": MC68040,
		"scc68070": SCC68070,
	}
	for name, want := range cases {
		got, err := ParseVariant(name)
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseVariant(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseVariantRejectsUnknownName(t *testing.T) {
	_, err := ParseVariant("68060")
	if !errors.Is(err, ErrBadVariant) {
		t.Fatalf("err = %v, want ErrBadVariant", err)
	}
}
