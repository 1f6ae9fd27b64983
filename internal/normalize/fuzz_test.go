package normalize

import "testing"

func FuzzCType(f *testing.F) {
	for _, seed := range []string{"", "*", "五段-ワア行", "サ変・ｰスル", "サ変--ズル", "　一段", "xyz"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got, fallback := CType(s)
		if !IsAllowedCType(got) {
			t.Fatalf("CType(%q) = %q, outside vocabulary", s, got)
		}
		if fallback && got != Star {
			t.Fatalf("CType(%q) reported fallback with %q", s, got)
		}
		again, fb := CType(got)
		if again != got || fb {
			t.Fatalf("CType not idempotent: %q -> %q -> %q (fallback=%v)", s, got, again, fb)
		}
	})
}

func FuzzCForm(f *testing.F) {
	for _, seed := range []string{"", "*", "終止形-一般", "命令形", "意志推量形", "語幹-一般"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got, fallback := CForm(s)
		if !IsAllowedCForm(got) {
			t.Fatalf("CForm(%q) = %q, outside vocabulary", s, got)
		}
		if fallback && got != Star {
			t.Fatalf("CForm(%q) reported fallback with %q", s, got)
		}
	})
}
