package codes

import "testing"

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("generate error: %v", err)
		}
		if len(code) != Length {
			t.Fatalf("expected %d characters, got %q", Length, code)
		}
		for _, r := range code {
			if !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
				t.Fatalf("unexpected character %q in code %q", r, code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 90 {
		t.Fatalf("codes are not sufficiently random: %d distinct of 100", len(seen))
	}
}

func TestGenerateUniformSpread(t *testing.T) {
	const draws = 45000
	counts := make(map[byte]int)
	for i := 0; i < draws; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("generate error: %v", err)
		}
		for j := 0; j < len(code); j++ {
			counts[code[j]]++
		}
	}
	if len(counts) != len(alphabet) {
		t.Fatalf("expected all %d characters to appear, got %d", len(alphabet), len(counts))
	}
	// each character expects draws*Length/36 hits; a skewed draw that
	// favours part of the alphabet lands well outside this band
	const expected = draws * Length / len(alphabet)
	for c, n := range counts {
		if n < expected-expected/20 || n > expected+expected/20 {
			t.Fatalf("character %q drawn %d times, expected about %d", c, n, expected)
		}
	}
}
