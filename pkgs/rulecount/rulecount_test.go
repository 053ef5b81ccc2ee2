package rulecount

import "testing"

func TestCountEmptySource(t *testing.T) {
	m := Count(nil)
	if m.Rule2aSize != 0 || m.Rule2bSize != 0 {
		t.Fatalf("empty source: got 2a=%d 2b=%d, want 0,0", m.Rule2aSize, m.Rule2bSize)
	}
}

func TestCountWhitespaceOnly(t *testing.T) {
	m := Count([]byte("   \n\t  "))
	if m.Rule2aSize == 0 {
		t.Fatalf("whitespace-only source should have rule_2a_size > 0")
	}
	if m.Rule2bSize != 0 {
		t.Fatalf("whitespace-only source should have rule_2b_size == 0, got %d", m.Rule2bSize)
	}
}

func TestCountIdentifierAndSemicolon(t *testing.T) {
	m := Count([]byte("a;"))
	if m.Rule2aSize != 2 || m.Rule2bSize != 2 {
		t.Fatalf("got 2a=%d 2b=%d, want 2,2", m.Rule2aSize, m.Rule2bSize)
	}
	if m.CharWarning || m.NULWarning || m.TrigraphWarning || m.WordbufWarning || m.UngetcWarning {
		t.Fatalf("unexpected warning set for plain source")
	}
}

func TestCountTrigraphResolved(t *testing.T) {
	m := Count([]byte("??="))
	if m.Rule2aSize != 3 {
		t.Fatalf("rule_2a_size = %d, want 3", m.Rule2aSize)
	}
	if m.Rule2bSize != 1 {
		t.Fatalf("rule_2b_size = %d, want 1", m.Rule2bSize)
	}
	if m.TrigraphWarning {
		t.Fatalf("a resolved trigraph must not set TrigraphWarning")
	}
}

func TestCountUnknownTrigraph(t *testing.T) {
	m := Count([]byte("??z"))
	if !m.TrigraphWarning {
		t.Fatalf("unrecognized trigraph must set TrigraphWarning")
	}
}

func TestCountKeywordIgnored(t *testing.T) {
	m := Count([]byte("int x;"))
	// "int" contributes 0, " " contributes 0, "x" contributes 1, ";" contributes 1.
	if m.Rule2bSize != 2 {
		t.Fatalf("rule_2b_size = %d, want 2 (int ignored, x and ; counted)", m.Rule2bSize)
	}
}

func TestCountStringLiteralIsSingleUnit(t *testing.T) {
	m := Count([]byte(`"hello world";`))
	// The whole string literal counts once, the semicolon once more.
	if m.Rule2bSize != 2 {
		t.Fatalf("rule_2b_size = %d, want 2", m.Rule2bSize)
	}
}

func TestCountHighBitAndNUL(t *testing.T) {
	m := Count([]byte{'a', 0x80, 0})
	if !m.CharWarning {
		t.Fatalf("expected CharWarning for high-bit byte")
	}
	if !m.NULWarning {
		t.Fatalf("expected NULWarning for NUL byte")
	}
}

func TestCountMonotonicOnPrefixExtension(t *testing.T) {
	prefixes := []string{"", "i", "in", "int", "int ", "int x", "int x;"}
	var prevA, prevB int64
	for _, p := range prefixes {
		m := Count([]byte(p))
		if m.Rule2aSize < prevA || m.Rule2bSize < prevB {
			t.Fatalf("monotonicity violated at %q: 2a=%d (prev %d) 2b=%d (prev %d)", p, m.Rule2aSize, prevA, m.Rule2bSize, prevB)
		}
		prevA, prevB = m.Rule2aSize, m.Rule2bSize
	}
}
