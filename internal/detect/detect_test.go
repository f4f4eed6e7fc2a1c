package detect

import "testing"

func TestScan_TwoSpaceLF(t *testing.T) {
	f := Scan([]byte("{\n  \"a\": 1,\n  \"b\": 2\n}\n"))
	if f.Indent != "  " {
		t.Fatalf("indent = %q, want two spaces", f.Indent)
	}
	if f.CRLF {
		t.Fatalf("CRLF = true, want false")
	}
	if !f.TrailingNewline {
		t.Fatalf("TrailingNewline = false, want true")
	}
}

func TestScan_TabIndent(t *testing.T) {
	f := Scan([]byte("{\n\t\"a\": 1\n}"))
	if f.Indent != "\t" {
		t.Fatalf("indent = %q, want tab", f.Indent)
	}
	if f.TrailingNewline {
		t.Fatalf("TrailingNewline = true, want false")
	}
}

func TestScan_NestedDerivesUnitFromDelta(t *testing.T) {
	// Depth grows by four spaces per level; the unit is the delta, not
	// the accumulated prefix.
	text := "{\n    \"a\": {\n        \"b\": {\n            \"c\": 1\n        }\n    }\n}\n"
	f := Scan([]byte(text))
	if f.Indent != "    " {
		t.Fatalf("indent = %q, want four spaces", f.Indent)
	}
}

func TestScan_CRLFMajority(t *testing.T) {
	f := Scan([]byte("{\r\n  \"a\": 1\r\n}"))
	if !f.CRLF {
		t.Fatalf("CRLF = false, want true")
	}
	if f.TrailingNewline {
		t.Fatalf("TrailingNewline = true, want false")
	}
}

func TestScan_LineEndingTieResolvesToLF(t *testing.T) {
	// One CRLF boundary, one LF boundary.
	f := Scan([]byte("a\r\nb\nc"))
	if f.CRLF {
		t.Fatalf("CRLF = true on a tie, want false")
	}
}

func TestScan_IndentTieKeepsFirstSeen(t *testing.T) {
	// Two lines contribute a two-space unit, then two lines a tab unit.
	f := Scan([]byte("a\n  b\n  c\n\td\n\te\n"))
	if f.Indent != "  " {
		t.Fatalf("indent = %q, want first-seen two spaces", f.Indent)
	}
}

func TestScan_NoIndentation(t *testing.T) {
	f := Scan([]byte("{\"a\":1}"))
	if f.Indent != "" {
		t.Fatalf("indent = %q, want none", f.Indent)
	}
	if f.CRLF || f.TrailingNewline {
		t.Fatalf("unexpected line-ending flags: %+v", f)
	}
}

func TestScan_MixedWhitespaceCarriesNoSignal(t *testing.T) {
	// A space-then-tab prefix must not contribute a unit.
	f := Scan([]byte("{\n \t\"a\": 1,\n  \"b\": 2,\n  \"c\": 3\n}\n"))
	if f.Indent != "  " {
		t.Fatalf("indent = %q, want two spaces from the clean lines", f.Indent)
	}
}

func TestScan_UnindentedLineResetsPreviousRun(t *testing.T) {
	// After the flush-left line, the next indented line re-derives its
	// unit from its full leading run.
	f := Scan([]byte("x\n    y\nz\n    w\n"))
	if f.Indent != "    " {
		t.Fatalf("indent = %q, want four spaces", f.Indent)
	}
}

func TestScan_Empty(t *testing.T) {
	f := Scan(nil)
	if f.Indent != "" || f.CRLF || f.TrailingNewline {
		t.Fatalf("zero input should yield zero format, got %+v", f)
	}
}
