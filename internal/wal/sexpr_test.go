package wal

import (
	"strings"
	"testing"
)

func TestParseSexprAtom(t *testing.T) {
	expr, err := ParseSexpr("tb.clk")
	if err != nil {
		t.Fatalf("ParseSexpr failed: %v", err)
	}
	if !expr.IsAtom() || expr.Atom != "tb.clk" {
		t.Errorf("expected atom tb.clk, got %+v", expr)
	}
}

func TestParseSexprNested(t *testing.T) {
	expr, err := ParseSexpr("(length (find (= tb.clk 1)))")
	if err != nil {
		t.Fatalf("ParseSexpr failed: %v", err)
	}
	if expr.IsAtom() {
		t.Fatal("expected a list")
	}
	if len(expr.List) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(expr.List))
	}
	if expr.List[0].Atom != "length" {
		t.Errorf("head = %q, want length", expr.List[0].Atom)
	}
	if got := expr.String(); got != "(length (find (= tb.clk 1)))" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseSexprComments(t *testing.T) {
	expr, err := ParseSexpr("(+ 1 2) ; add them")
	if err != nil {
		t.Fatalf("ParseSexpr failed: %v", err)
	}
	if len(expr.List) != 3 {
		t.Errorf("expected 3 elements, got %d", len(expr.List))
	}
}

func TestParseSexprErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "empty expression"},
		{"only comment", "; nothing here", "empty expression"},
		{"missing close", "(find (= clk 1)", "missing ')'"},
		{"stray close", ")", "unexpected ')'"},
		{"trailing input", "(+ 1 2) 3", "trailing input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSexpr(tt.src)
			if err == nil {
				t.Fatalf("ParseSexpr(%q) should fail", tt.src)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err.Error(), tt.want)
			}
		})
	}
}
