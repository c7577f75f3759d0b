package wal

import (
	"fmt"
	"strings"
	"unicode"
)

// Expr is a parsed WAL expression node: either an atom or a list.
// Atoms keep their raw source text; the evaluator decides whether an atom
// is a number, a boolean, or a signal reference.
type Expr struct {
	Atom string
	List []Expr
}

// IsAtom reports whether the node is an atom.
func (e Expr) IsAtom() bool {
	return e.List == nil
}

// String renders the expression back to WAL source form.
func (e Expr) String() string {
	if e.IsAtom() {
		return e.Atom
	}
	parts := make([]string, len(e.List))
	for i, sub := range e.List {
		parts[i] = sub.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// ParseSexpr reads a single WAL s-expression from src. Trailing input after
// the first complete expression is an error, as are unbalanced parentheses.
// Comments run from ';' to end of line.
func ParseSexpr(src string) (Expr, error) {
	tokens := tokenize(src)
	if len(tokens) == 0 {
		return Expr{}, fmt.Errorf("empty expression")
	}

	expr, rest, err := parseTokens(tokens)
	if err != nil {
		return Expr{}, err
	}
	if len(rest) > 0 {
		return Expr{}, fmt.Errorf("unexpected trailing input %q", rest[0])
	}
	return expr, nil
}

func tokenize(src string) []string {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	inComment := false
	for _, r := range src {
		switch {
		case inComment:
			if r == '\n' {
				inComment = false
			}
		case r == ';':
			flush()
			inComment = true
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func parseTokens(tokens []string) (Expr, []string, error) {
	head := tokens[0]
	rest := tokens[1:]

	switch head {
	case "(":
		list := make([]Expr, 0, 4)
		for {
			if len(rest) == 0 {
				return Expr{}, nil, fmt.Errorf("unbalanced expression: missing ')'")
			}
			if rest[0] == ")" {
				return Expr{List: list}, rest[1:], nil
			}
			sub, remaining, err := parseTokens(rest)
			if err != nil {
				return Expr{}, nil, err
			}
			list = append(list, sub)
			rest = remaining
		}
	case ")":
		return Expr{}, nil, fmt.Errorf("unbalanced expression: unexpected ')'")
	default:
		return Expr{Atom: head}, rest, nil
	}
}
