package wal

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the result of evaluating a WAL expression: an int64, a bool, a
// string, or a []Value list.
type Value interface{}

// Evaluator evaluates parsed WAL expressions against a trace. Evaluation
// moves the trace cursor: step advances it, and find/count sweep it across
// the whole trace, leaving it at the last index visited.
type Evaluator struct {
	trace *Trace
}

// NewEvaluator creates an evaluator bound to a trace.
func NewEvaluator(t *Trace) *Evaluator {
	return &Evaluator{trace: t}
}

// Eval evaluates a parsed WAL expression.
func (ev *Evaluator) Eval(expr Expr) (Value, error) {
	if expr.IsAtom() {
		return ev.evalAtom(expr.Atom)
	}
	if len(expr.List) == 0 {
		return nil, fmt.Errorf("cannot evaluate empty list")
	}

	head := expr.List[0]
	if !head.IsAtom() {
		return nil, fmt.Errorf("operator position must hold a symbol, got %s", head)
	}
	args := expr.List[1:]

	switch head.Atom {
	case "find":
		return ev.evalFind(args)
	case "count":
		return ev.evalCount(args)
	case "length":
		return ev.evalLength(args)
	case "step":
		return ev.evalStep(args)
	case "if":
		return ev.evalIf(args)
	case "=", "!=", "<", ">", "<=", ">=":
		return ev.evalCompare(head.Atom, args)
	case "&&", "||":
		return ev.evalLogic(head.Atom, args)
	case "+", "-", "*", "/":
		return ev.evalArith(head.Atom, args)
	default:
		return nil, fmt.Errorf("undefined function: %s", head.Atom)
	}
}

func (ev *Evaluator) evalAtom(atom string) (Value, error) {
	switch atom {
	case "true", "#t":
		return true, nil
	case "false", "#f":
		return false, nil
	case "INDEX":
		return int64(ev.trace.Index()), nil
	case "SIGNALS":
		names := ev.trace.Signals()
		list := make([]Value, len(names))
		for i, n := range names {
			list[i] = n
		}
		return list, nil
	}

	// Numeric literal: decimal, 0x hex, 0b binary.
	if n, err := strconv.ParseInt(atom, 0, 64); err == nil {
		return n, nil
	}

	if ev.trace.HasSignal(atom) {
		raw, err := ev.trace.SignalValue(atom)
		if err != nil {
			return nil, err
		}
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n, nil
		}
		// Non-numeric values (x, z) stay as strings.
		return raw, nil
	}

	return nil, fmt.Errorf("undefined symbol or signal: %s", atom)
}

// evalFind returns the list of time indices where the condition is truthy.
// It sweeps the cursor across the entire trace.
func (ev *Evaluator) evalFind(args []Expr) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("find expects 1 argument, got %d", len(args))
	}

	hits := make([]Value, 0)
	for i := 0; i < ev.trace.Length(); i++ {
		ev.trace.setIndex(i)
		v, err := ev.Eval(args[0])
		if err != nil {
			return nil, err
		}
		if truthy(v) {
			hits = append(hits, int64(i))
		}
	}
	return hits, nil
}

func (ev *Evaluator) evalCount(args []Expr) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("count expects 1 argument, got %d", len(args))
	}

	var n int64
	for i := 0; i < ev.trace.Length(); i++ {
		ev.trace.setIndex(i)
		v, err := ev.Eval(args[0])
		if err != nil {
			return nil, err
		}
		if truthy(v) {
			n++
		}
	}
	return n, nil
}

func (ev *Evaluator) evalLength(args []Expr) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("length expects 1 argument, got %d", len(args))
	}
	v, err := ev.Eval(args[0])
	if err != nil {
		return nil, err
	}
	list, ok := v.([]Value)
	if !ok {
		return nil, fmt.Errorf("length: argument must be a list, got %s", KindOf(v))
	}
	return int64(len(list)), nil
}

func (ev *Evaluator) evalStep(args []Expr) (Value, error) {
	n := int64(1)
	if len(args) > 1 {
		return nil, fmt.Errorf("step expects at most 1 argument, got %d", len(args))
	}
	if len(args) == 1 {
		v, err := ev.Eval(args[0])
		if err != nil {
			return nil, err
		}
		i, ok := toInt(v)
		if !ok {
			return nil, fmt.Errorf("step: argument must be a number, got %s", KindOf(v))
		}
		n = i
	}
	if err := ev.trace.Step(int(n)); err != nil {
		return nil, err
	}
	return int64(ev.trace.Index()), nil
}

func (ev *Evaluator) evalIf(args []Expr) (Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, fmt.Errorf("if expects 2 or 3 arguments, got %d", len(args))
	}
	cond, err := ev.Eval(args[0])
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return ev.Eval(args[1])
	}
	if len(args) == 3 {
		return ev.Eval(args[2])
	}
	return false, nil
}

func (ev *Evaluator) evalCompare(op string, args []Expr) (Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%s expects 2 arguments, got %d", op, len(args))
	}
	left, err := ev.Eval(args[0])
	if err != nil {
		return nil, err
	}
	right, err := ev.Eval(args[1])
	if err != nil {
		return nil, err
	}

	li, lok := toInt(left)
	ri, rok := toInt(right)

	switch op {
	case "=":
		if lok && rok {
			return li == ri, nil
		}
		return fmt.Sprint(left) == fmt.Sprint(right), nil
	case "!=":
		if lok && rok {
			return li != ri, nil
		}
		return fmt.Sprint(left) != fmt.Sprint(right), nil
	}

	if !lok || !rok {
		return nil, fmt.Errorf("%s requires numeric operands, got %s and %s", op, KindOf(left), KindOf(right))
	}
	switch op {
	case "<":
		return li < ri, nil
	case ">":
		return li > ri, nil
	case "<=":
		return li <= ri, nil
	default: // ">="
		return li >= ri, nil
	}
}

func (ev *Evaluator) evalLogic(op string, args []Expr) (Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%s expects at least 2 arguments, got %d", op, len(args))
	}
	for _, arg := range args {
		v, err := ev.Eval(arg)
		if err != nil {
			return nil, err
		}
		if op == "&&" && !truthy(v) {
			return false, nil
		}
		if op == "||" && truthy(v) {
			return true, nil
		}
	}
	return op == "&&", nil
}

func (ev *Evaluator) evalArith(op string, args []Expr) (Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%s expects at least 2 arguments, got %d", op, len(args))
	}

	acc := int64(0)
	for i, arg := range args {
		v, err := ev.Eval(arg)
		if err != nil {
			return nil, err
		}
		n, ok := toInt(v)
		if !ok {
			return nil, fmt.Errorf("%s requires numeric operands, got %s", op, KindOf(v))
		}
		if i == 0 {
			acc = n
			continue
		}
		switch op {
		case "+":
			acc += n
		case "-":
			acc -= n
		case "*":
			acc *= n
		case "/":
			if n == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			acc /= n
		}
	}
	return acc, nil
}

// truthy decides whether a value counts as true in a WAL condition.
func truthy(v Value) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int64:
		return x != 0
	case string:
		return x != "" && x != "0"
	case []Value:
		return len(x) > 0
	default:
		return false
	}
}

func toInt(v Value) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// KindOf names a value's dynamic shape for display: "int", "bool", "str",
// "list", or "nil".
func KindOf(v Value) string {
	switch v.(type) {
	case int64:
		return "int"
	case bool:
		return "bool"
	case string:
		return "str"
	case []Value:
		return "list"
	case nil:
		return "nil"
	default:
		return "unknown"
	}
}

// FormatValue renders a value for display. Lists render with brackets and
// space-separated elements.
func FormatValue(v Value) string {
	switch x := v.(type) {
	case []Value:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = FormatValue(e)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(x)
	}
}
