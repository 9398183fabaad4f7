// Package filter evaluates CEL expressions over course records.
package filter

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"
)

// Var is the name the filtered record is bound to in expressions, e.g.
// `course.title.contains("Bookcase")`.
const Var = "course"

// Error is returned for expressions that fail to compile or evaluate. The
// message is safe to return to clients.
type Error struct {
	Expr  string
	cause error
}

// Error satisfies [error].
func (e *Error) Error() string {
	return fmt.Sprintf("invalid filter %q: %v", e.Expr, e.cause)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.cause }

var env = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		ext.Strings(),
		cel.Variable(Var, cel.MapType(cel.StringType, cel.DynType)),
	)
})

// Filter is a compiled boolean expression.
type Filter struct {
	expr string
	prg  cel.Program
}

// Compile parses and type-checks expr, which must evaluate to a bool.
func Compile(expr string) (*Filter, error) {
	celEnv, err := env()
	if err != nil {
		return nil, fmt.Errorf("failed to create filter CEL environment: %w", err)
	}
	ast, iss := celEnv.Compile(expr)
	if err = iss.Err(); err != nil {
		return nil, &Error{Expr: expr, cause: err}
	}
	if out := ast.OutputType(); !out.IsExactType(cel.BoolType) && !out.IsExactType(cel.DynType) {
		return nil, &Error{Expr: expr, cause: fmt.Errorf("expression must be a bool, got %s", out)}
	}
	prg, err := celEnv.Program(ast)
	if err != nil {
		return nil, &Error{Expr: expr, cause: err}
	}
	return &Filter{expr: expr, prg: prg}, nil
}

// Match reports whether record satisfies the filter.
func (f *Filter) Match(record map[string]any) (bool, error) {
	out, _, err := f.prg.Eval(map[string]any{Var: record})
	if err != nil {
		return false, &Error{Expr: f.expr, cause: err}
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, &Error{Expr: f.expr, cause: fmt.Errorf("expression produced %s, not bool", out.Type())}
	}
	return matched, nil
}

// Apply returns the items whose record, as produced by toRecord, satisfies f.
// A nil f matches everything.
func Apply[T any](f *Filter, items []T, toRecord func(T) map[string]any) ([]T, error) {
	if f == nil {
		return items, nil
	}
	matched := make([]T, 0, len(items))
	for _, item := range items {
		ok, err := f.Match(toRecord(item))
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}
