package sortable

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/gosorted/gosorted/internal/order"
)

// CaseArm adapts a case clause of a switch or type switch. A default
// clause is the catch-all and yields the wildcard segment. A clause
// listing several expressions sorts by the first one only.
func CaseArm(clause *ast.CaseClause, dirs []Directive) Decl {
	return &caseArm{clause: clause, dirs: dirs}
}

type caseArm struct {
	clause *ast.CaseClause
	dirs   []Directive
}

func (a *caseArm) Directives() *[]Directive { return &a.dirs }

func (a *caseArm) Pos() token.Pos { return a.clause.Pos() }

func (a *caseArm) Key() (order.Key, error) {
	if len(a.clause.List) == 0 {
		// default clause
		return order.Key{
			Path: order.PathOf(order.Wildcard),
			Pos:  a.clause.Pos(),
		}, nil
	}

	segments, err := caseSegments(a.clause.List[0])
	if err != nil {
		return order.Key{}, err
	}

	return order.Key{
		Path: order.PathOf(segments...),
		Pos:  a.clause.Pos(),
	}, nil
}

// caseSegments derives the sort path of a case expression. Identifiers
// and selector chains contribute their full name path; pointer types,
// composite literals and calls are keyed by the underlying name;
// string literals are keyed by their unquoted value. Anything else has
// no stable name to sort by.
func caseSegments(expr ast.Expr) ([]string, error) {
	switch e := expr.(type) {
	case *ast.Ident:
		return []string{e.Name}, nil

	case *ast.SelectorExpr:
		base, err := caseSegments(e.X)
		if err != nil {
			return nil, err
		}
		return append(base, e.Sel.Name), nil

	case *ast.StarExpr:
		return caseSegments(e.X)

	case *ast.ParenExpr:
		return caseSegments(e.X)

	case *ast.CompositeLit:
		if e.Type == nil {
			return nil, &UnsupportedError{Reason: "composite literal without a type", Pos: e.Pos()}
		}
		return caseSegments(e.Type)

	case *ast.CallExpr:
		return caseSegments(e.Fun)

	case *ast.BasicLit:
		if e.Kind != token.STRING {
			reason := fmt.Sprintf("%s literal case expressions are not sortable", strings.ToLower(e.Kind.String()))
			return nil, &UnsupportedError{Reason: reason, Pos: e.Pos()}
		}
		value, err := strconv.Unquote(e.Value)
		if err != nil {
			return nil, &UnsupportedError{Reason: "malformed string literal", Pos: e.Pos()}
		}
		return []string{value}, nil

	default:
		return nil, &UnsupportedError{Reason: "unsupported case expression", Pos: expr.Pos()}
	}
}
