package sortable

import (
	"go/ast"
	"go/token"

	"github.com/gosorted/gosorted/internal/order"
)

// ValueSpec adapts one spec of a grouped const or var declaration. The
// first declared name is the sort identity; the blank identifier maps
// onto the wildcard segment.
func ValueSpec(spec *ast.ValueSpec, dirs []Directive) Decl {
	return &valueSpec{spec: spec, dirs: dirs}
}

type valueSpec struct {
	spec *ast.ValueSpec
	dirs []Directive
}

func (v *valueSpec) Directives() *[]Directive { return &v.dirs }

func (v *valueSpec) Pos() token.Pos { return v.spec.Pos() }

func (v *valueSpec) Key() (order.Key, error) {
	if len(v.spec.Names) == 0 {
		return order.Key{}, &UnsupportedError{Reason: "value spec without a name", Pos: v.spec.Pos()}
	}

	return order.Key{
		Path: order.PathOf(v.spec.Names[0].Name),
		Pos:  v.spec.Pos(),
	}, nil
}
