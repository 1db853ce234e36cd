package sortable

import (
	"go/ast"
	"go/token"

	"github.com/gosorted/gosorted/internal/order"
)

// StructField adapts one field of a struct type. Only named fields are
// supported: an embedded field has no name of its own to sort by.
func StructField(field *ast.Field, dirs []Directive) Decl {
	return &structField{field: field, dirs: dirs}
}

type structField struct {
	field *ast.Field
	dirs  []Directive
}

func (f *structField) Directives() *[]Directive { return &f.dirs }

func (f *structField) Pos() token.Pos { return f.field.Pos() }

func (f *structField) Key() (order.Key, error) {
	if len(f.field.Names) == 0 {
		return order.Key{}, &UnsupportedError{Reason: "embedded fields have no sortable name", Pos: f.field.Pos()}
	}

	return order.Key{
		Path: order.PathOf(f.field.Names[0].Name),
		Pos:  f.field.Pos(),
	}, nil
}
