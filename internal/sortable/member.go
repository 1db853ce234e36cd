package sortable

import (
	"go/ast"
	"go/token"

	"github.com/gosorted/gosorted/internal/order"
)

// Category codes of file members. Kinds are grouped before being
// sorted within each kind.
const (
	catConst order.Category = iota
	catType
	catFunc
	catVar
	catOther
)

// TopLevel adapts a file's top-level declaration. Constants come
// before types, types before functions, functions before variables.
// Methods sort by a two-segment [receiver, name] path, so methods of
// one receiver stay together.
func TopLevel(decl ast.Decl, dirs []Directive) Decl {
	return &topLevel{decl: decl, dirs: dirs}
}

type topLevel struct {
	decl ast.Decl
	dirs []Directive
}

func (m *topLevel) Directives() *[]Directive { return &m.dirs }

func (m *topLevel) Pos() token.Pos { return m.decl.Pos() }

func (m *topLevel) Key() (order.Key, error) {
	switch d := m.decl.(type) {
	case *ast.GenDecl:
		return m.genDeclKey(d)
	case *ast.FuncDecl:
		return m.funcDeclKey(d)
	default:
		return order.Key{}, &UnsupportedError{Reason: "unsupported declaration kind", Pos: m.decl.Pos()}
	}
}

// genDeclKey keys a const/var/type declaration by the name of its
// first spec, the way a multi-alternative pattern is keyed by its
// first alternative.
func (m *topLevel) genDeclKey(d *ast.GenDecl) (order.Key, error) {
	var cat order.Category
	switch d.Tok {
	case token.CONST:
		cat = catConst
	case token.TYPE:
		cat = catType
	case token.VAR:
		cat = catVar
	default:
		return order.Key{}, &UnsupportedError{Reason: "unsupported declaration kind", Pos: d.Pos()}
	}

	if len(d.Specs) == 0 {
		return order.Key{}, &UnsupportedError{Reason: "declaration group without specs", Pos: d.Pos()}
	}

	var name string
	switch s := d.Specs[0].(type) {
	case *ast.ValueSpec:
		if len(s.Names) == 0 {
			return order.Key{}, &UnsupportedError{Reason: "value spec without a name", Pos: s.Pos()}
		}
		name = s.Names[0].Name
	case *ast.TypeSpec:
		name = s.Name.Name
	default:
		return order.Key{}, &UnsupportedError{Reason: "unsupported declaration kind", Pos: s.Pos()}
	}

	return order.Key{Category: cat, Path: order.PathOf(name), Pos: d.Pos()}, nil
}

func (m *topLevel) funcDeclKey(d *ast.FuncDecl) (order.Key, error) {
	segments := []string{d.Name.Name}
	if d.Recv != nil && len(d.Recv.List) > 0 {
		recv, err := receiverTypeName(d.Recv.List[0].Type)
		if err != nil {
			return order.Key{}, err
		}
		segments = []string{recv, d.Name.Name}
	}

	return order.Key{Category: catFunc, Path: order.PathOf(segments...), Pos: d.Pos()}, nil
}

// receiverTypeName digs the receiver's base type name out of pointer,
// parenthesized and generic receiver forms.
func receiverTypeName(expr ast.Expr) (string, error) {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, nil
	case *ast.StarExpr:
		return receiverTypeName(e.X)
	case *ast.ParenExpr:
		return receiverTypeName(e.X)
	case *ast.IndexExpr:
		return receiverTypeName(e.X)
	case *ast.IndexListExpr:
		return receiverTypeName(e.X)
	default:
		return "", &UnsupportedError{Reason: "unsupported method receiver", Pos: expr.Pos()}
	}
}
