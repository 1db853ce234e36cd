// Package gosorted implements a static-ordering checker for Go
// declarations: elements of marked containers must appear in sorted
// order, and a misplaced element is reported together with the element
// it should precede.
package gosorted

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"github.com/gosorted/gosorted/internal/order"
	"github.com/gosorted/gosorted/internal/sortable"
)

const doc = `gosorted checks that declarations appear in sorted order

Four container kinds are supported: grouped const/var declarations,
struct field lists, a file's top-level declarations and switch or
type-switch case clauses. A container is checked when it carries a
//sorted:check marker (//gosorted:check is equivalent); for the file
container the marker goes between the package clause and the first
declaration. A single declaration is taken out of consideration with
//sorted:ignore. The default clause of a switch may sit first or last.`

var configPath string

// Analyzer is the gosorted entry point for go/analysis drivers.
var Analyzer = &analysis.Analyzer{
	Name: "gosorted",
	Doc:  doc,
	Run:  run,
}

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "path to a gosorted config file")
}

func run(pass *analysis.Pass) (any, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("load gosorted config: %w", err)
		}
		cfg = loaded
	}

	for _, file := range pass.Files {
		for _, p := range CheckFile(pass.Fset, file, cfg) {
			pass.Reportf(p.Pos, "%s", p.Message)
		}
	}

	return nil, nil
}

// Problem is a single ordering diagnostic found in a file.
type Problem struct {
	Pos     token.Pos
	Message string
}

// CheckFile checks every enabled container of the file and collects
// diagnostics. Containers are independent: a failure in one does not
// stop the others from being checked.
func CheckFile(fset *token.FileSet, file *ast.File, cfg *Config) []Problem {
	c := &fileChecker{fset: fset, file: file, cfg: cfg}
	c.run()

	return c.problems
}

type fileChecker struct {
	fset *token.FileSet
	file *ast.File
	cfg  *Config

	cmap     ast.CommentMap // built on first case-clause lookup
	problems []Problem
}

func (c *fileChecker) run() {
	if c.cfg.Enabled(KindFile) && c.wants(c.fileDirectives()) {
		c.check(c.fileMembers())
	}

	ast.Inspect(c.file, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.GenDecl:
			c.genDecl(n)
		case *ast.SwitchStmt:
			c.switchBody(n, n.Body)
		case *ast.TypeSwitchStmt:
			c.switchBody(n, n.Body)
		}
		return true
	})
}

// wants decides whether a container with the given directives is under
// check: either every container of an enabled kind is, or the marker
// opts it in.
func (c *fileChecker) wants(dirs []sortable.Directive) bool {
	return !c.cfg.MarkerRequired() || sortable.Marked(dirs)
}

// check runs the two-policy verification over one container.
func (c *fileChecker) check(decls []sortable.Decl) {
	keys, err := sortable.Collect(decls)
	if err != nil {
		var unsup *sortable.UnsupportedError
		if errors.As(err, &unsup) {
			c.report(unsup.Pos, unsup.Error())
			return
		}
		c.report(c.file.Pos(), err.Error())
		return
	}

	if v := order.Check(keys); v != nil {
		c.report(v.Lesser.Pos, fmt.Sprintf("%s should sort before %s", v.Lesser.Path, v.Greater.Path))
	}
}

func (c *fileChecker) report(pos token.Pos, message string) {
	c.problems = append(c.problems, Problem{Pos: pos, Message: message})
}

// genDecl dispatches a declaration group to the const/var group
// container or, for type groups, to the struct field container of
// every marked struct spec.
func (c *fileChecker) genDecl(d *ast.GenDecl) {
	switch d.Tok {
	case token.CONST, token.VAR:
		if !c.cfg.Enabled(KindGroup) || !d.Lparen.IsValid() {
			return
		}
		if !c.wants(sortable.ParseDirectives(d.Doc)) {
			return
		}
		c.check(c.valueSpecs(d))

	case token.TYPE:
		if !c.cfg.Enabled(KindStruct) {
			return
		}
		for _, spec := range d.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			if !c.wants(sortable.ParseDirectives(d.Doc, ts.Doc)) {
				continue
			}
			c.check(c.structFields(st))
		}
	}
}

func (c *fileChecker) valueSpecs(d *ast.GenDecl) []sortable.Decl {
	decls := make([]sortable.Decl, 0, len(d.Specs))
	for _, spec := range d.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		decls = append(decls, sortable.ValueSpec(vs, sortable.ParseDirectives(vs.Doc, vs.Comment)))
	}

	return decls
}

func (c *fileChecker) structFields(st *ast.StructType) []sortable.Decl {
	decls := make([]sortable.Decl, 0, len(st.Fields.List))
	for _, field := range st.Fields.List {
		decls = append(decls, sortable.StructField(field, sortable.ParseDirectives(field.Doc, field.Comment)))
	}

	return decls
}

func (c *fileChecker) switchBody(stmt ast.Stmt, body *ast.BlockStmt) {
	if !c.cfg.Enabled(KindSwitch) {
		return
	}
	if !c.wants(c.nodeDirectives(stmt)) {
		return
	}

	decls := make([]sortable.Decl, 0, len(body.List))
	for _, s := range body.List {
		clause, ok := s.(*ast.CaseClause)
		if !ok {
			continue
		}
		decls = append(decls, sortable.CaseArm(clause, c.nodeDirectives(clause)))
	}

	c.check(decls)
}

// nodeDirectives resolves directives of nodes that carry no Doc field
// of their own (statements, case clauses) through the file's comment
// map.
func (c *fileChecker) nodeDirectives(node ast.Node) []sortable.Directive {
	if c.cmap == nil {
		c.cmap = ast.NewCommentMap(c.fset, c.file, c.file.Comments)
	}

	return sortable.ParseDirectives(c.cmap[node]...)
}

// fileMembers wraps the file's top-level declarations. Imports are
// skipped: their order belongs to goimports.
func (c *fileChecker) fileMembers() []sortable.Decl {
	decls := make([]sortable.Decl, 0, len(c.file.Decls))
	for _, d := range c.file.Decls {
		if g, ok := d.(*ast.GenDecl); ok && g.Tok == token.IMPORT {
			continue
		}

		var docGroup *ast.CommentGroup
		switch n := d.(type) {
		case *ast.GenDecl:
			docGroup = n.Doc
		case *ast.FuncDecl:
			docGroup = n.Doc
		}
		decls = append(decls, sortable.TopLevel(d, sortable.ParseDirectives(docGroup)))
	}

	return decls
}

// fileDirectives collects directives addressed to the file container:
// the package doc plus free-standing comments between the package
// clause and the first declaration.
func (c *fileChecker) fileDirectives() []sortable.Directive {
	groups := []*ast.CommentGroup{c.file.Doc}

	limit := c.file.End()
	var firstDoc *ast.CommentGroup
	if len(c.file.Decls) > 0 {
		first := c.file.Decls[0]
		limit = first.Pos()
		switch n := first.(type) {
		case *ast.GenDecl:
			firstDoc = n.Doc
		case *ast.FuncDecl:
			firstDoc = n.Doc
		}
	}

	for _, g := range c.file.Comments {
		if g == c.file.Doc || g == firstDoc {
			continue
		}
		if g.Pos() > c.file.Name.End() && g.End() < limit {
			groups = append(groups, g)
		}
	}

	return sortable.ParseDirectives(groups...)
}
