// Package sortable adapts Go AST declaration shapes into the sort keys
// the ordering verifier consumes. One adapter exists per supported
// container kind: grouped const/var specs, struct fields, a file's
// top-level declarations and switch case clauses.
package sortable

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/gosorted/gosorted/internal/order"
)

const (
	prefixShort     = "//sorted:"
	prefixQualified = "//gosorted:"
)

// Directive is a parsed gosorted machine comment. The short and the
// tool-qualified spellings are fully equivalent: //sorted:ignore and
// //gosorted:ignore name the same directive.
type Directive struct {
	Name    string
	Comment *ast.Comment
}

// ParseDirectives extracts gosorted directives from the given comment
// groups, in source order. Nil groups are allowed and skipped.
func ParseDirectives(groups ...*ast.CommentGroup) []Directive {
	var dirs []Directive
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			name, ok := directiveName(c.Text)
			if !ok {
				continue
			}
			dirs = append(dirs, Directive{Name: name, Comment: c})
		}
	}

	return dirs
}

// directiveName recognizes machine comments of the //sorted:<name> and
// //gosorted:<name> forms. Regular prose comments never match: a
// directive has no space between the slashes and the prefix.
func directiveName(text string) (string, bool) {
	switch {
	case strings.HasPrefix(text, prefixShort):
		return strings.TrimSpace(strings.TrimPrefix(text, prefixShort)), true
	case strings.HasPrefix(text, prefixQualified):
		return strings.TrimSpace(strings.TrimPrefix(text, prefixQualified)), true
	default:
		return "", false
	}
}

// Marked reports whether the directive list carries a check marker.
func Marked(dirs []Directive) bool {
	for _, d := range dirs {
		if d.Name == "check" {
			return true
		}
	}

	return false
}

// Decl is one element of an ordered container under check.
type Decl interface {
	// Directives exposes the declaration's directive list for mutation.
	Directives() *[]Directive
	// Key derives the declaration's sort key.
	Key() (order.Key, error)
	// Pos locates the declaration in its source file.
	Pos() token.Pos
}

// Collect strips exclusion directives and derives sort keys for the
// remaining declarations, preserving container order. Exclusion is
// checked before key derivation, so an excluded declaration never has
// to produce a valid path. The first unsupported declaration aborts
// the whole container.
func Collect(decls []Decl) ([]order.Key, error) {
	keys := make([]order.Key, 0, len(decls))
	for _, d := range decls {
		if dropExcluded(d.Directives()) {
			continue
		}

		key, err := d.Key()
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, nil
}

// dropExcluded removes the first exclusion directive found, if any,
// leaving every other directive untouched. At most one marker is
// consumed per declaration.
func dropExcluded(dirs *[]Directive) bool {
	for i, d := range *dirs {
		if d.Name != "ignore" {
			continue
		}
		*dirs = append((*dirs)[:i], (*dirs)[i+1:]...)
		return true
	}

	return false
}

// UnsupportedError reports a declaration whose shape cannot be reduced
// to a sort key.
type UnsupportedError struct {
	Reason string
	Pos    token.Pos
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported by //sorted:check: %s", e.Reason)
}
