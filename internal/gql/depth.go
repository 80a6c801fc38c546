package gql

import (
	"fmt"
	"strings"

	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
)

// CheckDepth measures every operation in doc and reports each selection that
// sits deeper than maxDepth. Root selections are at depth 0, fragments add
// no depth and introspection fields are skipped. maxDepth <= 0 disables the
// check.
func CheckDepth(doc *ast.Document, maxDepth int) []gqlerrors.FormattedError {
	if doc == nil || maxDepth <= 0 {
		return nil
	}

	fragments := map[string]*ast.FragmentDefinition{}
	var operations []*ast.OperationDefinition
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.FragmentDefinition:
			if d.Name != nil {
				fragments[d.Name.Value] = d
			}
		case *ast.OperationDefinition:
			operations = append(operations, d)
		}
	}

	var errs []gqlerrors.FormattedError
	for _, op := range operations {
		d := &depthWalker{
			fragments: fragments,
			maxDepth:  maxDepth,
			operation: operationName(op),
			visiting:  map[string]bool{},
		}
		d.selections(op.SelectionSet, 0)
		errs = append(errs, d.errs...)
	}
	return errs
}

type depthWalker struct {
	fragments map[string]*ast.FragmentDefinition
	maxDepth  int
	operation string
	visiting  map[string]bool
	errs      []gqlerrors.FormattedError
}

func (d *depthWalker) selections(set *ast.SelectionSet, depth int) int {
	if set == nil {
		return 0
	}
	deepest := 0
	for _, sel := range set.Selections {
		if n := d.node(sel, depth); n > deepest {
			deepest = n
		}
	}
	return deepest
}

func (d *depthWalker) node(sel ast.Selection, depth int) int {
	if depth > d.maxDepth {
		var nodes []ast.Node
		if n, ok := sel.(ast.Node); ok {
			nodes = []ast.Node{n}
		}
		d.errs = append(d.errs, gqlerrors.FormatError(gqlerrors.NewLocatedError(
			fmt.Sprintf("'%s' exceeds maximum operation depth of %d", d.operation, d.maxDepth),
			nodes,
		)))
		return 0
	}

	switch s := sel.(type) {
	case *ast.Field:
		if s.Name != nil && strings.HasPrefix(s.Name.Value, "__") {
			return 0
		}
		if s.SelectionSet == nil || len(s.SelectionSet.Selections) == 0 {
			return 0
		}
		return 1 + d.selections(s.SelectionSet, depth+1)
	case *ast.InlineFragment:
		return d.selections(s.SelectionSet, depth)
	case *ast.FragmentSpread:
		if s.Name == nil {
			return 0
		}
		name := s.Name.Value
		frag, ok := d.fragments[name]
		// unknown and cyclic spreads are left to schema validation
		if !ok || d.visiting[name] {
			return 0
		}
		d.visiting[name] = true
		defer delete(d.visiting, name)
		return d.selections(frag.SelectionSet, depth)
	}
	return 0
}

func operationName(op *ast.OperationDefinition) string {
	if op.Name == nil {
		return ""
	}
	return op.Name.Value
}
