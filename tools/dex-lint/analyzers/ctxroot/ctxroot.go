// Package ctxroot detects root contexts created outside package main.
package ctxroot

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports context.Background and context.TODO outside package main
// and test files. Every fetch must hang off the context the command was given,
// or teardown cannot cancel it.
var Analyzer = &analysis.Analyzer{
	Name:     "ctxroot",
	Doc:      "detects context.Background/TODO outside package main and tests",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var rootFuncs = map[string]bool{
	"Background": true,
	"TODO":       true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() == "main" {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		if strings.HasSuffix(pass.Fset.Position(call.Pos()).Filename, "_test.go") {
			return
		}

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return
		}

		ident, ok := sel.X.(*ast.Ident)
		if !ok {
			return
		}

		if ident.Name == "context" && rootFuncs[sel.Sel.Name] {
			pass.Reportf(call.Pos(),
				"context.%s outside package main - accept a context.Context from the caller",
				sel.Sel.Name)
		}
	})

	return nil, nil
}
