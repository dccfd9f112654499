// Package httpnoctx detects HTTP requests that cannot be cancelled.
package httpnoctx

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports net/http helpers that build or send a request without a context.
var Analyzer = &analysis.Analyzer{
	Name:     "httpnoctx",
	Doc:      "detects http.Get/Head/Post/PostForm/NewRequest, which ignore cancellation",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var noCtxFuncs = map[string]bool{
	"Get":        true,
	"Head":       true,
	"Post":       true,
	"PostForm":   true,
	"NewRequest": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return
		}

		ident, ok := sel.X.(*ast.Ident)
		if !ok {
			return
		}

		if ident.Name == "http" && noCtxFuncs[sel.Sel.Name] {
			pass.Reportf(call.Pos(),
				"http.%s has no context - use http.NewRequestWithContext and Client.Do",
				sel.Sel.Name)
		}
	})

	return nil, nil
}
